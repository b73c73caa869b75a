package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User is a marketplace account (customer, seller or admin).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (u User) GetID() string { return u.ID }
func (u User) IsActive() bool { return u.Active }
func (u User) WithActive(v bool) User {
	u.Active = v
	return u
}

func (u User) WithID(id string) User {
	u.ID = id
	return u
}
