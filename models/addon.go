package models

import "time"

// AddOn is an optional paid extra attached to a booking (e.g. drone coverage).
type AddOn struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	UnitPrice   int       `bson:"unit_price" json:"unit_price"` // whole currency units
	Description string    `bson:"description" json:"description"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

func (a AddOn) GetID() string { return a.ID }
func (a AddOn) IsActive() bool { return a.Active }
func (a AddOn) WithActive(v bool) AddOn {
	a.Active = v
	return a
}

func (a AddOn) WithID(id string) AddOn {
	a.ID = id
	return a
}
