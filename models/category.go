package models

import "time"

// Category is a top-level shoot category (wedding, portrait, product, ...).
type Category struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

func (c Category) GetID() string { return c.ID }
func (c Category) IsActive() bool { return c.Active }
func (c Category) WithActive(v bool) Category {
	c.Active = v
	return c
}

func (c Category) WithID(id string) Category {
	c.ID = id
	return c
}
