package models

import "time"

// Gift is a redeemable gift item offered through the storefront.
type Gift struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Price     int       `bson:"price" json:"price"`
	Stock     int       `bson:"stock" json:"stock"`
	ImageURL  string    `bson:"image_url" json:"image_url,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (g Gift) GetID() string { return g.ID }
func (g Gift) IsActive() bool { return g.Active }
func (g Gift) WithActive(v bool) Gift {
	g.Active = v
	return g
}

func (g Gift) WithID(id string) Gift {
	g.ID = id
	return g
}
