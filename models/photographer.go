package models

import "time"

// Photographer is a seller profile listed on the storefront.
type Photographer struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Category    string    `bson:"category" json:"category"`
	Subcategory string    `bson:"subcategory" json:"subcategory"`
	HourlyRate  string    `bson:"hourly_rate" json:"hourly_rate"` // currency-formatted as entered by the seller
	City        string    `bson:"city" json:"city"`
	Rating      float64   `bson:"rating" json:"rating"`
	Bio         string    `bson:"bio" json:"bio,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

func (p Photographer) GetID() string { return p.ID }
func (p Photographer) IsActive() bool { return p.Active }
func (p Photographer) WithActive(v bool) Photographer {
	p.Active = v
	return p
}

func (p Photographer) WithID(id string) Photographer {
	p.ID = id
	return p
}
