package models

import "time"

// Package is a pre-bundled shoot offering (fixed hours plus included add-ons).
type Package struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Category       string    `bson:"category" json:"category"`
	Hours          int       `bson:"hours" json:"hours"`
	Price          int       `bson:"price" json:"price"`
	IncludedAddons []string  `bson:"included_addons" json:"included_addons"`
	Description    string    `bson:"description" json:"description,omitempty"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

func (p Package) GetID() string { return p.ID }
func (p Package) IsActive() bool { return p.Active }
func (p Package) WithActive(v bool) Package {
	p.Active = v
	return p
}

func (p Package) WithID(id string) Package {
	p.ID = id
	return p
}
