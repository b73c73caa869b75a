package models

import "time"

// Coupon is a discount code redeemable at checkout.
type Coupon struct {
	ID        string    `bson:"id" json:"id"`
	Code      string    `bson:"code" json:"code"`
	Percent   int       `bson:"percent" json:"percent"`     // percentage discount, 0 when flat
	Flat      int       `bson:"flat" json:"flat"`           // flat discount in currency units, 0 when percent
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (c Coupon) GetID() string { return c.ID }
func (c Coupon) IsActive() bool { return c.Active }
func (c Coupon) WithActive(v bool) Coupon {
	c.Active = v
	return c
}

// Expired reports whether the coupon is past its expiry at the given time.
func (c Coupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

func (c Coupon) WithID(id string) Coupon {
	c.ID = id
	return c
}
