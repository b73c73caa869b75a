package studiosync

import (
	"context"

	"lenshub/models"
)

// CategorySource adapts the client to catalog.Source for categories.
// The admin mirror includes inactive entries.
type CategorySource struct {
	Client *Client
}

func (s CategorySource) Fetch(ctx context.Context) ([]models.Category, error) {
	return s.Client.FetchCategories(ctx, true)
}

// CouponSource adapts the client to catalog.Source for coupons.
type CouponSource struct {
	Client *Client
}

func (s CouponSource) Fetch(ctx context.Context) ([]models.Coupon, error) {
	return s.Client.FetchCoupons(ctx)
}

// GiftSource adapts the client to catalog.Source for gifts.
type GiftSource struct {
	Client *Client
}

func (s GiftSource) Fetch(ctx context.Context) ([]models.Gift, error) {
	return s.Client.FetchGifts(ctx)
}
