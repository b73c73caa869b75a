package studiosync

import (
	"context"
	"fmt"
	"net/http"

	"lenshub/models"
)

// FetchCategories lists upstream categories.
func (c *Client) FetchCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	var data struct {
		Categories []models.Category `json:"categories"`
	}
	path := fmt.Sprintf("/categories?includeInactive=%t", includeInactive)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Categories, nil
}

// CreateCategory creates a category upstream and returns the stored entity.
func (c *Client) CreateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	var data struct {
		Category models.Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/categories", cat, &data); err != nil {
		return nil, err
	}
	return &data.Category, nil
}

// UpdateCategory updates a category upstream and returns the stored entity.
func (c *Client) UpdateCategory(ctx context.Context, id string, cat models.Category) (*models.Category, error) {
	var data struct {
		Category models.Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPut, "/categories/"+id, cat, &data); err != nil {
		return nil, err
	}
	return &data.Category, nil
}

// FetchCoupons lists upstream coupons.
func (c *Client) FetchCoupons(ctx context.Context) ([]models.Coupon, error) {
	var data struct {
		Coupons []models.Coupon `json:"coupons"`
	}
	if err := c.do(ctx, http.MethodGet, "/coupons", nil, &data); err != nil {
		return nil, err
	}
	return data.Coupons, nil
}

// FetchGifts lists upstream gifts.
func (c *Client) FetchGifts(ctx context.Context) ([]models.Gift, error) {
	var data struct {
		Gifts []models.Gift `json:"gifts"`
	}
	if err := c.do(ctx, http.MethodGet, "/gifts", nil, &data); err != nil {
		return nil, err
	}
	return data.Gifts, nil
}
