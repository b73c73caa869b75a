package photographer

import (
	"context"
	"fmt"

	"lenshub/models"
	"lenshub/services/booking"
)

// Register creates a seller profile. The rate string is checked against the
// pricing fallback so sellers see the rate bookings will actually use.
func (s *DefaultPhotographerService) Register(ctx context.Context, p models.Photographer) (*models.Photographer, error) {
	if p.Name == "" || p.Email == "" {
		return nil, fmt.Errorf("photographer name and email are required")
	}
	if existing, _ := s.Repo.GetByEmail(ctx, p.Email); existing != nil {
		return nil, fmt.Errorf("a photographer with email %s already exists", p.Email)
	}
	if booking.ParseRate(p.HourlyRate) == booking.FallbackHourlyRate {
		// Rate was empty or malformed; record the fallback explicitly so the
		// profile shows what the quote engine will charge.
		p.HourlyRate = fmt.Sprintf("%d", booking.FallbackHourlyRate)
	}
	p.Active = true

	id, err := s.Repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create photographer: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// GetByID returns the profile with the given id.
func (s *DefaultPhotographerService) GetByID(ctx context.Context, id string) (*models.Photographer, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("photographer not found: %w", err)
	}
	return p, nil
}

// List returns seller profiles, optionally including deactivated ones.
func (s *DefaultPhotographerService) List(ctx context.Context, includeInactive bool) ([]models.Photographer, error) {
	return s.Repo.GetAll(ctx, includeInactive)
}

// Search returns active photographers for a category/subcategory.
func (s *DefaultPhotographerService) Search(ctx context.Context, category, subcategory string) ([]models.Photographer, error) {
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	return s.Repo.SearchByCategory(ctx, category, subcategory)
}

// Update applies a partial update to a profile.
func (s *DefaultPhotographerService) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	delete(patch, "id")
	return s.Repo.Update(ctx, id, patch)
}

// Delete removes a profile.
func (s *DefaultPhotographerService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
