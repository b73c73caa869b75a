package photographer

import (
	"context"

	photographerRepo "lenshub/database/repository/photographer"
	"lenshub/models"
)

// PhotographerService manages seller profiles.
type PhotographerService interface {
	Register(ctx context.Context, p models.Photographer) (*models.Photographer, error)
	GetByID(ctx context.Context, id string) (*models.Photographer, error)
	List(ctx context.Context, includeInactive bool) ([]models.Photographer, error)
	Search(ctx context.Context, category, subcategory string) ([]models.Photographer, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// DefaultPhotographerService is the production implementation.
type DefaultPhotographerService struct {
	Repo photographerRepo.PhotographerRepository
}
