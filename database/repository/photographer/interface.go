package photographerRepo

import (
	"context"

	"lenshub/database"
	"lenshub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PhotographerRepository provides access to seller profiles.
type PhotographerRepository interface {
	Create(ctx context.Context, p models.Photographer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Photographer, error)
	GetByEmail(ctx context.Context, email string) (*models.Photographer, error)
	GetAll(ctx context.Context, includeInactive bool) ([]models.Photographer, error)
	SearchByCategory(ctx context.Context, category, subcategory string) ([]models.Photographer, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoPhotographerRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotographerRepo returns a PhotographerRepository backed by MongoDB.
func NewMongoPhotographerRepo() PhotographerRepository {
	return &mongoPhotographerRepo{coll: database.Collection("photographers")}
}
