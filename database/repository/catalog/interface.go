package catalogRepo

import (
	"context"

	"lenshub/database"
	"lenshub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no catalog record matches the given id.
var ErrNotFound = mongo.ErrNoDocuments

// AddOnRepository provides access to the add-on catalog.
type AddOnRepository interface {
	Create(ctx context.Context, a models.AddOn) (string, error)
	GetByID(ctx context.Context, id string) (*models.AddOn, error)
	GetAll(ctx context.Context, includeInactive bool) ([]models.AddOn, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// PackageRepository provides access to pre-bundled shoot packages.
type PackageRepository interface {
	Create(ctx context.Context, p models.Package) (string, error)
	GetByID(ctx context.Context, id string) (*models.Package, error)
	GetAll(ctx context.Context, includeInactive bool) ([]models.Package, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoAddOnRepo struct {
	coll *mongo.Collection
}

type mongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoAddOnRepo returns an AddOnRepository backed by MongoDB.
func NewMongoAddOnRepo() AddOnRepository {
	return &mongoAddOnRepo{coll: database.Collection("addons")}
}

// NewMongoPackageRepo returns a PackageRepository backed by MongoDB.
func NewMongoPackageRepo() PackageRepository {
	return &mongoPackageRepo{coll: database.Collection("packages")}
}
