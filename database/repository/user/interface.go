package userRepo

import (
	"context"

	"lenshub/database"
	"lenshub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository provides access to marketplace accounts.
type UserRepository interface {
	Create(ctx context.Context, u models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{coll: database.Collection("users")}
}
