package catalogRepo

import (
	"context"
	"time"

	"lenshub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new package and returns its ID.
func (r *mongoPackageRepo) Create(ctx context.Context, p models.Package) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetByID returns a package by its ID.
func (r *mongoPackageRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	var p models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll lists shoot packages, optionally including deactivated entries.
func (r *mongoPackageRepo) GetAll(ctx context.Context, includeInactive bool) ([]models.Package, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Package
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial update to the package with the given id.
func (r *mongoPackageRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a package by ID.
func (r *mongoPackageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
