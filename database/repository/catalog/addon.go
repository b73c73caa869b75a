package catalogRepo

import (
	"context"
	"time"

	"lenshub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new add-on and returns its ID.
func (r *mongoAddOnRepo) Create(ctx context.Context, a models.AddOn) (string, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// GetByID returns an add-on by its ID.
func (r *mongoAddOnRepo) GetByID(ctx context.Context, id string) (*models.AddOn, error) {
	var a models.AddOn
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll lists the add-on catalog, optionally including deactivated entries.
func (r *mongoAddOnRepo) GetAll(ctx context.Context, includeInactive bool) ([]models.AddOn, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.AddOn
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial update to the add-on with the given id.
func (r *mongoAddOnRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
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

// Delete removes an add-on by ID.
func (r *mongoAddOnRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
