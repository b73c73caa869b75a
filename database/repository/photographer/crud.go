package photographerRepo

import (
	"context"
	"time"

	"lenshub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no photographer matches the given id.
var ErrNotFound = mongo.ErrNoDocuments

// Create inserts a new photographer profile and returns its ID.
func (r *mongoPhotographerRepo) Create(ctx context.Context, p models.Photographer) (string, error) {
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

// GetByID returns a photographer by its ID.
func (r *mongoPhotographerRepo) GetByID(ctx context.Context, id string) (*models.Photographer, error) {
	var p models.Photographer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByEmail returns a photographer by the account email.
func (r *mongoPhotographerRepo) GetByEmail(ctx context.Context, email string) (*models.Photographer, error) {
	var p models.Photographer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll lists photographer profiles, optionally including deactivated ones.
func (r *mongoPhotographerRepo) GetAll(ctx context.Context, includeInactive bool) ([]models.Photographer, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Photographer
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial update to the photographer with the given id.
func (r *mongoPhotographerRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
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

// Delete removes a photographer profile by ID.
func (r *mongoPhotographerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
