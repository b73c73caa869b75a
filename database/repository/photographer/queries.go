package photographerRepo

import (
	"context"

	"lenshub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchByCategory returns active photographers matching a category and,
// when non-empty, a subcategory. Results are sorted by rating, best first.
func (r *mongoPhotographerRepo) SearchByCategory(ctx context.Context, category, subcategory string) ([]models.Photographer, error) {
	filter := bson.M{"active": true, "category": category}
	if subcategory != "" {
		filter["subcategory"] = subcategory
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
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
