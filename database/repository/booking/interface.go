package bookingRepo

import (
	"context"

	"lenshub/database"
	"lenshub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed booking records.
type BookingRepository interface {
	Create(ctx context.Context, b models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	GetByPhotographerID(ctx context.Context, photographerID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.Collection("bookings")}
}
