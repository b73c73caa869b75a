package booking

import (
	"context"

	bookingRepo "lenshub/database/repository/booking"
	catalogRepo "lenshub/database/repository/catalog"
	photographerRepo "lenshub/database/repository/photographer"
	"lenshub/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SelectionPatch carries the fields of a booking selection a storefront
// update may change. Nil fields are left untouched.
type SelectionPatch struct {
	Date      *string        `json:"date,omitempty"`
	TimeSlots *[]string      `json:"time_slots,omitempty"`
	Addons    map[string]int `json:"addons,omitempty"` // add-on id -> quantity; negatives clamp to 0
}

// SessionView is a booking session together with its freshly computed quote.
// The breakdown is derived on every read and never stored.
type SessionView struct {
	Session   models.BookingSession `json:"session"`
	Breakdown models.Breakdown      `json:"breakdown"`
	Ready     bool                  `json:"ready"`
}

// SessionService drives the storefront booking flow.
type SessionService interface {
	Initiate(ctx context.Context, userID, photographerID string) (*SessionView, error)
	Update(ctx context.Context, sessionID string, patch SelectionPatch) (*SessionView, error)
	Get(ctx context.Context, sessionID string) (*SessionView, error)
	Confirm(ctx context.Context, sessionID string) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error
}

// ReminderScheduler enqueues a shoot reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleShootReminder(b models.Booking) error
}

// DefaultSessionService is the production SessionService implementation.
// Sessions live in Redis under their session id with BookingSessionTTL.
type DefaultSessionService struct {
	Cache         *redis.Client
	Photographers photographerRepo.PhotographerRepository
	Addons        catalogRepo.AddOnRepository
	Bookings      bookingRepo.BookingRepository
	Payments      PaymentHandler    // nil disables payment intents
	Reminders     ReminderScheduler // nil disables reminders
	Logger        *zap.Logger
}
