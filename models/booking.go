package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a confirmed booking record. The breakdown is snapshotted at
// confirmation time so later catalog edits cannot reprice history.
type Booking struct {
	ID              string      `bson:"id" json:"id"`
	PhotographerID  string      `bson:"photographer_id" json:"photographer_id"`
	UserID          string      `bson:"user_id" json:"user_id"`
	Date            string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlots       []string    `bson:"time_slots" json:"time_slots"`
	Addons          []AddonLine `bson:"addons" json:"addons"`
	Breakdown       Breakdown   `bson:"breakdown" json:"breakdown"`
	Status          string      `bson:"status" json:"status"`
	PaymentIntentID string      `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
}

// ValidBookingStatus reports whether s is one of the recognized booking
// statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// BookingSession is the in-flight storefront flow state held in Redis.
type BookingSession struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
