package models

// ReminderPayload is the asynq task payload for a shoot reminder.
type ReminderPayload struct {
	BookingID      string `json:"booking_id"`
	UserID         string `json:"user_id"`
	PhotographerID string `json:"photographer_id"`
	Date           string `json:"date"`
}
