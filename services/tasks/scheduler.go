package tasks

import (
	"fmt"
	"time"

	"lenshub/models"

	"github.com/hibiken/asynq"
)

// reminderLeadTime is how long before the shoot date the reminder fires.
const reminderLeadTime = 24 * time.Hour

// AsynqReminderScheduler enqueues shoot reminders on the asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleShootReminder enqueues a reminder one day before the shoot date.
// Bookings made inside the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleShootReminder(b models.Booking) error {
	shootDate, err := time.ParseInLocation("2006-01-02", b.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid shoot date %q: %w", b.Date, err)
	}

	fireAt := shootDate.Add(-reminderLeadTime)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:      b.ID,
		UserID:         b.UserID,
		PhotographerID: b.PhotographerID,
		Date:           b.Date,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
