// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lenshub/models"
	"lenshub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Initiate creates a new booking session for the chosen photographer,
// assigns it a unique SessionID, and stores it in Redis.
func (s *DefaultSessionService) Initiate(ctx context.Context, userID, photographerID string) (*SessionView, error) {
	phot, err := s.Photographers.GetByID(ctx, photographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photographer: %w", err)
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Selection: models.Selection{
			PhotographerID:   phot.ID,
			PhotographerName: phot.Name,
			HourlyRate:       phot.HourlyRate,
			Category:         phot.Category,
			Subcategory:      phot.Subcategory,
			Addons:           map[string]int{},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// Update applies a selection patch to the session and saves it. The quote in
// the returned view is recomputed from scratch; price fields are never stored.
func (s *DefaultSessionService) Update(ctx context.Context, sessionID string, patch SelectionPatch) (*SessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		session.Selection.Date = *patch.Date
	}
	if patch.TimeSlots != nil {
		session.Selection.TimeSlots = *patch.TimeSlots
	}
	for id, qty := range patch.Addons {
		if qty <= 0 {
			delete(session.Selection.Addons, id)
			continue
		}
		session.Selection.Addons[id] = qty
	}
	session.UpdatedAt = time.Now()

	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return s.view(ctx, *session)
}

// Get returns the session with a freshly computed quote.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *session)
}

// Confirm finalizes the booking: the selection must be ready, the quote is
// snapshotted into a durable Booking record, a payment intent is created when
// payments are enabled, and a shoot reminder is scheduled.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Selection.Ready() {
		return nil, ErrNotReady
	}

	catalog, err := s.Addons.GetAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch add-on catalog: %w", err)
	}
	breakdown := Quote(session.Selection, catalog)

	bk := models.Booking{
		ID:             uuid.New().String(),
		PhotographerID: session.Selection.PhotographerID,
		UserID:         session.UserID,
		Date:           session.Selection.Date,
		TimeSlots:      session.Selection.TimeSlots,
		Addons:         breakdown.Lines,
		Breakdown:      breakdown,
		Status:         models.BookingConfirmed,
		CreatedAt:      time.Now(),
	}

	if s.Payments != nil {
		intentID, err := s.Payments.CreateIntent(ctx, breakdown.Total, bk.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		bk.PaymentIntentID = intentID
	}

	if _, err := s.Bookings.Create(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleShootReminder(bk); err != nil {
			// The booking is already durable; a missed reminder is not fatal.
			s.Logger.Warn("failed to schedule shoot reminder",
				zap.String("bookingId", bk.ID), zap.Error(err))
		}
	}

	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to drop confirmed booking session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return &bk, nil
}

// Cancel discards an in-flight booking session.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "bookingSession:" + sessionID
}

func (s *DefaultSessionService) saveSession(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	if session.Selection.Addons == nil {
		session.Selection.Addons = map[string]int{}
	}
	return &session, nil
}

func (s *DefaultSessionService) view(ctx context.Context, session models.BookingSession) (*SessionView, error) {
	catalog, err := s.Addons.GetAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch add-on catalog: %w", err)
	}
	return &SessionView{
		Session:   session,
		Breakdown: Quote(session.Selection, catalog),
		Ready:     session.Selection.Ready(),
	}, nil
}
