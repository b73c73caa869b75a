// File: services/support/service.go
package support

import (
	"fmt"
	"time"

	"lenshub/models"
	"lenshub/services/catalog"
)

// TicketService manages support tickets. Tickets are held in a managed
// in-memory collection; they are operational state, not durable records.
type TicketService struct {
	tickets *catalog.Collection[models.Ticket]
}

// NewTicketService returns an empty ticket service.
func NewTicketService() *TicketService {
	return &TicketService{tickets: catalog.NewCollection[models.Ticket]()}
}

// Open raises a new ticket with an initial message.
func (s *TicketService) Open(userID, subject, body string) models.Ticket {
	now := time.Now()
	draft := models.Ticket{
		UserID:  userID,
		Subject: subject,
		Messages: []models.TicketMessage{
			{Author: userID, Body: body, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.tickets.Create(draft)
}

// Reply appends a message to an open ticket.
func (s *TicketService) Reply(id, author, body string) (models.Ticket, error) {
	err := s.tickets.Update(id, func(t models.Ticket) models.Ticket {
		t.Messages = append(t.Messages, models.TicketMessage{
			Author:    author,
			Body:      body,
			CreatedAt: time.Now(),
		})
		t.UpdatedAt = time.Now()
		return t
	})
	if err != nil {
		return models.Ticket{}, fmt.Errorf("ticket %s: %w", id, err)
	}
	return s.tickets.Get(id)
}

// Close marks a ticket resolved.
func (s *TicketService) Close(id string) error {
	err := s.tickets.Update(id, func(t models.Ticket) models.Ticket {
		t.Status = models.TicketClosed
		t.UpdatedAt = time.Now()
		return t
	})
	if err != nil {
		return fmt.Errorf("ticket %s: %w", id, err)
	}
	return nil
}

// Get returns a ticket by id.
func (s *TicketService) Get(id string) (models.Ticket, error) {
	return s.tickets.Get(id)
}

// List returns all tickets in creation order.
func (s *TicketService) List() []models.Ticket {
	return s.tickets.Items()
}

// ListByUser returns the tickets raised by one user, in creation order.
func (s *TicketService) ListByUser(userID string) []models.Ticket {
	var out []models.Ticket
	for _, t := range s.tickets.Items() {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}
