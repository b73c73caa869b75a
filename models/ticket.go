package models

import "time"

// Ticket statuses.
const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// TicketMessage is a single reply on a support ticket.
type TicketMessage struct {
	Author    string    `json:"author"` // user id or "support"
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket is a support ticket raised by a user or seller.
type Ticket struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Subject   string          `json:"subject"`
	Status    string          `json:"status"`
	Messages  []TicketMessage `json:"messages"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (t Ticket) GetID() string { return t.ID }
func (t Ticket) IsActive() bool { return t.Status == TicketOpen }
func (t Ticket) WithActive(v bool) Ticket {
	if v {
		t.Status = TicketOpen
	} else {
		t.Status = TicketClosed
	}
	return t
}

func (t Ticket) WithID(id string) Ticket {
	t.ID = id
	return t
}
