package support

import (
	"testing"

	"lenshub/models"
	"lenshub/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketLifecycle(t *testing.T) {
	svc := NewTicketService()

	tk := svc.Open("user-1", "Refund request", "My shoot was cancelled")
	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, models.TicketOpen, tk.Status)
	require.Len(t, tk.Messages, 1)

	tk, err := svc.Reply(tk.ID, "support", "Looking into it")
	require.NoError(t, err)
	assert.Len(t, tk.Messages, 2)
	assert.Equal(t, "support", tk.Messages[1].Author)

	require.NoError(t, svc.Close(tk.ID))
	got, err := svc.Get(tk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketClosed, got.Status)
}

func TestTicketMissingID(t *testing.T) {
	svc := NewTicketService()
	_, err := svc.Reply("missing", "support", "hello?")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.ErrorIs(t, svc.Close("missing"), catalog.ErrNotFound)
}

func TestListByUser(t *testing.T) {
	svc := NewTicketService()
	svc.Open("user-1", "a", "x")
	svc.Open("user-2", "b", "y")
	svc.Open("user-1", "c", "z")

	mine := svc.ListByUser("user-1")
	require.Len(t, mine, 2)
	assert.Equal(t, "a", mine[0].Subject)
	assert.Equal(t, "c", mine[1].Subject)
	assert.Len(t, svc.List(), 3)
}
