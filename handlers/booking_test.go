package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "lenshub/database/repository/booking"
	"lenshub/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBookingRepo struct {
	statuses map[string]string
}

func (s *stubBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	return b.ID, nil
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (s *stubBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) GetByPhotographerID(ctx context.Context, photographerID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if _, ok := s.statuses[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	s.statuses[id] = status
	return nil
}

func newStatusRouter(repo *stubBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &BookingHandler{Bookings: repo, Logger: zap.NewNop()}
	r := gin.New()
	r.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	return r
}

func patchStatus(r *gin.Engine, id, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+id+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateBookingStatus(t *testing.T) {
	repo := &stubBookingRepo{statuses: map[string]string{"bk-1": models.BookingConfirmed}}
	r := newStatusRouter(repo)

	w := patchStatus(r, "bk-1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingCompleted, repo.statuses["bk-1"])

	w = patchStatus(r, "bk-1", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingCancelled, repo.statuses["bk-1"])
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	repo := &stubBookingRepo{statuses: map[string]string{"bk-1": models.BookingConfirmed}}
	r := newStatusRouter(repo)

	w := patchStatus(r, "bk-1", `{"status":"refunded"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.BookingConfirmed, repo.statuses["bk-1"])

	w = patchStatus(r, "bk-1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingStatusMissingBooking(t *testing.T) {
	repo := &stubBookingRepo{statuses: map[string]string{}}
	r := newStatusRouter(repo)

	w := patchStatus(r, "no-such-booking", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, models.ValidBookingStatus(models.BookingConfirmed))
	assert.True(t, models.ValidBookingStatus(models.BookingCancelled))
	assert.True(t, models.ValidBookingStatus(models.BookingCompleted))
	assert.False(t, models.ValidBookingStatus(""))
	assert.False(t, models.ValidBookingStatus("refunded"))
}
