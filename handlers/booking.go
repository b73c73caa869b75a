package handlers

import (
	"net/http"

	bookingRepo "lenshub/database/repository/booking"
	catalogRepo "lenshub/database/repository/catalog"
	"lenshub/models"
	"lenshub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the storefront booking flow.
type BookingHandler struct {
	Service  booking.SessionService
	Addons   catalogRepo.AddOnRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(svc booking.SessionService, addons catalogRepo.AddOnRepository, bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Addons: addons, Bookings: bookings, Logger: logger}
}

// QuoteHandler handles POST /bookings/quote. Stateless: computes a price
// breakdown for the posted selection without touching any session.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	catalog, err := h.Addons.GetAll(c.Request.Context(), false)
	if err != nil {
		h.Logger.Error("quote: failed to load add-on catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load add-on catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"breakdown": booking.Quote(sel, catalog),
		"ready":     sel.Ready(),
	})
}

// InitiateSession handles POST /bookings/sessions.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var req struct {
		PhotographerID string `json:"photographer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.Service.Initiate(c.Request.Context(), mustUserID(c), req.PhotographerID)
	if err != nil {
		h.Logger.Error("failed to initiate booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// UpdateSession handles PATCH /bookings/sessions/:id.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch booking.SelectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err == booking.ErrSessionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSession handles GET /bookings/sessions/:id.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err == booking.ErrSessionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmBooking handles POST /bookings/sessions/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	bk, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	switch err {
	case nil:
	case booking.ErrSessionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case booking.ErrNotReady:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	default:
		h.Logger.Error("failed to confirm booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// CancelSession handles DELETE /bookings/sessions/:id.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}

// ListMyBookings handles GET /bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	items, err := h.Bookings.GetByUserID(c.Request.Context(), mustUserID(c))
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": items}})
}

// UpdateBookingStatus handles PATCH /bookings/:id/status (admin). Moves a
// confirmed booking to cancelled or completed after the shoot.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status: " + req.Status})
		return
	}
	err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err == bookingRepo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		h.Logger.Error("failed to update booking status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}

// mustUserID returns the authenticated user id set by the auth middleware.
func mustUserID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}
