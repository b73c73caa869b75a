package handlers

import (
	"net/http"

	"lenshub/services/support"

	"github.com/gin-gonic/gin"
)

// TicketHandler exposes support tickets.
type TicketHandler struct {
	Service *support.TicketService
}

// NewTicketHandler returns a TicketHandler.
func NewTicketHandler(svc *support.TicketService) *TicketHandler {
	return &TicketHandler{Service: svc}
}

// OpenHandler handles POST /tickets.
func (h *TicketHandler) OpenHandler(c *gin.Context) {
	var req struct {
		Subject string `json:"subject" binding:"required"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := h.Service.Open(mustUserID(c), req.Subject, req.Body)
	c.JSON(http.StatusCreated, t)
}

// ReplyHandler handles POST /tickets/:id/reply.
func (h *TicketHandler) ReplyHandler(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.Service.Reply(c.Param("id"), mustUserID(c), req.Body)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CloseHandler handles POST /tickets/:id/close.
func (h *TicketHandler) CloseHandler(c *gin.Context) {
	if err := h.Service.Close(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket closed"})
}

// ListHandler handles GET /tickets. Admins see every ticket; everyone else
// sees their own.
func (h *TicketHandler) ListHandler(c *gin.Context) {
	role, _ := c.Get("userRole")
	if role == "admin" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"tickets": h.Service.List()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"tickets": h.Service.ListByUser(mustUserID(c))}})
}

// GetHandler handles GET /tickets/:id.
func (h *TicketHandler) GetHandler(c *gin.Context) {
	t, err := h.Service.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}
