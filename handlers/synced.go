// File: handlers/synced.go
package handlers

import (
	"net/http"

	"lenshub/clients/studiosync"
	"lenshub/models"
	"lenshub/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncedHandler serves a collection mirrored from the studio sync
// collaborator. List never blanks on a failed refresh: stale items are
// returned together with the error message and load state.
type SyncedHandler[T catalog.Record[T]] struct {
	Name   string // plural JSON key, e.g. "categories"
	Coll   *catalog.SyncedCollection[T]
	Logger *zap.Logger
}

// ListHandler handles GET /{name}. Inactive records are hidden unless
// includeInactive=true is passed; the mirror itself always holds them.
func (h *SyncedHandler[T]) ListHandler(c *gin.Context) {
	items := h.Coll.Items()
	if c.Query("includeInactive") != "true" {
		visible := make([]T, 0, len(items))
		for _, it := range items {
			if it.IsActive() {
				visible = append(visible, it)
			}
		}
		items = visible
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{h.Name: items},
		"state":   h.Coll.State(),
		"error":   h.Coll.Err(),
	})
}

// RefreshHandler handles POST /{name}/refresh.
func (h *SyncedHandler[T]) RefreshHandler(c *gin.Context) {
	if err := h.Coll.Refresh(c.Request.Context()); err != nil {
		h.Logger.Warn("refresh failed", zap.String("collection", h.Name), zap.Error(err))
		// Stale items remain served; report the failure without clearing them.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "state": h.Coll.State()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{h.Name: h.Coll.Items()},
		"state":   h.Coll.State(),
	})
}

// ToggleHandler handles POST /{name}/:id/toggle. The toggle is local to the
// mirror; the next refresh reasserts upstream state.
func (h *SyncedHandler[T]) ToggleHandler(c *gin.Context) {
	if err := h.Coll.ToggleActive(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Toggled"})
}

// CategoryAdminHandler writes categories through the collaborator (the
// upstream store is the source of truth) and refreshes the mirror after
// each successful write.
type CategoryAdminHandler struct {
	Client *studiosync.Client
	Coll   *catalog.SyncedCollection[models.Category]
	Logger *zap.Logger
}

// NewCategoryAdminHandler returns a CategoryAdminHandler.
func NewCategoryAdminHandler(client *studiosync.Client, coll *catalog.SyncedCollection[models.Category], logger *zap.Logger) *CategoryAdminHandler {
	return &CategoryAdminHandler{Client: client, Coll: coll, Logger: logger}
}

// CreateHandler handles POST /categories.
func (h *CategoryAdminHandler) CreateHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Client.CreateCategory(c.Request.Context(), cat)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if err := h.Coll.Refresh(c.Request.Context()); err != nil {
		h.Logger.Warn("category mirror refresh after create failed", zap.Error(err))
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PUT /categories/:id.
func (h *CategoryAdminHandler) UpdateHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Client.UpdateCategory(c.Request.Context(), c.Param("id"), cat)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if err := h.Coll.Refresh(c.Request.Context()); err != nil {
		h.Logger.Warn("category mirror refresh after update failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, updated)
}
