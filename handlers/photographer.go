package handlers

import (
	"net/http"

	"lenshub/models"
	"lenshub/services/photographer"
	"lenshub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PhotographerHandler exposes seller profile management and storefront search.
type PhotographerHandler struct {
	Service photographer.PhotographerService
}

// NewPhotographerHandler returns a PhotographerHandler.
func NewPhotographerHandler(svc photographer.PhotographerService) *PhotographerHandler {
	return &PhotographerHandler{Service: svc}
}

// RegisterHandler handles POST /photographers.
func (h *PhotographerHandler) RegisterHandler(c *gin.Context) {
	var p models.Photographer
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Register(c.Request.Context(), p)
	if err != nil {
		utils.GetLogger().Error("Photographer registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetByIDHandler handles GET /photographers/:id.
func (h *PhotographerHandler) GetByIDHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListHandler handles GET /photographers?includeInactive={bool}.
func (h *PhotographerHandler) ListHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	items, err := h.Service.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"photographers": items}})
}

// SearchHandler handles GET /photographers/search?category=&subcategory=.
func (h *PhotographerHandler) SearchHandler(c *gin.Context) {
	items, err := h.Service.Search(c.Request.Context(), c.Query("category"), c.Query("subcategory"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"photographers": items}})
}

// UpdateHandler handles PATCH /photographers/:id.
func (h *PhotographerHandler) UpdateHandler(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photographer updated"})
}

// DeleteHandler handles DELETE /photographers/:id.
func (h *PhotographerHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photographer deleted"})
}
