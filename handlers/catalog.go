// File: handlers/catalog.go
package handlers

import (
	"net/http"

	catalogRepo "lenshub/database/repository/catalog"
	"lenshub/models"

	"github.com/gin-gonic/gin"
)

// AddOnHandler exposes the add-on catalog admin CRUD.
type AddOnHandler struct {
	Repo catalogRepo.AddOnRepository
}

// NewAddOnHandler returns an AddOnHandler.
func NewAddOnHandler(repo catalogRepo.AddOnRepository) *AddOnHandler {
	return &AddOnHandler{Repo: repo}
}

// ListHandler handles GET /addons?includeInactive={bool}.
func (h *AddOnHandler) ListHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	items, err := h.Repo.GetAll(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"addons": items}})
}

// CreateHandler handles POST /addons.
func (h *AddOnHandler) CreateHandler(c *gin.Context) {
	var a models.AddOn
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if a.UnitPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit price must be non-negative"})
		return
	}
	a.Active = true
	id, err := h.Repo.Create(c.Request.Context(), a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PATCH /addons/:id.
func (h *AddOnHandler) UpdateHandler(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(patch, "id")
	if err := h.Repo.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Add-on updated"})
}

// ToggleHandler handles POST /addons/:id/toggle.
func (h *AddOnHandler) ToggleHandler(c *gin.Context) {
	a, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.Update(c.Request.Context(), a.ID, map[string]interface{}{"active": !a.Active}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Add-on toggled", "active": !a.Active})
}

// DeleteHandler handles DELETE /addons/:id.
func (h *AddOnHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Add-on deleted"})
}

// PackageHandler exposes the shoot package admin CRUD.
type PackageHandler struct {
	Repo catalogRepo.PackageRepository
}

// NewPackageHandler returns a PackageHandler.
func NewPackageHandler(repo catalogRepo.PackageRepository) *PackageHandler {
	return &PackageHandler{Repo: repo}
}

// ListHandler handles GET /packages?includeInactive={bool}.
func (h *PackageHandler) ListHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	items, err := h.Repo.GetAll(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"packages": items}})
}

// CreateHandler handles POST /packages.
func (h *PackageHandler) CreateHandler(c *gin.Context) {
	var p models.Package
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Active = true
	id, err := h.Repo.Create(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PATCH /packages/:id.
func (h *PackageHandler) UpdateHandler(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(patch, "id")
	if err := h.Repo.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package updated"})
}

// DeleteHandler handles DELETE /packages/:id.
func (h *PackageHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}
