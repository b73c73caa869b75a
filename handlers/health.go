package handlers

import (
	"net/http"

	"lenshub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health using the latest monitor snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
