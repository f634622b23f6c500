package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	catalogSource string
}

// NewHealthHandler reports where the HS catalog was loaded from ("database" or "builtin")
func NewHealthHandler(catalogSource string) *HealthHandler {
	return &HealthHandler{catalogSource: catalogSource}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "catalog": h.catalogSource})
}
