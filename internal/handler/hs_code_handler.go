package handler

import (
	"errors"
	"net/http"

	"importduty/internal/service"
	"importduty/pkg/pagination"
	"importduty/pkg/response"

	"github.com/gin-gonic/gin"
)

type HSCodeHandler struct {
	catalogService service.CatalogService
}

func NewHSCodeHandler(catalogService service.CatalogService) *HSCodeHandler {
	return &HSCodeHandler{catalogService: catalogService}
}

func (h *HSCodeHandler) RegisterRoutes(router *gin.RouterGroup) {
	codes := router.Group("/api/hs-codes")
	{
		codes.GET("", h.ListHSCodes)
		codes.GET("/:code", h.GetHSCode)
	}
}

// ListHSCodes godoc
// @Summary      List HS codes
// @Description  Paginated HS classification catalog in display order; the last entry is the fallback
// @Tags         hs-codes
// @Produce      json
// @Param        page   query     int  false  "Page number"     default(1)
// @Param        limit  query     int  false  "Items per page"  default(20)
// @Success      200    {object}  response.Response{data=service.HSCodeListResponse}
// @Router       /api/hs-codes [get]
func (h *HSCodeHandler) ListHSCodes(c *gin.Context) {
	page := pagination.Parse(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.catalogService.ListHSCodes(c.Request.Context(), page)))
}

// GetHSCode godoc
// @Summary      Get HS code
// @Tags         hs-codes
// @Produce      json
// @Param        code  path      string  true  "HS code"
// @Success      200   {object}  response.Response{data=service.HSCodeResponse}
// @Failure      404   {object}  response.Response
// @Router       /api/hs-codes/{code} [get]
func (h *HSCodeHandler) GetHSCode(c *gin.Context) {
	entry, err := h.catalogService.GetHSCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrHSCodeNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entry))
}
