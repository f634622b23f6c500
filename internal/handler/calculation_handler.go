package handler

import (
	"errors"
	"net/http"

	"importduty/internal/calculator"
	"importduty/internal/service"
	"importduty/internal/tariff"
	"importduty/pkg/response"

	"github.com/gin-gonic/gin"
)

type CalculationHandler struct {
	calcService service.CalculationService
}

func NewCalculationHandler(calcService service.CalculationService) *CalculationHandler {
	return &CalculationHandler{calcService: calcService}
}

func (h *CalculationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/calculations", h.Calculate)
	router.GET("/api/rates", h.GetRates)
}

// RatesResponse is the active rate table with the year vehicle ages are measured against
type RatesResponse struct {
	AssessmentYear int              `json:"assessment_year"`
	Rates          tariff.RateTable `json:"rates"`
}

// Calculate godoc
// @Summary      Calculate import taxes
// @Description  Computes import duty, excise, VAT, IDF and RDL for a vehicle, motorcycle or cargo item
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateRequest  true  "Calculator form"
// @Success      200      {object}  response.Response{data=service.CalculationResponse}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/calculations [post]
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var req service.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.calcService.Calculate(c.Request.Context(), req)
	if err != nil {
		status, body := calculationError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// GetRates godoc
// @Summary      Active rate table
// @Description  Returns the statutory rates and depreciation schedule used by the calculator
// @Tags         calculations
// @Produce      json
// @Success      200  {object}  response.Response{data=RatesResponse}
// @Router       /api/rates [get]
func (h *CalculationHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, RatesResponse{
		AssessmentYear: h.calcService.AssessmentYear(),
		Rates:          h.calcService.Rates(),
	}))
}

func calculationError(err error) (int, response.Response) {
	var verrs calculator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity, response.ValidationFailed(http.StatusUnprocessableEntity, "Invalid calculator input", verrs)
	case errors.Is(err, service.ErrUnknownCategory), errors.Is(err, service.ErrHSCodeNotFound):
		return http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error())
	default:
		return http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error())
	}
}
