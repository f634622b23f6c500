package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"importduty/internal/calculator"
	"importduty/internal/metrics"
	"importduty/internal/tariff"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "service")

var (
	ErrUnknownCategory = errors.New("unknown item category")
	ErrValidation      = errors.New("validation failed")
)

// --- DTOs ---

// CalculateRequest mirrors the calculator form. Only the fields of the chosen
// category are read.
type CalculateRequest struct {
	Category string `json:"category" binding:"required"`

	// vehicle
	CRSP     float64 `json:"crsp"`
	Year     int     `json:"year"`
	Electric bool    `json:"electric"`
	Shipping float64 `json:"shipping"`

	// vehicle, motorcycle
	EngineCC int `json:"engine_cc"`

	// motorcycle, cargo
	CIF float64 `json:"cif"`

	// cargo
	HSCode            string   `json:"hs_code"`
	ManualDutyPercent *float64 `json:"manual_duty_percent"`
}

type VehicleValuation struct {
	Age                 int     `json:"age"`
	DepreciationPercent float64 `json:"depreciation_percent"`
	DepreciatedValue    float64 `json:"depreciated_value"`
}

type CalculationResponse struct {
	ID             string                `json:"id"`
	Category       calculator.Category   `json:"category"`
	Currency       string                `json:"currency"`
	AssessmentYear int                   `json:"assessment_year"`
	Valuation      *VehicleValuation     `json:"valuation,omitempty"`
	HSCode         *HSCodeResponse       `json:"hs_code,omitempty"`
	Result         calculator.Result     `json:"result"`
	LineItems      []calculator.LineItem `json:"line_items"`
}

// --- Interface ---

type CalculationService interface {
	Calculate(ctx context.Context, req CalculateRequest) (CalculationResponse, error)
	Rates() tariff.RateTable
	AssessmentYear() int
}

type CalculationServiceConfig struct {
	Rates   tariff.RateTable
	Catalog *tariff.Catalog
	// AssessmentYear fixes the year used for vehicle age; 0 uses Now().Year().
	AssessmentYear int
	StrictHSCode   bool
	Now            func() time.Time
	Metrics        *metrics.Metrics
}

type calculationService struct {
	rates   tariff.RateTable
	catalog *tariff.Catalog
	year    int
	strict  bool
	now     func() time.Time
	metrics *metrics.Metrics
}

func NewCalculationService(cfg CalculationServiceConfig) CalculationService {
	s := &calculationService{
		rates:   cfg.Rates,
		catalog: cfg.Catalog,
		year:    cfg.AssessmentYear,
		strict:  cfg.StrictHSCode,
		now:     cfg.Now,
		metrics: cfg.Metrics,
	}
	if s.catalog == nil {
		s.catalog = tariff.DefaultCatalog()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
	return s
}

// --- Implementation ---

func (s *calculationService) Rates() tariff.RateTable {
	return s.rates
}

func (s *calculationService) AssessmentYear() int {
	if s.year != 0 {
		return s.year
	}
	return s.now().Year()
}

func (s *calculationService) Calculate(ctx context.Context, req CalculateRequest) (CalculationResponse, error) {
	category, ok := calculator.ParseCategory(req.Category)
	if !ok {
		return CalculationResponse{}, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
	}

	in, hs, err := s.toInput(category, req)
	if err != nil {
		return CalculationResponse{}, err
	}

	year := s.AssessmentYear()
	res, verrs := calculator.Compute(in, s.rates, year)
	if !verrs.Valid() {
		for field := range verrs {
			s.metrics.ValidationFailures.WithLabelValues(string(category), field).Inc()
		}
		return CalculationResponse{}, fmt.Errorf("%w: %w", ErrValidation, verrs)
	}

	s.metrics.Calculations.WithLabelValues(string(category)).Inc()
	s.metrics.LandedCost.WithLabelValues(string(category)).Observe(res.TotalLanded)

	resp := CalculationResponse{
		ID:             uuid.NewString(),
		Category:       category,
		Currency:       calculator.Currency,
		AssessmentYear: year,
		Result:         res,
		LineItems:      res.LineItems(s.rates),
	}
	if v, ok := in.(calculator.VehicleInput); ok {
		age := calculator.VehicleAge(v.ManufactureYear, year)
		resp.Valuation = &VehicleValuation{
			Age:                 age,
			DepreciationPercent: s.rates.DepreciationPercent(age),
			DepreciatedValue:    calculator.DepreciatedValue(v.CRSP, age, s.rates),
		}
	}
	if hs != nil {
		hsResp := toHSCodeResponse(*hs)
		resp.HSCode = &hsResp
	}

	log.WithFields(logrus.Fields{
		"calculation_id": resp.ID,
		"category":       category,
		"customs_value":  res.CustomsValue,
		"total_taxes":    res.TotalTaxes,
	}).Debug("calculated import taxes")

	return resp, nil
}

func (s *calculationService) toInput(category calculator.Category, req CalculateRequest) (calculator.Input, *tariff.HSEntry, error) {
	switch category {
	case calculator.CategoryVehicle:
		return calculator.VehicleInput{
			CRSP:              req.CRSP,
			ManufactureYear:   req.Year,
			EngineCC:          req.EngineCC,
			Electric:          req.Electric,
			ShippingInsurance: req.Shipping,
		}, nil, nil
	case calculator.CategoryMotorcycle:
		return calculator.MotorcycleInput{
			CIF:      req.CIF,
			EngineCC: req.EngineCC,
		}, nil, nil
	default:
		entry, err := s.classify(req.HSCode)
		if err != nil {
			return nil, nil, err
		}
		return calculator.CargoInput{
			Classification:    entry,
			CIF:               req.CIF,
			ManualDutyPercent: req.ManualDutyPercent,
		}, &entry, nil
	}
}

// classify resolves an HS code. An empty code selects the default
// classification; an unknown one falls back to the catalog's last entry
// unless strict matching is on.
func (s *calculationService) classify(code string) (tariff.HSEntry, error) {
	if code == "" {
		code = tariff.DefaultHSCode
	}
	if entry, ok := s.catalog.Find(code); ok {
		return entry, nil
	}
	if s.strict {
		return tariff.HSEntry{}, fmt.Errorf("%w: %q", ErrHSCodeNotFound, code)
	}
	return s.catalog.Fallback(), nil
}
