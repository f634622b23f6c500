package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importduty/internal/calculator"
	"importduty/internal/metrics"
	"importduty/internal/service"
	"importduty/internal/tariff"
)

func newService(t *testing.T, strict bool) (service.CalculationService, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	svc := service.NewCalculationService(service.CalculationServiceConfig{
		Rates:        tariff.DefaultRates(),
		Catalog:      tariff.DefaultCatalog(),
		StrictHSCode: strict,
		Now:          func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) },
		Metrics:      m,
	})
	return svc, m
}

func TestCalculateVehicle(t *testing.T) {
	svc, m := newService(t, false)

	resp, err := svc.Calculate(context.Background(), service.CalculateRequest{
		Category: "vehicle",
		CRSP:     2_500_000,
		Year:     2022,
		EngineCC: 2000,
		Shipping: 50_000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, calculator.CategoryVehicle, resp.Category)
	assert.Equal(t, "KES", resp.Currency)
	assert.Equal(t, 2025, resp.AssessmentYear)
	require.NotNil(t, resp.Valuation)
	assert.Equal(t, 3, resp.Valuation.Age)
	assert.Equal(t, 45.0, resp.Valuation.DepreciationPercent)
	assert.InDelta(t, 1_375_000, resp.Valuation.DepreciatedValue, 1e-6)
	assert.InDelta(t, 2_853_562.5, resp.Result.TotalLanded, 1e-6)
	assert.Nil(t, resp.HSCode)
	assert.Len(t, resp.LineItems, 8)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("vehicle")))
}

func TestCalculateUsesConfiguredAssessmentYear(t *testing.T) {
	svc := service.NewCalculationService(service.CalculationServiceConfig{
		Rates:          tariff.DefaultRates(),
		AssessmentYear: 2030,
	})
	assert.Equal(t, 2030, svc.AssessmentYear())

	resp, err := svc.Calculate(context.Background(), service.CalculateRequest{
		Category: "vehicle", CRSP: 1_000_000, Year: 2025, EngineCC: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Valuation.Age)
	assert.Equal(t, 55.0, resp.Valuation.DepreciationPercent)
}

func TestCalculateMotorcycle(t *testing.T) {
	svc, _ := newService(t, false)

	resp, err := svc.Calculate(context.Background(), service.CalculateRequest{
		Category: "motorcycle",
		CIF:      350_000,
		EngineCC: 650,
		Shipping: 99_999, // not part of motorcycle valuation
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Valuation)
	assert.InDelta(t, 350_000, resp.Result.CustomsValue, 1e-6)
	assert.InDelta(t, 650_125, resp.Result.TotalLanded, 1e-6)
}

func TestCalculateCargoDefaultsToPreselectedCode(t *testing.T) {
	svc, _ := newService(t, false)

	resp, err := svc.Calculate(context.Background(), service.CalculateRequest{Category: "cargo", CIF: 100_000})
	require.NoError(t, err)
	require.NotNil(t, resp.HSCode)
	assert.Equal(t, tariff.DefaultHSCode, resp.HSCode.Code)
	assert.Equal(t, 0.25, resp.Result.ExciseRate)
}

func TestCalculateCargoUnknownCodeFallsBackToOther(t *testing.T) {
	svc, _ := newService(t, false)
	manual := 30.0

	resp, err := svc.Calculate(context.Background(), service.CalculateRequest{
		Category:          "cargo",
		CIF:               100_000,
		HSCode:            "0101.21",
		ManualDutyPercent: &manual,
	})
	require.NoError(t, err)
	assert.Equal(t, tariff.OtherCode, resp.HSCode.Code)
	assert.True(t, resp.HSCode.ManualDuty)
	assert.Equal(t, 0.30, resp.Result.ImportDutyRate)
	assert.Equal(t, "30", resp.Result.ImportDutyPercent)
}

func TestCalculateCargoStrictRejectsUnknownCode(t *testing.T) {
	svc, _ := newService(t, true)

	_, err := svc.Calculate(context.Background(), service.CalculateRequest{Category: "cargo", CIF: 1, HSCode: "0101.21"})
	assert.ErrorIs(t, err, service.ErrHSCodeNotFound)

	_, err = svc.Calculate(context.Background(), service.CalculateRequest{Category: "cargo", CIF: 1, HSCode: "8704"})
	assert.NoError(t, err)
}

func TestCalculateReturnsFieldErrors(t *testing.T) {
	svc, m := newService(t, false)

	_, err := svc.Calculate(context.Background(), service.CalculateRequest{Category: "vehicle", Electric: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)

	var verrs calculator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, calculator.ValidationErrors{
		calculator.FieldCRSP: "Enter CRSP",
		calculator.FieldYear: "Valid year",
	}, verrs)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("vehicle", "crsp")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Calculations.WithLabelValues("vehicle")))
}

func TestCalculateRejectsUnknownCategory(t *testing.T) {
	svc, _ := newService(t, false)

	_, err := svc.Calculate(context.Background(), service.CalculateRequest{Category: "car"})
	assert.ErrorIs(t, err, service.ErrUnknownCategory)
}

func TestRatesExposesActiveTable(t *testing.T) {
	svc, _ := newService(t, false)
	assert.Equal(t, tariff.DefaultRates(), svc.Rates())
}
