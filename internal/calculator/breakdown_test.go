package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importduty/internal/calculator"
	"importduty/internal/tariff"
)

func TestLineItemsFollowDisplayOrder(t *testing.T) {
	rates := tariff.DefaultRates()
	res := mustCompute(t, calculator.VehicleInput{
		CRSP:              2_500_000,
		ManufactureYear:   testYear - 3,
		EngineCC:          2000,
		ShippingInsurance: 50_000,
	})

	items := res.LineItems(rates)
	require.Len(t, items, 8)

	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{
		"Customs Value",
		"Import Duty (35%)",
		"Excise Duty (25%)",
		"VAT 16%",
		"IDF 2.5%",
		"RDL 2%",
		"Total Taxes",
		"Total Landed Cost",
	}, labels)

	assert.Equal(t, "1,425,000.00", items[0].Display)
	assert.Equal(t, "480,937.50", items[2].Display)
	assert.Equal(t, "2,853,562.50", items[7].Display)
	assert.InDelta(t, res.TotalLanded, items[7].Amount, delta)
	assert.False(t, items[5].Total)
	assert.True(t, items[6].Total)
	assert.True(t, items[7].Total)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", calculator.FormatAmount(0))
	assert.Equal(t, "999.99", calculator.FormatAmount(999.99))
	assert.Equal(t, "300,125.00", calculator.FormatAmount(300_125))
}
