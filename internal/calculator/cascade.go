package calculator

import (
	"github.com/shopspring/decimal"

	"importduty/internal/tariff"
)

// Result is the full tax breakdown of one item. Amounts are unrounded and in
// the currency of the input.
type Result struct {
	Category     Category `json:"category"`
	CustomsValue float64  `json:"customs_value"`
	ImportDuty   float64  `json:"import_duty"`
	ExciseBase   float64  `json:"excise_base"`
	Excise       float64  `json:"excise"`
	VATBase      float64  `json:"vat_base"`
	VAT          float64  `json:"vat"`
	IDF          float64  `json:"idf"`
	RDL          float64  `json:"rdl"`
	TotalTaxes   float64  `json:"total_taxes"`
	TotalLanded  float64  `json:"total_landed"`

	ImportDutyRate float64 `json:"import_duty_rate"`
	ExciseRate     float64 `json:"excise_rate"`
	// Display percentages, rounded to whole numbers.
	ImportDutyPercent string `json:"import_duty_percent"`
	ExcisePercent     string `json:"excise_percent"`
}

// Cascade computes duty, excise and VAT on a compounding base, and IDF and
// RDL on the customs value alone.
func Cascade(customsValue, importDutyRate, exciseRate float64, table tariff.RateTable) Result {
	importDuty := customsValue * importDutyRate
	exciseBase := customsValue + importDuty
	excise := exciseBase * exciseRate
	vatBase := exciseBase + excise
	vat := vatBase * table.VAT
	idf := customsValue * table.IDF
	rdl := customsValue * table.RDL
	totalTaxes := importDuty + excise + vat + idf + rdl

	return Result{
		CustomsValue:      customsValue,
		ImportDuty:        importDuty,
		ExciseBase:        exciseBase,
		Excise:            excise,
		VATBase:           vatBase,
		VAT:               vat,
		IDF:               idf,
		RDL:               rdl,
		TotalTaxes:        totalTaxes,
		TotalLanded:       customsValue + totalTaxes,
		ImportDutyRate:    importDutyRate,
		ExciseRate:        exciseRate,
		ImportDutyPercent: displayPercent(importDutyRate, 0),
		ExcisePercent:     displayPercent(exciseRate, 0),
	}
}

// displayPercent renders a fractional rate as a percentage with the given
// number of decimal places.
func displayPercent(rate float64, places int32) string {
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(places)
}

// ratePercent renders a fractional rate as a percentage without trailing
// zeros, e.g. 0.025 → "2.5".
func ratePercent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String()
}
