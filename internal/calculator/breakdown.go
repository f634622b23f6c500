package calculator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"importduty/internal/tariff"
)

// Currency of all amounts.
const Currency = "KES"

// LineItem is one row of the printed breakdown.
type LineItem struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
	Total   bool    `json:"total,omitempty"`
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators and two decimals.
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("%.2f", amount)
}

// LineItems lays out the result in the order it is presented to the user.
// The table supplies the VAT, IDF and RDL labels.
func (r Result) LineItems(table tariff.RateTable) []LineItem {
	line := func(label string, amount float64) LineItem {
		return LineItem{Label: label, Amount: amount, Display: FormatAmount(amount)}
	}

	items := []LineItem{
		line("Customs Value", r.CustomsValue),
		line("Import Duty ("+r.ImportDutyPercent+"%)", r.ImportDuty),
		line("Excise Duty ("+r.ExcisePercent+"%)", r.Excise),
		line("VAT "+ratePercent(table.VAT)+"%", r.VAT),
		line("IDF "+ratePercent(table.IDF)+"%", r.IDF),
		line("RDL "+ratePercent(table.RDL)+"%", r.RDL),
		line("Total Taxes", r.TotalTaxes),
		line("Total Landed Cost", r.TotalLanded),
	}
	items[6].Total = true
	items[7].Total = true
	return items
}
