package calculator

import "importduty/internal/tariff"

// Compute validates the input and, when it passes, returns its tax breakdown.
// currentYear is the assessment year used for vehicle age.
func Compute(in Input, table tariff.RateTable, currentYear int) (Result, ValidationErrors) {
	if errs := Validate(in); !errs.Valid() {
		return Result{}, errs
	}

	r := SelectRates(in, table, currentYear)
	res := Cascade(r.CustomsValue, r.ImportDutyRate, r.ExciseRate, table)
	res.Category = in.Category()
	return res, nil
}
