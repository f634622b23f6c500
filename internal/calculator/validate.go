package calculator

import (
	"sort"
	"strings"
)

// Field names reported in ValidationErrors.
const (
	FieldCategory = "category"
	FieldCRSP     = "crsp"
	FieldYear     = "year"
	FieldEngineCC = "engine_cc"
	FieldCIF      = "cif"
	FieldShipping = "shipping"
)

// MinManufactureYear is the oldest vehicle year accepted.
const MinManufactureYear = 2000

// ValidationErrors maps a field name to a human readable message.
// An empty map means the input is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Valid reports whether no field failed.
func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

// Validate applies the rules of the input's category and returns every
// failing field. A nil input is reported against the category field.
func Validate(in Input) ValidationErrors {
	errs := ValidationErrors{}

	switch v := in.(type) {
	case VehicleInput:
		if v.CRSP <= 0 {
			errs[FieldCRSP] = "Enter CRSP"
		}
		if v.ManufactureYear < MinManufactureYear {
			errs[FieldYear] = "Valid year"
		}
		if !v.Electric && v.EngineCC <= 0 {
			errs[FieldEngineCC] = "Enter CC"
		}
		if v.ShippingInsurance < 0 {
			errs[FieldShipping] = "Invalid shipping"
		}
	case MotorcycleInput:
		if v.CIF <= 0 {
			errs[FieldCIF] = "Enter CIF"
		}
		if v.EngineCC <= 0 {
			errs[FieldEngineCC] = "Enter CC"
		}
	case CargoInput:
		if v.CIF <= 0 {
			errs[FieldCIF] = "Enter CIF"
		}
	default:
		errs[FieldCategory] = "Select item type"
	}

	return errs
}
