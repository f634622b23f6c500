package calculator

import "importduty/internal/tariff"

// Rates is the outcome of rate selection: the customs value and the fractional
// duty and excise rates to apply to it.
type Rates struct {
	CustomsValue   float64
	ImportDutyRate float64
	ExciseRate     float64
}

// SelectRates derives the customs value and the applicable duty and excise
// rates. The input is assumed to be valid.
func SelectRates(in Input, table tariff.RateTable, currentYear int) Rates {
	switch v := in.(type) {
	case VehicleInput:
		return vehicleRates(v, table, currentYear)
	case MotorcycleInput:
		return motorcycleRates(v, table)
	case CargoInput:
		return cargoRates(v)
	}
	return Rates{}
}

// VehicleAge is the vehicle's age in whole years. It is not clamped.
func VehicleAge(manufactureYear, currentYear int) int {
	return currentYear - manufactureYear
}

// DepreciatedValue applies the age-based depreciation to a CRSP.
func DepreciatedValue(crsp float64, age int, table tariff.RateTable) float64 {
	return crsp * (1 - table.DepreciationPercent(age)/100)
}

func vehicleRates(v VehicleInput, table tariff.RateTable, currentYear int) Rates {
	age := VehicleAge(v.ManufactureYear, currentYear)
	return Rates{
		CustomsValue:   DepreciatedValue(v.CRSP, age, table) + v.ShippingInsurance,
		ImportDutyRate: table.VehicleDuty,
		ExciseRate:     VehicleExciseRate(v.Electric, v.EngineCC, table),
	}
}

// VehicleExciseRate picks the excise band for a vehicle. Band upper bounds
// are inclusive.
func VehicleExciseRate(electric bool, engineCC int, table tariff.RateTable) float64 {
	switch {
	case electric:
		return table.VehicleExcise.Electric
	case engineCC <= 1500:
		return table.VehicleExcise.UpTo1500
	case engineCC <= 3000:
		return table.VehicleExcise.From1501To3000
	default:
		return table.VehicleExcise.Above3000
	}
}

func motorcycleRates(v MotorcycleInput, table tariff.RateTable) Rates {
	return Rates{
		CustomsValue:   v.CIF,
		ImportDutyRate: table.MotorcycleDuty,
		ExciseRate:     MotorcycleExciseRate(v.EngineCC, table),
	}
}

// MotorcycleExciseRate applies the higher band strictly above 500cc.
func MotorcycleExciseRate(engineCC int, table tariff.RateTable) float64 {
	if engineCC > 500 {
		return table.MotorcycleExcise.Above500
	}
	return table.MotorcycleExcise.UpTo500
}

func cargoRates(v CargoInput) Rates {
	dutyPercent := v.manualDuty()
	if v.Classification.HasDuty() {
		dutyPercent = *v.Classification.DutyPercent
	}

	// Engine-dependent excise cannot be resolved for cargo: no engine size is
	// collected in this category, so it is charged at zero.
	excisePercent := v.Classification.ExcisePercent
	if v.Classification.ExciseByEngine {
		excisePercent = 0
	}

	return Rates{
		CustomsValue:   v.CIF,
		ImportDutyRate: dutyPercent / 100,
		ExciseRate:     excisePercent / 100,
	}
}
