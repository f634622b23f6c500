// Package calculator computes Kenyan import taxes for vehicles, motorcycles
// and general cargo.
//
// Inputs are validated with Validate, turned into a customs value and a pair
// of rates by SelectRates, and run through the duty → excise → VAT cascade by
// Cascade. Compute chains the three. Nothing in this package reads the clock
// or mutates the rate tables.
package calculator

import "importduty/internal/tariff"

// Category identifies the kind of imported item.
type Category string

const (
	CategoryVehicle    Category = "vehicle"
	CategoryMotorcycle Category = "motorcycle"
	CategoryCargo      Category = "cargo"
)

// ParseCategory maps a category name to a Category.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategoryVehicle, CategoryMotorcycle, CategoryCargo:
		return c, true
	}
	return "", false
}

// DefaultManualDutyPercent applies to cargo whose classification has no duty
// and no manual duty was given.
const DefaultManualDutyPercent = 25.0

// Input is one of VehicleInput, MotorcycleInput or CargoInput.
type Input interface {
	Category() Category
}

// VehicleInput values a passenger vehicle from its CRSP.
type VehicleInput struct {
	CRSP              float64
	ManufactureYear   int
	EngineCC          int
	Electric          bool
	ShippingInsurance float64
}

func (VehicleInput) Category() Category { return CategoryVehicle }

// MotorcycleInput values a motorcycle from its CIF.
type MotorcycleInput struct {
	CIF      float64
	EngineCC int
}

func (MotorcycleInput) Category() Category { return CategoryMotorcycle }

// CargoInput values general cargo from its CIF under an HS classification.
// ManualDutyPercent is used only when the classification has no duty; nil
// means DefaultManualDutyPercent.
type CargoInput struct {
	Classification    tariff.HSEntry
	CIF               float64
	ManualDutyPercent *float64
}

func (CargoInput) Category() Category { return CategoryCargo }

func (in CargoInput) manualDuty() float64 {
	if in.ManualDutyPercent == nil {
		return DefaultManualDutyPercent
	}
	return *in.ManualDutyPercent
}
