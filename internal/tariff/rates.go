package tariff

import (
	"errors"
	"fmt"
)

// VehicleExcise holds excise rates for passenger vehicles, keyed by engine class.
type VehicleExcise struct {
	Electric       float64 `yaml:"electric" json:"electric"`
	UpTo1500       float64 `yaml:"up_to_1500" json:"up_to_1500"`
	From1501To3000 float64 `yaml:"from_1501_to_3000" json:"from_1501_to_3000"`
	Above3000      float64 `yaml:"above_3000" json:"above_3000"`
}

// MotorcycleExcise holds excise rates for motorcycles, keyed by engine class.
type MotorcycleExcise struct {
	UpTo500  float64 `yaml:"up_to_500" json:"up_to_500"`
	Above500 float64 `yaml:"above_500" json:"above_500"`
}

// RateTable is the statutory rate table. All rates are fractions (0.16 = 16%)
// except Depreciation, which holds whole percentages indexed by vehicle age.
type RateTable struct {
	VAT              float64          `yaml:"vat" json:"vat"`
	IDF              float64          `yaml:"idf" json:"idf"`
	RDL              float64          `yaml:"rdl" json:"rdl"`
	VehicleDuty      float64          `yaml:"vehicle_duty" json:"vehicle_duty"`
	MotorcycleDuty   float64          `yaml:"motorcycle_duty" json:"motorcycle_duty"`
	VehicleExcise    VehicleExcise    `yaml:"vehicle_excise" json:"vehicle_excise"`
	MotorcycleExcise MotorcycleExcise `yaml:"motorcycle_excise" json:"motorcycle_excise"`
	Depreciation     []float64        `yaml:"depreciation" json:"depreciation"`
}

// DefaultRates returns the 2025 Kenya rate table.
func DefaultRates() RateTable {
	return RateTable{
		VAT:            0.16,
		IDF:            0.025,
		RDL:            0.02,
		VehicleDuty:    0.35,
		MotorcycleDuty: 0.25,
		VehicleExcise: VehicleExcise{
			Electric:       0.10,
			UpTo1500:       0.20,
			From1501To3000: 0.25,
			Above3000:      0.35,
		},
		MotorcycleExcise: MotorcycleExcise{
			UpTo500:  0.00,
			Above500: 0.25,
		},
		Depreciation: []float64{0, 20, 35, 45, 50, 55, 60, 65},
	}
}

// DepreciationPercent returns the depreciation percentage for a vehicle of the
// given age. Negative ages read the first entry, ages past the end of the
// schedule reuse the last entry.
func (t RateTable) DepreciationPercent(age int) float64 {
	if len(t.Depreciation) == 0 {
		return 0
	}
	if age < 0 {
		age = 0
	}
	if last := len(t.Depreciation) - 1; age > last {
		age = last
	}
	return t.Depreciation[age]
}

// MaxDepreciationAge is the age from which the schedule stops changing.
func (t RateTable) MaxDepreciationAge() int {
	return len(t.Depreciation) - 1
}

// Validate checks that a rate table is usable by the calculator.
func (t RateTable) Validate() error {
	fractions := map[string]float64{
		"vat":                              t.VAT,
		"idf":                              t.IDF,
		"rdl":                              t.RDL,
		"vehicle_duty":                     t.VehicleDuty,
		"motorcycle_duty":                  t.MotorcycleDuty,
		"vehicle_excise.electric":          t.VehicleExcise.Electric,
		"vehicle_excise.up_to_1500":        t.VehicleExcise.UpTo1500,
		"vehicle_excise.from_1501_to_3000": t.VehicleExcise.From1501To3000,
		"vehicle_excise.above_3000":        t.VehicleExcise.Above3000,
		"motorcycle_excise.up_to_500":      t.MotorcycleExcise.UpTo500,
		"motorcycle_excise.above_500":      t.MotorcycleExcise.Above500,
	}
	for name, rate := range fractions {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("rate %s must be between 0 and 1, got %v", name, rate)
		}
	}

	if len(t.Depreciation) == 0 {
		return errors.New("depreciation schedule must not be empty")
	}
	for i, pct := range t.Depreciation {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("depreciation[%d] must be between 0 and 100, got %v", i, pct)
		}
		if i > 0 && pct < t.Depreciation[i-1] {
			return fmt.Errorf("depreciation schedule must be non-decreasing (index %d)", i)
		}
	}

	return nil
}
