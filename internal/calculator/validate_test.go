package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"importduty/internal/calculator"
	"importduty/internal/tariff"
)

func TestValidateVehicle(t *testing.T) {
	errs := calculator.Validate(calculator.VehicleInput{})
	assert.Equal(t, calculator.ValidationErrors{
		calculator.FieldCRSP:     "Enter CRSP",
		calculator.FieldYear:     "Valid year",
		calculator.FieldEngineCC: "Enter CC",
	}, errs)

	errs = calculator.Validate(calculator.VehicleInput{CRSP: 1, ManufactureYear: 1999, EngineCC: 1500})
	assert.Equal(t, calculator.ValidationErrors{calculator.FieldYear: "Valid year"}, errs)

	errs = calculator.Validate(calculator.VehicleInput{CRSP: 1, ManufactureYear: 2000, EngineCC: 99999})
	assert.True(t, errs.Valid())
}

func TestValidateVehicleShipping(t *testing.T) {
	in := calculator.VehicleInput{CRSP: 1_000_000, ManufactureYear: 2020, EngineCC: 1200, ShippingInsurance: -1}
	assert.Equal(t, calculator.ValidationErrors{calculator.FieldShipping: "Invalid shipping"}, calculator.Validate(in))

	in.ShippingInsurance = 0
	assert.True(t, calculator.Validate(in).Valid())
}

func TestValidateElectricVehicleSkipsEngineSize(t *testing.T) {
	errs := calculator.Validate(calculator.VehicleInput{CRSP: 2_000_000, ManufactureYear: 2023, Electric: true})
	assert.True(t, errs.Valid())
}

func TestValidateMotorcycle(t *testing.T) {
	errs := calculator.Validate(calculator.MotorcycleInput{CIF: -5, EngineCC: 0})
	assert.Equal(t, calculator.ValidationErrors{
		calculator.FieldCIF:      "Enter CIF",
		calculator.FieldEngineCC: "Enter CC",
	}, errs)

	assert.True(t, calculator.Validate(calculator.MotorcycleInput{CIF: 1, EngineCC: 1}).Valid())
}

func TestValidateCargo(t *testing.T) {
	errs := calculator.Validate(calculator.CargoInput{Classification: tariff.DefaultCatalog().Fallback()})
	assert.Equal(t, calculator.ValidationErrors{calculator.FieldCIF: "Enter CIF"}, errs)

	negative := -10.0
	errs = calculator.Validate(calculator.CargoInput{CIF: 10, ManualDutyPercent: &negative})
	assert.True(t, errs.Valid())
}

func TestValidateUnknownInput(t *testing.T) {
	errs := calculator.Validate(nil)
	assert.Contains(t, errs, calculator.FieldCategory)
}

func TestValidationErrorsMessageIsSorted(t *testing.T) {
	errs := calculator.ValidationErrors{"year": "Valid year", "crsp": "Enter CRSP"}
	assert.EqualError(t, errs, "invalid input: crsp: Enter CRSP; year: Valid year")
}

func TestParseCategory(t *testing.T) {
	c, ok := calculator.ParseCategory("motorcycle")
	assert.True(t, ok)
	assert.Equal(t, calculator.CategoryMotorcycle, c)

	_, ok = calculator.ParseCategory("car")
	assert.False(t, ok)
}
