package tariff

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadRates reads a YAML rate file. Keys missing from the file keep their
// default value; unknown keys are rejected.
func LoadRates(path string) (RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("read rate file: %w", err)
	}
	return ParseRates(data)
}

// ParseRates decodes a YAML rate document on top of DefaultRates.
func ParseRates(data []byte) (RateTable, error) {
	rates := DefaultRates()
	if err := yaml.UnmarshalStrict(data, &rates); err != nil {
		return RateTable{}, fmt.Errorf("decode rate file: %w", err)
	}
	if err := rates.Validate(); err != nil {
		return RateTable{}, fmt.Errorf("invalid rate table: %w", err)
	}
	return rates, nil
}
