package tariff

import (
	"strings"

	"github.com/samber/lo"
)

// OtherCode is the catch-all classification used when no entry matches.
const OtherCode = "OTHER"

// DefaultHSCode is the classification preselected for cargo.
const DefaultHSCode = "8711.50"

// HSEntry is one Harmonized System classification with its default rates.
//
// DutyPercent is nil when the classification carries no duty and the caller
// must supply one. ExciseByEngine marks classifications whose excise depends
// on engine size; cargo carries no engine size, so such entries resolve to
// zero excise.
type HSEntry struct {
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	DutyPercent    *float64 `json:"duty_percent"`
	ExcisePercent  float64  `json:"excise_percent"`
	ExciseByEngine bool     `json:"excise_by_engine"`
}

// HasDuty reports whether the classification specifies its own duty rate.
func (e HSEntry) HasDuty() bool {
	return e.DutyPercent != nil
}

func percent(v float64) *float64 {
	return &v
}

// DefaultHSEntries returns the built-in classification table. The last entry
// is the "Other Goods" fallback.
func DefaultHSEntries() []HSEntry {
	return []HSEntry{
		{Code: "8711.10", Description: "Motorcycles ≤50cc", DutyPercent: percent(25)},
		{Code: "8711.20", Description: "Motorcycles 50–250cc", DutyPercent: percent(25)},
		{Code: "8711.30", Description: "Motorcycles 250–500cc", DutyPercent: percent(25)},
		{Code: "8711.40", Description: "Motorcycles 500–800cc", DutyPercent: percent(25), ExcisePercent: 25},
		{Code: "8711.50", Description: "Motorcycles >800cc", DutyPercent: percent(25), ExcisePercent: 25},
		{Code: "8703", Description: "Motor Cars", DutyPercent: percent(35), ExciseByEngine: true},
		{Code: "8702", Description: "Buses", DutyPercent: percent(25)},
		{Code: "8704", Description: "Trucks", DutyPercent: percent(10)},
		{Code: "8517", Description: "Mobile Phones", DutyPercent: percent(10), ExcisePercent: 10},
		{Code: OtherCode, Description: "Other Goods"},
	}
}

// Catalog is an immutable, ordered set of HS classifications.
// It is safe for concurrent use.
type Catalog struct {
	entries []HSEntry
	byCode  map[string]int
}

// NewCatalog builds a catalog from entries in display order. The slice is
// copied so later changes by the caller are not observed.
func NewCatalog(entries []HSEntry) *Catalog {
	copied := lo.Map(entries, func(e HSEntry, _ int) HSEntry {
		if e.DutyPercent != nil {
			e.DutyPercent = percent(*e.DutyPercent)
		}
		return e
	})

	byCode := make(map[string]int, len(copied))
	for i, e := range copied {
		key := normalizeCode(e.Code)
		if _, exists := byCode[key]; !exists {
			byCode[key] = i
		}
	}

	return &Catalog{entries: copied, byCode: byCode}
}

// DefaultCatalog returns a catalog over DefaultHSEntries.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultHSEntries())
}

// Entries returns a copy of the catalog entries in order.
func (c *Catalog) Entries() []HSEntry {
	return lo.Times(len(c.entries), c.entryAt)
}

// Len returns the number of classifications.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Find returns the entry with the given code.
func (c *Catalog) Find(code string) (HSEntry, bool) {
	i, ok := c.byCode[normalizeCode(code)]
	if !ok {
		return HSEntry{}, false
	}
	return c.entryAt(i), true
}

// Lookup returns the entry with the given code, or the last entry of the
// catalog when the code is unknown.
func (c *Catalog) Lookup(code string) HSEntry {
	if e, ok := c.Find(code); ok {
		return e
	}
	return c.Fallback()
}

// Fallback returns the last catalog entry.
func (c *Catalog) Fallback() HSEntry {
	if len(c.entries) == 0 {
		return HSEntry{Code: OtherCode, Description: "Other Goods"}
	}
	return c.entryAt(len(c.entries) - 1)
}

func (c *Catalog) entryAt(i int) HSEntry {
	e := c.entries[i]
	if e.DutyPercent != nil {
		e.DutyPercent = percent(*e.DutyPercent)
	}
	return e
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
