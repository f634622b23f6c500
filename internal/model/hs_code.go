package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"importduty/internal/tariff"
)

// HSCode is a stored Harmonized System classification with its default rates
type HSCode struct {
	ID             uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code           string              `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Description    string              `gorm:"type:varchar(255);not null" json:"description"`
	DutyPercent    decimal.NullDecimal `gorm:"type:decimal(7,3)" json:"duty_percent"` // NULL = caller supplies duty
	ExcisePercent  decimal.Decimal     `gorm:"type:decimal(7,3);not null;default:0" json:"excise_percent"`
	ExciseByEngine bool                `gorm:"default:false" json:"excise_by_engine"`
	Position       int                 `gorm:"not null;index" json:"position"` // Display order; the highest is the fallback
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TableName pins the table name
func (HSCode) TableName() string {
	return "hs_codes"
}

// ToEntry converts the row into a calculator classification
func (h HSCode) ToEntry() tariff.HSEntry {
	entry := tariff.HSEntry{
		Code:           h.Code,
		Description:    h.Description,
		ExcisePercent:  h.ExcisePercent.InexactFloat64(),
		ExciseByEngine: h.ExciseByEngine,
	}
	if h.DutyPercent.Valid {
		duty := h.DutyPercent.Decimal.InexactFloat64()
		entry.DutyPercent = &duty
	}
	return entry
}

// NewHSCode builds a row from a classification at the given display position
func NewHSCode(entry tariff.HSEntry, position int) HSCode {
	row := HSCode{
		Code:           entry.Code,
		Description:    entry.Description,
		ExcisePercent:  decimal.NewFromFloat(entry.ExcisePercent),
		ExciseByEngine: entry.ExciseByEngine,
		Position:       position,
	}
	if entry.DutyPercent != nil {
		row.DutyPercent = decimal.NewNullDecimal(decimal.NewFromFloat(*entry.DutyPercent))
	}
	return row
}
