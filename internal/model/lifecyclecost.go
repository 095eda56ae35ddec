package model

import (
	"github.com/shopspring/decimal"

	"lifecost/internal/errors"
)

// Category classifies a cost record for aggregation
type Category string

const (
	// CategoryConstruction tags material/installation costs
	CategoryConstruction Category = "Construction"
	// CategorySalvage tags demolition costs
	CategorySalvage Category = "Salvage"
	// CategoryMaintenance tags operations and maintenance costs
	CategoryMaintenance Category = "Maintenance"
)

// CostUnits tags how a record's rate is applied
type CostUnits string

// CostUnitsCostPerArea is the only rate kind this model recognizes: the rate
// is currency per m² of costed area.
const CostUnitsCostPerArea CostUnits = "CostPerArea"

// LifeCycleCost is one timed, categorized monetary line item attached to a
// building. Cost is a rate in $/m²; the record recurs every
// RepeatPeriodYears, first occurring YearsFromStart after simulation start.
type LifeCycleCost struct {
	Handle            string    `json:"handle"`
	Name              string    `json:"name"`
	Category          Category  `json:"category"`
	Cost              float64   `json:"cost"`
	CostUnits         CostUnits `json:"cost_units"`
	RepeatPeriodYears int       `json:"repeat_period_years"`
	YearsFromStart    int       `json:"years_from_start"`

	building *Building
}

// Validate checks record-level constraints
func (c *LifeCycleCost) Validate() error {
	if c.Name == "" {
		return errors.ModelError("lifecycle cost record name is required")
	}
	switch c.Category {
	case CategoryConstruction, CategorySalvage, CategoryMaintenance:
	default:
		return errors.ModelError("unknown lifecycle cost category").
			WithContext("category", string(c.Category)).
			WithSuggestion("Use one of: Construction, Salvage, Maintenance")
	}
	if c.CostUnits != CostUnitsCostPerArea {
		return errors.ModelError("unknown cost units").
			WithContext("costUnits", string(c.CostUnits)).
			WithSuggestion("Use CostPerArea")
	}
	if c.RepeatPeriodYears < 1 {
		return errors.ModelError("repeat period must be at least 1 year").
			WithContext("repeatPeriodYears", c.RepeatPeriodYears)
	}
	if c.YearsFromStart < 0 {
		return errors.ModelError("years from start cannot be negative").
			WithContext("yearsFromStart", c.YearsFromStart)
	}
	return nil
}

// TotalCost computes the record's total: rate times the owning building's
// costed area. Returns zero for a detached record.
func (c *LifeCycleCost) TotalCost() decimal.Decimal {
	if c.building == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(c.Cost).Mul(decimal.NewFromFloat(c.building.FloorAreaM2))
}
