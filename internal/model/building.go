package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lifecost/internal/errors"
)

// Building is the entity that lifecycle cost records attach to. The floor
// area is the costed area: the basis a per-area rate is multiplied by.
type Building struct {
	Handle         string           `json:"handle"`
	Name           string           `json:"name"`
	FloorAreaM2    float64          `json:"floor_area_m2"`
	LifeCycleCosts []*LifeCycleCost `json:"life_cycle_costs"`
}

// NewBuilding creates a building with a fresh handle and no cost records
func NewBuilding(name string, floorAreaM2 float64) *Building {
	return &Building{
		Handle:      uuid.New().String(),
		Name:        name,
		FloorAreaM2: floorAreaM2,
	}
}

// Validate checks building-level constraints, including every attached record
func (b *Building) Validate() error {
	if b.FloorAreaM2 <= 0 {
		return errors.ModelError("building floor area must be positive").
			WithContext("floorAreaM2", b.FloorAreaM2).
			WithSuggestion("Set floor_area_m2 to the building's costed area in m²")
	}

	seen := make(map[string]bool)
	if b.Handle != "" {
		seen[b.Handle] = true
	}
	for i, c := range b.LifeCycleCosts {
		if c == nil {
			return errors.ModelErrorf("lifecycle cost record %d is null", i)
		}
		if err := c.Validate(); err != nil {
			return errors.WrapError(err, "", "invalid lifecycle cost record").
				WithContext("recordIndex", i).
				WithContext("recordName", c.Name)
		}
		if c.Handle != "" && seen[c.Handle] {
			return errors.ModelError("duplicate object handle").
				WithContext("handle", c.Handle).
				WithContext("recordName", c.Name)
		}
		if c.Handle != "" {
			seen[c.Handle] = true
		}
	}

	return nil
}

// AddLifeCycleCost creates a record, attaches it to the building, and returns
// it. This mirrors the host SDK call that takes (name, owner, rate, rate-kind,
// category, recurrence, start-offset).
func (b *Building) AddLifeCycleCost(name string, category Category, costPerM2 float64, units CostUnits, repeatPeriodYears, yearsFromStart int) (*LifeCycleCost, error) {
	c := &LifeCycleCost{
		Handle:            uuid.New().String(),
		Name:              name,
		Category:          category,
		Cost:              costPerM2,
		CostUnits:         units,
		RepeatPeriodYears: repeatPeriodYears,
		YearsFromStart:    yearsFromStart,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.building = b
	b.LifeCycleCosts = append(b.LifeCycleCosts, c)
	return c, nil
}

// RemoveLifeCycleCosts deletes every cost record on the building and returns
// how many were removed
func (b *Building) RemoveLifeCycleCosts() int {
	n := len(b.LifeCycleCosts)
	for _, c := range b.LifeCycleCosts {
		c.building = nil
	}
	b.LifeCycleCosts = nil
	return n
}

// TotalCost sums TotalCost across all records with the given category
func (b *Building) TotalCost(category Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.LifeCycleCosts {
		if c.Category == category {
			total = total.Add(c.TotalCost())
		}
	}
	return total
}

// adoptRecords wires parent pointers and fills missing handles after a load
func (b *Building) adoptRecords() {
	if b.Handle == "" {
		b.Handle = uuid.New().String()
	}
	for _, c := range b.LifeCycleCosts {
		c.building = b
		if c.Handle == "" {
			c.Handle = uuid.New().String()
		}
	}
}
