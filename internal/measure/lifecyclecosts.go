package measure

import (
	"lifecost/internal/errors"
	"lifecost/internal/format"
	"lifecost/internal/model"
	"lifecost/internal/units"
)

// Record name prefixes, one per created record kind
const (
	materialPrefix   = "LCC_Mat"
	demolitionPrefix = "LCC_Demo"
	omPrefix         = "LCC_OM"
)

// Expected-life bounds for the building
const (
	minExpectedLife = 1
	maxExpectedLife = 100
)

// AddLifeCycleCosts attaches material/installation, demolition, and O&M cost
// records to the building at user-supplied rates, optionally clearing any
// records already present.
//
// Creation is all-or-nothing: either all three records are written or none.
// A nonzero demolition rate alone does not trigger creation; only the
// material and O&M rates do.
type AddLifeCycleCosts struct{}

func init() {
	Register(&AddLifeCycleCosts{})
}

// Name returns the registry key for this measure
func (m *AddLifeCycleCosts) Name() string {
	return "add_lifecycle_costs"
}

// DisplayName returns the human-readable measure title
func (m *AddLifeCycleCosts) DisplayName() string {
	return "Add Lifecycle Costs to the Building"
}

// Description explains what the measure does
func (m *AddLifeCycleCosts) Description() string {
	return "Adds material and installation, demolition, and operations and maintenance " +
		"lifecycle cost objects to the building using per-floor-area rates, with " +
		"user-controlled timing. Existing lifecycle cost objects can be removed first."
}

// Arguments returns the measure's declared arguments in display order
func (m *AddLifeCycleCosts) Arguments() []Argument {
	return []Argument{
		{
			Name:        "remove_costs",
			DisplayName: "Remove Existing Lifecycle Cost Objects",
			Type:        ArgumentBool,
			Default:     true,
		},
		{
			Name:        "lcc_name",
			DisplayName: "Name",
			Type:        ArgumentString,
			Default:     "Building - Life Cycle Costs",
		},
		{
			Name:        "material_cost_ip",
			DisplayName: "Material and Installation Costs for Building per Floor Area",
			Type:        ArgumentDouble,
			Units:       "$/ft^2",
			Default:     0.0,
		},
		{
			Name:        "demolition_cost_ip",
			DisplayName: "Demolition Costs for Building per Floor Area",
			Type:        ArgumentDouble,
			Units:       "$/ft^2",
			Default:     0.0,
		},
		{
			Name:        "years_until_costs_start",
			DisplayName: "Years Until Costs Start",
			Type:        ArgumentInteger,
			Units:       "years",
			Default:     0,
		},
		{
			Name:        "demo_cost_initial_const",
			DisplayName: "Demolition Costs Occur During Initial Construction",
			Type:        ArgumentBool,
			Default:     false,
		},
		{
			Name:        "expected_life",
			DisplayName: "Expected Life",
			Type:        ArgumentInteger,
			Units:       "years",
			Default:     20,
		},
		{
			Name:        "om_cost_ip",
			DisplayName: "O & M Costs for Building per Floor Area",
			Type:        ArgumentDouble,
			Units:       "$/ft^2",
			Default:     0.0,
		},
		{
			Name:        "om_frequency",
			DisplayName: "O & M Frequency",
			Type:        ArgumentInteger,
			Units:       "years",
			Default:     1,
		},
	}
}

// Run applies the measure to the building
func (m *AddLifeCycleCosts) Run(runner *Runner, building *model.Building, args ArgumentMap) error {
	removeCosts, err := args.Bool("remove_costs")
	if err != nil {
		return err
	}
	lccName, err := args.String("lcc_name")
	if err != nil {
		return err
	}
	materialCostIP, err := args.Double("material_cost_ip")
	if err != nil {
		return err
	}
	demolitionCostIP, err := args.Double("demolition_cost_ip")
	if err != nil {
		return err
	}
	yearsUntilCostsStart, err := args.Integer("years_until_costs_start")
	if err != nil {
		return err
	}
	demoCostInitialConst, err := args.Bool("demo_cost_initial_const")
	if err != nil {
		return err
	}
	expectedLife, err := args.Integer("expected_life")
	if err != nil {
		return err
	}
	omCostIP, err := args.Double("om_cost_ip")
	if err != nil {
		return err
	}
	omFrequency, err := args.Integer("om_frequency")
	if err != nil {
		return err
	}

	// The demolition rate alone does not trigger creation
	costsRequested := materialCostIP != 0 || omCostIP != 0
	if !costsRequested {
		runner.RegisterInfo("No lifecycle costs were requested for the building.")
	}

	// Lifecycle timing checks; any violation aborts before mutation
	if expectedLife < minExpectedLife || expectedLife > maxExpectedLife {
		runner.RegisterError("Enter an integer between %d and %d for Expected Life.", minExpectedLife, maxExpectedLife)
		return errors.ValidationError("expected life out of range").
			WithContext("expected_life", expectedLife).
			WithSuggestion("Use a whole number of years between 1 and 100")
	}
	if yearsUntilCostsStart < 0 || yearsUntilCostsStart > expectedLife {
		runner.RegisterError("Enter an integer between 0 and the Expected Life for Years Until Costs Start.")
		return errors.ValidationError("years until costs start out of range").
			WithContext("years_until_costs_start", yearsUntilCostsStart).
			WithContext("expected_life", expectedLife).
			WithSuggestion("Use a whole number of years no earlier than 0 and no later than the expected life")
	}
	if omFrequency < 1 {
		runner.RegisterError("Enter an integer greater than or equal to 1 for O & M Frequency.")
		return errors.ValidationError("O & M frequency must be at least 1 year").
			WithContext("om_frequency", omFrequency)
	}

	initialCount := len(building.LifeCycleCosts)
	runner.RecordInitialCount(initialCount)
	runner.RegisterInitialCondition("The building started with %d lifecycle cost objects.", initialCount)

	costsRemoved := false
	if removeCosts && initialCount > 0 {
		removed := building.RemoveLifeCycleCosts()
		runner.RecordRemoved(removed)
		runner.RegisterInfo("Removed %d lifecycle cost objects from the building.", removed)
		costsRemoved = true
	}

	// Nothing requested and nothing removed makes the run a no-op
	if !costsRequested && !costsRemoved {
		runner.RegisterAsNotApplicable("No new lifecycle costs were requested and no lifecycle cost objects were removed.")
		return nil
	}

	if costsRequested {
		materialCostSI := units.CostPerSquareFootToSI(materialCostIP)
		demolitionCostSI := units.CostPerSquareFootToSI(demolitionCostIP)
		omCostSI := units.CostPerSquareFootToSI(omCostIP)

		demolitionStart := yearsUntilCostsStart
		if !demoCostInitialConst {
			demolitionStart = yearsUntilCostsStart + expectedLife
		}

		records := []struct {
			name     string
			category model.Category
			costSI   float64
			repeat   int
			start    int
		}{
			{materialPrefix + " - " + lccName, model.CategoryConstruction, materialCostSI, expectedLife, yearsUntilCostsStart},
			{demolitionPrefix + " - " + lccName, model.CategorySalvage, demolitionCostSI, expectedLife, demolitionStart},
			{omPrefix + " - " + lccName, model.CategoryMaintenance, omCostSI, omFrequency, 0},
		}

		for _, rec := range records {
			c, err := building.AddLifeCycleCost(rec.name, rec.category, rec.costSI, model.CostUnitsCostPerArea, rec.repeat, rec.start)
			if err != nil {
				runner.RegisterError("Failed to add lifecycle cost object '%s': %v", rec.name, err)
				return errors.WrapError(err, "", "failed to add lifecycle cost object").
					WithContext("recordName", rec.name)
			}
			runner.RecordCreated(CreatedRecord{
				Name:              c.Name,
				Category:          string(c.Category),
				CostPerM2:         c.Cost,
				RepeatPeriodYears: c.RepeatPeriodYears,
				YearsFromStart:    c.YearsFromStart,
			})
		}
	}

	if len(building.LifeCycleCosts) > 0 {
		totalConstruction := building.TotalCost(model.CategoryConstruction)
		floorAreaIP := units.SquareMetersToSquareFeet(building.FloorAreaM2)
		runner.RegisterFinalCondition(
			"Lifecycle cost objects were applied to a building with an area of %s ft^2. The building has a total construction cost of $%s.",
			format.NeatFigure(floorAreaIP, 0),
			format.NeatFigure(totalConstruction.InexactFloat64(), 0))
	} else {
		runner.RegisterFinalCondition("The building has no lifecycle cost objects.")
	}

	return nil
}
