// Package measure defines the measure contract: scripted mutations that a
// host applies to a building model. A measure declares typed arguments, is
// handed a building and validated argument values, and reports its progress
// and outcome through a Runner.
package measure

import "lifecost/internal/model"

// Measure is a scripted building-model mutation
type Measure interface {
	// Name is the registry key used to look the measure up
	Name() string

	// DisplayName is the human-readable measure title
	DisplayName() string

	// Description explains what the measure does
	Description() string

	// Arguments returns the measure's declared arguments in display order
	Arguments() []Argument

	// Run executes the measure against the building. Progress and outcome
	// are reported on the runner; a non-nil error means the run aborted.
	Run(runner *Runner, building *model.Building, args ArgumentMap) error
}
