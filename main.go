// Package main provides the entry point for the lifecost building
// lifecycle-cost tool.
//
// lifecost applies lifecycle-cost measures to building model files. Its
// built-in measure, add_lifecycle_costs, attaches material/installation,
// demolition, and operations & maintenance cost records to a building using
// per-floor-area rates and user-controlled timing.
//
// Usage:
//
//	lifecost apply building.json [flags]
//	lifecost validate arguments.yaml
//	lifecost arguments
//	lifecost version
//
// For detailed usage information, run: lifecost --help
package main

import (
	"fmt"
	"os"

	"lifecost/cmd"
	"lifecost/internal/errors"
)

// main executes the CLI commands and handles error formatting and exit codes.
func main() {
	if err := cmd.Execute(); err != nil {
		if measureErr, ok := err.(*errors.MeasureError); ok {
			fmt.Fprint(os.Stderr, errors.FormatErrorForUser(measureErr))
			os.Exit(errors.GetExitCode(measureErr))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
