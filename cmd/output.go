package cmd

import (
	"fmt"

	"lifecost/internal/errors"
	"lifecost/internal/measure"
	"lifecost/internal/output"
)

// outputResult renders a run result to stdout in the requested format
func outputResult(result *measure.RunResult, format string) error {
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return errors.ValidationErrorWithCause("unsupported output format", err).
			WithContext("format", format).
			WithSuggestion("Use table, json, or csv")
	}

	rendered, err := formatter.Format(result)
	if err != nil {
		return errors.WrapError(err, errors.ValidationErrorType, "failed to format run result").
			WithContext("format", format)
	}

	fmt.Print(rendered)
	if len(rendered) > 0 && rendered[len(rendered)-1] != '\n' {
		fmt.Println()
	}

	return nil
}
