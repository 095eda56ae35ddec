package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"lifecost/internal/format"
	"lifecost/internal/measure"
	"lifecost/internal/units"
)

// Formatter defines the interface for run-result formatters
type Formatter interface {
	Format(result *measure.RunResult) (string, error)
	FormatType() string
}

// NewFormatter returns the formatter for the named format
func NewFormatter(formatType string) (Formatter, error) {
	switch formatType {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", formatType)
	}
}

// TableFormatter formats output as a human-readable report
type TableFormatter struct{}

// FormatType returns the format type
func (f *TableFormatter) FormatType() string {
	return "table"
}

// Format formats the run result as a table
func (f *TableFormatter) Format(result *measure.RunResult) (string, error) {
	var out strings.Builder

	out.WriteString("Measure Run Results\n")
	out.WriteString("===================\n")
	out.WriteString(fmt.Sprintf("Measure: %s\n", result.Measure))
	out.WriteString(fmt.Sprintf("Outcome: %s\n", result.Outcome))
	out.WriteString(fmt.Sprintf("Started: %s\n\n", result.StartedAt.Format("2006-01-02 15:04:05 MST")))

	if result.InitialCondition != "" {
		out.WriteString(fmt.Sprintf("Initial condition: %s\n", result.InitialCondition))
	}
	if result.FinalCondition != "" {
		out.WriteString(fmt.Sprintf("Final condition:   %s\n", result.FinalCondition))
	}
	if result.InitialCondition != "" || result.FinalCondition != "" {
		out.WriteString("\n")
	}

	if len(result.Info) > 0 {
		out.WriteString("Messages\n")
		out.WriteString("--------\n")
		for _, msg := range result.Info {
			out.WriteString(fmt.Sprintf("• %s\n", msg))
		}
		out.WriteString("\n")
	}

	if len(result.Errors) > 0 {
		out.WriteString("Errors\n")
		out.WriteString("------\n")
		for _, msg := range result.Errors {
			out.WriteString(fmt.Sprintf("• %s\n", msg))
		}
		out.WriteString("\n")
	}

	out.WriteString(fmt.Sprintf("Lifecycle cost objects at start: %d, removed: %d, created: %d\n",
		result.InitialRecordCount, result.RecordsRemoved, len(result.RecordsCreated)))

	if len(result.RecordsCreated) > 0 {
		out.WriteString("\nCreated Lifecycle Cost Objects\n")
		out.WriteString("------------------------------\n")

		maxNameWidth := 4 // "Name"
		for _, rec := range result.RecordsCreated {
			if len(rec.Name) > maxNameWidth {
				maxNameWidth = len(rec.Name)
			}
		}
		maxNameWidth += 2

		rowFormat := fmt.Sprintf("%%-%ds %%-14s %%14s %%10s %%10s\n", maxNameWidth)
		out.WriteString(fmt.Sprintf(rowFormat, "Name", "Category", "Rate ($/ft^2)", "Repeat", "Start"))
		out.WriteString(strings.Repeat("-", maxNameWidth+52) + "\n")

		for _, rec := range result.RecordsCreated {
			out.WriteString(fmt.Sprintf(rowFormat,
				rec.Name,
				rec.Category,
				format.NeatFigure(units.CostPerSquareMeterToIP(rec.CostPerM2), 2),
				fmt.Sprintf("%d yr", rec.RepeatPeriodYears),
				fmt.Sprintf("%d yr", rec.YearsFromStart)))
		}
	}

	return out.String(), nil
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

// FormatType returns the format type
func (f *JSONFormatter) FormatType() string {
	return "json"
}

// Format formats the run result as JSON
func (f *JSONFormatter) Format(result *measure.RunResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// CSVFormatter formats output as CSV
type CSVFormatter struct{}

// FormatType returns the format type
func (f *CSVFormatter) FormatType() string {
	return "csv"
}

// Format formats the run result as CSV: one row per registered message, then
// one row per created record
func (f *CSVFormatter) Format(result *measure.RunResult) (string, error) {
	var out strings.Builder
	writer := csv.NewWriter(&out)

	header := []string{"Measure", "Kind", "Message", "Category", "RatePerM2", "RepeatYears", "StartYears"}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := func(kind, message string) []string {
		return []string{result.Measure, kind, message, "", "", "", ""}
	}

	records := [][]string{row("outcome", string(result.Outcome))}
	if result.InitialCondition != "" {
		records = append(records, row("initial_condition", result.InitialCondition))
	}
	for _, msg := range result.Info {
		records = append(records, row("info", msg))
	}
	for _, msg := range result.Errors {
		records = append(records, row("error", msg))
	}
	if result.FinalCondition != "" {
		records = append(records, row("final_condition", result.FinalCondition))
	}
	for _, rec := range result.RecordsCreated {
		records = append(records, []string{
			result.Measure,
			"created_record",
			rec.Name,
			rec.Category,
			fmt.Sprintf("%.6f", rec.CostPerM2),
			fmt.Sprintf("%d", rec.RepeatPeriodYears),
			fmt.Sprintf("%d", rec.YearsFromStart),
		})
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return out.String(), nil
}
