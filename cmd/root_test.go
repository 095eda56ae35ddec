package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"lifecost/internal/errors"
	"lifecost/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// resetApplyFlags restores the apply flag variables between Execute calls,
// which otherwise keep their last parsed values
func resetApplyFlags() {
	argumentsFile = ""
	setValues = nil
	outPath = ""
	dryRun = false
}

// 929.0304 m² is 10,000 ft²
const testModelJSON = `{
  "version": "1.0",
  "building": {
    "name": "Test Building",
    "floor_area_m2": 929.0304,
    "life_cycle_costs": []
  }
}`

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		raw    string
		expect interface{}
	}{
		{"true", true},
		{"false", false},
		{"42", 42},
		{"2.5", 2.5},
		{"-1", -1},
		{"hello", "hello"},
		{"Building - Life Cycle Costs", "Building - Life Cycle Costs"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := parseLiteral(tt.raw); got != tt.expect {
				t.Errorf("parseLiteral(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.expect, tt.expect)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	defer func() { outputFormat = "table" }()

	for _, valid := range []string{"table", "json", "csv"} {
		outputFormat = valid
		if err := validateOutputFormat(); err != nil {
			t.Errorf("format %q should be valid: %v", valid, err)
		}
	}

	outputFormat = "xml"
	err := validateOutputFormat()
	if err == nil {
		t.Fatal("expected an error for an invalid format")
	}
	if !errors.IsErrorType(err, errors.ValidationErrorType) {
		t.Errorf("expected VALIDATION error, got %v", err)
	}
}

func TestApplyEndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	modelFile := writeFile(t, tempDir, "building.json", testModelJSON)
	argsFile := writeFile(t, tempDir, "args.yaml", `
measure: add_lifecycle_costs
arguments:
  material_cost_ip: 2.0
  om_cost_ip: 0.5
`)

	rootCmd.SetArgs([]string{"apply", modelFile, "--arguments", argsFile})
	defer resetApplyFlags()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	mutated, err := model.Load(modelFile)
	if err != nil {
		t.Fatalf("failed to reload model: %v", err)
	}
	if len(mutated.Building.LifeCycleCosts) != 3 {
		t.Errorf("expected 3 records written back, got %d", len(mutated.Building.LifeCycleCosts))
	}
}

func TestApplySetOverridesArgumentsFile(t *testing.T) {
	tempDir := t.TempDir()
	modelFile := writeFile(t, tempDir, "building.json", testModelJSON)
	argsFile := writeFile(t, tempDir, "args.json", `{
		"arguments": {"material_cost_ip": 1.0}
	}`)

	rootCmd.SetArgs([]string{"apply", modelFile, "--arguments", argsFile, "--set", "material_cost_ip=2.0"})
	defer resetApplyFlags()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	mutated, err := model.Load(modelFile)
	if err != nil {
		t.Fatalf("failed to reload model: %v", err)
	}

	// 2.0 $/ft² over 10,000 ft² of costed area
	total := mutated.Building.TotalCost(model.CategoryConstruction).InexactFloat64()
	if diff := total - 20000.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("expected construction total 20000 from the --set rate, got %v", total)
	}
}

func TestApplyDryRunDoesNotWrite(t *testing.T) {
	tempDir := t.TempDir()
	modelFile := writeFile(t, tempDir, "building.json", testModelJSON)

	rootCmd.SetArgs([]string{"apply", modelFile, "--set", "material_cost_ip=2.0", "--dry-run"})
	defer resetApplyFlags()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	untouched, err := model.Load(modelFile)
	if err != nil {
		t.Fatalf("failed to reload model: %v", err)
	}
	if len(untouched.Building.LifeCycleCosts) != 0 {
		t.Errorf("dry run must not write, found %d records", len(untouched.Building.LifeCycleCosts))
	}
}

func TestApplyOutPath(t *testing.T) {
	tempDir := t.TempDir()
	modelFile := writeFile(t, tempDir, "building.json", testModelJSON)
	outFile := filepath.Join(tempDir, "costed.json")

	rootCmd.SetArgs([]string{"apply", modelFile, "--set", "material_cost_ip=1.0", "--out", outFile})
	defer resetApplyFlags()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	original, err := model.Load(modelFile)
	if err != nil {
		t.Fatalf("failed to reload original model: %v", err)
	}
	if len(original.Building.LifeCycleCosts) != 0 {
		t.Error("original model must be untouched when --out is given")
	}

	mutated, err := model.Load(outFile)
	if err != nil {
		t.Fatalf("failed to load output model: %v", err)
	}
	if len(mutated.Building.LifeCycleCosts) != 3 {
		t.Errorf("expected 3 records in the output model, got %d", len(mutated.Building.LifeCycleCosts))
	}
}

func TestApplyValidationFailure(t *testing.T) {
	tempDir := t.TempDir()
	modelFile := writeFile(t, tempDir, "building.json", testModelJSON)

	rootCmd.SetArgs([]string{"apply", modelFile, "--set", "material_cost_ip=1.0", "--set", "expected_life=150"})
	defer resetApplyFlags()

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for out-of-range expected_life")
	}
	if !errors.IsErrorType(err, errors.ValidationErrorType) {
		t.Errorf("expected VALIDATION error, got %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("valid arguments file", func(t *testing.T) {
		argsFile := writeFile(t, tempDir, "valid.json", `{
			"measure": "add_lifecycle_costs",
			"arguments": {"material_cost_ip": 2.0}
		}`)

		rootCmd.SetArgs([]string{"validate", argsFile})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown argument name", func(t *testing.T) {
		argsFile := writeFile(t, tempDir, "unknown.json", `{
			"arguments": {"material_cost": 2.0}
		}`)

		rootCmd.SetArgs([]string{"validate", argsFile})
		err := rootCmd.Execute()
		if err == nil {
			t.Fatal("expected an error for an unknown argument name")
		}
		if !errors.IsErrorType(err, errors.ArgumentErrorType) {
			t.Errorf("expected ARGUMENT error, got %v", err)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		argsFile := writeFile(t, tempDir, "badtype.json", `{
			"arguments": {"expected_life": "twenty"}
		}`)

		rootCmd.SetArgs([]string{"validate", argsFile})
		err := rootCmd.Execute()
		if err == nil {
			t.Fatal("expected an error for a type mismatch")
		}
		if !errors.IsErrorType(err, errors.ArgumentErrorType) {
			t.Errorf("expected ARGUMENT error, got %v", err)
		}
	})
}
