package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifecost/internal/config"
	"lifecost/internal/errors"
	"lifecost/internal/logging"
	"lifecost/internal/measure"
	"lifecost/internal/model"
	"lifecost/internal/version"
)

var (
	// Global flags
	outputFormat  string
	measureName   string
	argumentsFile string
	setValues     []string
	outPath       string
	dryRun        bool
	verbose       bool

	// Root command
	rootCmd = &cobra.Command{
		Use:   "lifecost",
		Short: "Building lifecycle cost tool",
		Long: `lifecost applies lifecycle-cost measures to building model files. A measure
reads user arguments, mutates the building's lifecycle cost objects, and
reports initial and final conditions.`,
		Example: `  # Apply the lifecycle cost measure with defaults
  lifecost apply building.json

  # Apply with an arguments file and JSON output
  lifecost apply building.json --arguments costs.yaml --output json

  # Override a single argument on the command line
  lifecost apply building.json --set material_cost_ip=2.5

  # Preview the run without writing the model back
  lifecost apply building.json --dry-run`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Apply command
	applyCmd = &cobra.Command{
		Use:   "apply [model-file]",
		Short: "Apply a measure to a building model file",
		Long: `Apply a measure to the building in a JSON model file. Argument values come
from the declared defaults, overridden by the arguments file, overridden by
--set flags. The mutated model is written back unless --dry-run is given.`,
		Example: `  # Basic run
  lifecost apply building.json --arguments costs.json

  # Write the mutated model to a different file
  lifecost apply building.json --arguments costs.json --out costed.json`,
		Args: cobra.ExactArgs(1),
		RunE: runApply,
	}

	// Validate command
	validateCmd = &cobra.Command{
		Use:   "validate [arguments-file]",
		Short: "Validate an arguments file without running a measure",
		Long: `Validate an arguments file against the measure's declared arguments: syntax,
unknown argument names, and value types. No model is read or mutated.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	// Arguments command
	argumentsCmd = &cobra.Command{
		Use:   "arguments",
		Short: "List the measure's declared arguments",
		Long: `List the declared arguments of the selected measure with their types, units,
and default values.`,
		RunE: runArguments,
	}

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version information for lifecost.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetFullVersionString())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, csv)")
	rootCmd.PersistentFlags().StringVarP(&measureName, "measure", "m", "add_lifecycle_costs", "Measure to run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with structured logs")

	applyCmd.Flags().StringVarP(&argumentsFile, "arguments", "a", "", "Arguments file (.json, .yaml, .yml)")
	applyCmd.Flags().StringArrayVar(&setValues, "set", nil, "Override an argument (key=value, repeatable)")
	applyCmd.Flags().StringVar(&outPath, "out", "", "Write the mutated model to this path instead of in place")
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the measure but do not write the model back")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(argumentsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runApply handles the apply command
func runApply(cmd *cobra.Command, cmdArgs []string) error {
	modelFile := cmdArgs[0]

	if err := validateOutputFormat(); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Loading model from: %s\n", modelFile)
	}

	mdl, err := model.Load(modelFile)
	if err != nil {
		return err
	}

	m, supplied, err := resolveMeasureAndValues(cmd)
	if err != nil {
		return err
	}

	args, err := measure.ResolveArguments(m.Arguments(), supplied)
	if err != nil {
		return err
	}
	if err := measure.CheckTypes(m.Arguments(), args); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Running measure: %s\n", m.Name())
	}

	logger := zap.NewNop()
	if verbose {
		logger = logging.New(true)
	}
	defer func() { _ = logger.Sync() }()

	runner := measure.NewRunner(m.Name(), logger)
	runErr := m.Run(runner, mdl.Building, args)
	result := runner.Result()

	if err := outputResult(result, outputFormat); err != nil {
		return err
	}

	if runErr != nil {
		return errors.WrapError(runErr, "", "measure run failed").
			WithContext("measure", m.Name()).
			WithContext("modelFile", modelFile)
	}

	if result.Outcome == measure.OutcomeSuccess && !dryRun {
		target := modelFile
		if outPath != "" {
			target = outPath
		}
		if err := mdl.Save(target); err != nil {
			return errors.WrapError(err, "", "failed to write mutated model").
				WithContext("modelFile", target)
		}
		if verbose {
			fmt.Printf("Model written to: %s\n", target)
		}
	}

	return nil
}

// runValidate handles the validate command
func runValidate(cmd *cobra.Command, cmdArgs []string) error {
	argsFile := cmdArgs[0]

	fmt.Printf("Validating arguments file: %s\n", argsFile)

	parser := config.NewParser()
	cfg, err := parser.ParseFile(argsFile)
	if err != nil {
		fmt.Println("Arguments file parsing failed")
		return err
	}

	fmt.Println("Arguments file syntax is valid")

	m, err := selectMeasure(cmd, cfg)
	if err != nil {
		return err
	}

	args, err := measure.ResolveArguments(m.Arguments(), cfg.Arguments)
	if err != nil {
		fmt.Println("Argument validation failed")
		return err
	}
	if err := measure.CheckTypes(m.Arguments(), args); err != nil {
		fmt.Println("Argument validation failed")
		return err
	}

	fmt.Printf("Arguments are valid for measure '%s' (%d supplied, %d declared)\n",
		m.Name(), len(cfg.Arguments), len(m.Arguments()))

	return nil
}

// runArguments handles the arguments command
func runArguments(cmd *cobra.Command, cmdArgs []string) error {
	m, err := measure.Get(measureName)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", m.DisplayName(), m.Name())
	fmt.Println(strings.Repeat("=", len(m.DisplayName())+len(m.Name())+3))
	fmt.Println(m.Description())
	fmt.Println()

	declared := m.Arguments()

	maxNameWidth := 4 // "Name"
	for _, a := range declared {
		if len(a.Name) > maxNameWidth {
			maxNameWidth = len(a.Name)
		}
	}
	maxNameWidth += 2

	rowFormat := fmt.Sprintf("%%-%ds %%-9s %%-8s %%-12v %%s\n", maxNameWidth)
	fmt.Printf(rowFormat, "Name", "Type", "Units", "Default", "Display Name")
	fmt.Println(strings.Repeat("-", maxNameWidth+50))
	for _, a := range declared {
		units := a.Units
		if units == "" {
			units = "-"
		}
		fmt.Printf(rowFormat, a.Name, a.Type, units, a.Default, a.DisplayName)
	}

	return nil
}

// Helper functions

// resolveMeasureAndValues picks the measure and merges the arguments file
// with --set overrides
func resolveMeasureAndValues(cmd *cobra.Command) (measure.Measure, map[string]interface{}, error) {
	var cfg *config.RunConfig
	if argumentsFile != "" {
		parser := config.NewParser()
		parsed, err := parser.ParseFile(argumentsFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = parsed
	} else {
		cfg = &config.RunConfig{Arguments: make(map[string]interface{})}
	}

	m, err := selectMeasure(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	supplied := make(map[string]interface{}, len(cfg.Arguments)+len(setValues))
	for name, value := range cfg.Arguments {
		supplied[name] = value
	}

	for _, kv := range setValues {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, nil, errors.ArgumentErrorf("invalid --set value %q", kv).
				WithSuggestion("Use --set name=value")
		}
		supplied[name] = parseLiteral(raw)
	}

	return m, supplied, nil
}

// selectMeasure applies the precedence: --measure flag when set, else the
// arguments file's measure, else the flag default
func selectMeasure(cmd *cobra.Command, cfg *config.RunConfig) (measure.Measure, error) {
	name := measureName
	if cfg != nil && cfg.Measure != "" && !cmd.Flags().Changed("measure") {
		name = cfg.Measure
	}
	return measure.Get(name)
}

// parseLiteral interprets a --set value as bool, int, float, or string
func parseLiteral(raw string) interface{} {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func validateOutputFormat() error {
	validFormats := []string{"table", "json", "csv"}
	for _, f := range validFormats {
		if outputFormat == f {
			return nil
		}
	}
	return errors.ValidationError("invalid output format").
		WithContext("outputFormat", outputFormat).
		WithContext("validFormats", strings.Join(validFormats, ", ")).
		WithSuggestion("Use one of: table, json, csv")
}
