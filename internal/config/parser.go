// Package config parses the arguments file handed to a measure run.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lifecost/internal/errors"
)

// RunConfig is the parsed arguments file: which measure to run, and the
// user-supplied argument values keyed by argument name. Omitted arguments
// take their declared defaults.
type RunConfig struct {
	Measure   string                 `json:"measure" yaml:"measure"`
	Arguments map[string]interface{} `json:"arguments" yaml:"arguments"`
}

// Parser reads arguments files
type Parser struct{}

// NewParser creates an arguments-file parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses an arguments file (.json, .yaml, or .yml)
func (p *Parser) ParseFile(filePath string) (*RunConfig, error) {
	if filePath == "" {
		return nil, errors.FileError("arguments file path cannot be empty").
			WithSuggestion("Provide a valid path to a JSON or YAML arguments file")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, errors.FileErrorWithCause("arguments file does not exist", err).
			WithContext("filePath", filePath).
			WithSuggestion("Check that the file path is correct")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.FileErrorWithCause("failed to read arguments file", err).
			WithContext("filePath", filePath).
			WithSuggestion("Check file permissions")
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	cfg, err := p.parseBytes(data, ext)
	if err != nil {
		return nil, errors.WrapError(err, "", "failed to parse arguments file").
			WithContext("filePath", filePath)
	}

	return cfg, nil
}

// parseBytes decodes the file content by extension
func (p *Parser) parseBytes(data []byte, ext string) (*RunConfig, error) {
	if len(data) == 0 {
		return nil, errors.ArgumentError("arguments file is empty").
			WithSuggestion("Provide at least an empty arguments mapping")
	}

	var cfg RunConfig
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.ArgumentErrorWithCause("invalid YAML format", err).
				WithSuggestion("Validate the YAML syntax")
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.ArgumentErrorWithCause("invalid JSON format", err).
				WithSuggestion("Validate the JSON syntax").
				WithSuggestion("Check for missing commas, brackets, or quotes")
		}
	default:
		return nil, errors.FileErrorf("unsupported arguments file extension %q", ext).
			WithContext("extension", ext).
			WithSuggestion("Use a .json, .yaml, or .yml file")
	}

	if cfg.Arguments == nil {
		cfg.Arguments = make(map[string]interface{})
	}

	return &cfg, nil
}
