// Package model implements the building model that measures run against.
//
// The model is a small host-owned object graph: a Building that exposes a
// costed floor area and a collection of attached lifecycle cost records.
// Measures borrow references into this graph for the duration of one run;
// persistence is a plain JSON document.
package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"lifecost/internal/errors"
)

// Model is the top-level persisted document
type Model struct {
	Version  string    `json:"version"`
	Building *Building `json:"building"`
}

// New creates an empty model with a single building
func New(buildingName string, floorAreaM2 float64) *Model {
	return &Model{
		Version:  "1.0",
		Building: NewBuilding(buildingName, floorAreaM2),
	}
}

// Load reads and validates a model file
func Load(filePath string) (*Model, error) {
	if filePath == "" {
		return nil, errors.FileError("model file path cannot be empty").
			WithSuggestion("Provide a valid path to a JSON model file")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, errors.FileErrorWithCause("model file does not exist", err).
			WithContext("filePath", filePath).
			WithSuggestion("Check that the file path is correct").
			WithSuggestion("Ensure the file exists and is readable")
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".json" {
		return nil, errors.FileErrorf("unsupported model format: %s (only .json files are supported)", ext).
			WithContext("filePath", filePath).
			WithContext("extension", ext).
			WithSuggestion("Use a .json model file")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.FileErrorWithCause("failed to read model file", err).
			WithContext("filePath", filePath).
			WithSuggestion("Check file permissions")
	}

	m, err := FromBytes(data)
	if err != nil {
		return nil, errors.WrapError(err, "", "failed to load model file").
			WithContext("filePath", filePath)
	}

	return m, nil
}

// FromBytes parses and validates a model from raw JSON
func FromBytes(data []byte) (*Model, error) {
	if len(data) == 0 {
		return nil, errors.ModelError("model data is empty").
			WithSuggestion("Provide a valid JSON model document")
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.ModelErrorWithCause("invalid JSON format", err).
			WithSuggestion("Validate the model file with a JSON validator")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	m.Building.adoptRecords()
	return &m, nil
}

// Validate checks semantic constraints on the parsed document
func (m *Model) Validate() error {
	if m.Version == "" {
		return errors.ModelError("model version is required")
	}
	if m.Building == nil {
		return errors.ModelError("model must contain a building")
	}
	return m.Building.Validate()
}

// Save writes the model to filePath as indented JSON
func (m *Model) Save(filePath string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.ModelErrorWithCause("failed to serialize model", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return errors.FileErrorWithCause("failed to write model file", err).
			WithContext("filePath", filePath).
			WithSuggestion("Check directory permissions")
	}

	return nil
}
