package measure

import (
	"fmt"
	"sort"

	"lifecost/internal/errors"
)

// Measures self-register here at init time; the CLI looks them up by name.
var registry = make(map[string]Measure)

// Register adds a measure to the registry. Registering a nil measure, an
// empty name, or a duplicate name panics: these are programming errors caught
// at startup, not runtime conditions.
func Register(m Measure) {
	if m == nil {
		panic("measure: Register called with nil measure")
	}
	if m.Name() == "" {
		panic("measure: Register called with empty measure name")
	}
	if _, exists := registry[m.Name()]; exists {
		panic(fmt.Sprintf("measure: duplicate registration of %q", m.Name()))
	}
	registry[m.Name()] = m
}

// Get returns the measure registered under name
func Get(name string) (Measure, error) {
	if name == "" {
		return nil, errors.ValidationError("measure name cannot be empty").
			WithSuggestion("Specify a measure with --measure")
	}

	m, exists := registry[name]
	if !exists {
		return nil, errors.ValidationError("unknown measure").
			WithContext("measure", name).
			WithContext("available", Names()).
			WithSuggestion(fmt.Sprintf("Use one of the registered measures: %v", Names()))
	}

	return m, nil
}

// Names returns the registered measure names in a consistent order
func Names() []string {
	var names []string
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
