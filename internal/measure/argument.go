package measure

import (
	"fmt"
	"sort"

	"lifecost/internal/errors"
)

// ArgumentType identifies the value type of a declared argument
type ArgumentType string

const (
	// ArgumentBool is a true/false argument
	ArgumentBool ArgumentType = "bool"
	// ArgumentDouble is a decimal argument
	ArgumentDouble ArgumentType = "double"
	// ArgumentInteger is a whole-number argument
	ArgumentInteger ArgumentType = "integer"
	// ArgumentString is a free-text argument
	ArgumentString ArgumentType = "string"
)

// Argument declares one measure argument: its name, how the host should
// display it, its type and units, and the value used when the user supplies
// none.
type Argument struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Type        ArgumentType `json:"type"`
	Units       string       `json:"units,omitempty"`
	Default     interface{}  `json:"default"`
}

// ArgumentMap holds the resolved argument values for one run, keyed by
// argument name. Values are whatever the decoder produced; the typed getters
// coerce and validate.
type ArgumentMap map[string]interface{}

// ResolveArguments merges user-supplied values over the declared defaults and
// rejects names that no declared argument carries
func ResolveArguments(declared []Argument, supplied map[string]interface{}) (ArgumentMap, error) {
	byName := make(map[string]bool, len(declared))
	args := make(ArgumentMap, len(declared))

	for _, d := range declared {
		byName[d.Name] = true
		args[d.Name] = d.Default
	}

	var unknown []string
	for name := range supplied {
		if !byName[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.ArgumentErrorf("unknown argument(s): %v", unknown).
			WithSuggestion("Run 'lifecost arguments' to list the declared arguments")
	}

	for name, value := range supplied {
		args[name] = value
	}

	return args, nil
}

// Bool retrieves a boolean argument with type checking
func (a ArgumentMap) Bool(name string) (bool, error) {
	value, exists := a[name]
	if !exists {
		return false, errors.ArgumentErrorf("argument '%s' not found", name)
	}

	b, ok := value.(bool)
	if !ok {
		return false, errors.ArgumentErrorf("argument '%s' is not a boolean", name).
			WithContext("value", value)
	}

	return b, nil
}

// String retrieves a string argument with type checking
func (a ArgumentMap) String(name string) (string, error) {
	value, exists := a[name]
	if !exists {
		return "", errors.ArgumentErrorf("argument '%s' not found", name)
	}

	s, ok := value.(string)
	if !ok {
		return "", errors.ArgumentErrorf("argument '%s' is not a string", name).
			WithContext("value", value)
	}

	return s, nil
}

// Double retrieves a decimal argument with type checking.
// Integer values are accepted and widened.
func (a ArgumentMap) Double(name string) (float64, error) {
	value, exists := a[name]
	if !exists {
		return 0, errors.ArgumentErrorf("argument '%s' not found", name)
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.ArgumentErrorf("argument '%s' is not a number", name).
			WithContext("value", value)
	}
}

// Integer retrieves a whole-number argument with type checking.
// JSON decodes numbers as float64, so whole floats are accepted.
func (a ArgumentMap) Integer(name string) (int, error) {
	value, exists := a[name]
	if !exists {
		return 0, errors.ArgumentErrorf("argument '%s' not found", name)
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, errors.ArgumentErrorf("argument '%s' must be a whole number, got %v", name, v)
		}
		return int(v), nil
	default:
		return 0, errors.ArgumentErrorf("argument '%s' is not a number", name).
			WithContext("value", value)
	}
}

// CheckTypes verifies every supplied value against its declaration without
// consuming it, so a bad arguments file fails before any run starts
func CheckTypes(declared []Argument, args ArgumentMap) error {
	for _, d := range declared {
		var err error
		switch d.Type {
		case ArgumentBool:
			_, err = args.Bool(d.Name)
		case ArgumentDouble:
			_, err = args.Double(d.Name)
		case ArgumentInteger:
			_, err = args.Integer(d.Name)
		case ArgumentString:
			_, err = args.String(d.Name)
		default:
			err = errors.ArgumentErrorf("argument '%s' has unsupported type '%s'", d.Name, d.Type)
		}
		if err != nil {
			return errors.WrapError(err, errors.ArgumentErrorType,
				fmt.Sprintf("argument '%s' failed type check", d.Name)).
				WithContext("expectedType", string(d.Type))
		}
	}
	return nil
}
