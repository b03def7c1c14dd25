// Package templating expands references to build variables inside configured values.
package templating

import (
	"os"
	"strings"
)

// Expander replaces variable references in a value.
type Expander interface {
	Expand(value string) string
}

// Environment expands `$VAR` and `${VAR}` references from a set of overrides and the process environment, in that
// order. References to unknown variables are kept, in their `${VAR}` form, so that callers can tell them apart from
// empty values.
type Environment struct {
	Overrides map[string]string
	LookupEnv func(string) (string, bool)
}

// NewEnvironment returns an Environment backed by the process environment.
func NewEnvironment(overrides map[string]string) Environment {
	return Environment{Overrides: overrides, LookupEnv: os.LookupEnv}
}

// Expand implements Expander.
func (e Environment) Expand(value string) string {
	if !strings.Contains(value, "$") {
		return value
	}

	return os.Expand(value, func(name string) string {
		if replacement, ok := e.lookup(name); ok {
			return replacement
		}

		// os.Expand strips braces & dollar signs, we add them back for unknown variables
		switch {
		case name == "$":
			return "$$"
		case isIdentifier(name):
			return "${" + name + "}"
		default:
			return "$" + name
		}
	})
}

func (e Environment) lookup(name string) (string, bool) {
	if value, ok := e.Overrides[name]; ok {
		return value, true
	}

	if e.LookupEnv == nil {
		return "", false
	}

	return e.LookupEnv(name)
}

// Unresolved reports whether a value is blank or still starts with a variable reference after expansion.
func Unresolved(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.HasPrefix(trimmed, "$")
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		isLetter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'

		if !isLetter && (!isDigit || i == 0) {
			return false
		}
	}

	return true
}
