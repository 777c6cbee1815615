// SPDX-License-Identifier: MPL-2.0

package bundlefile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RealOrangeOne/robot-bundler/pkg/kitversion"
)

// ViolationKind classifies a schema violation.
type ViolationKind string

const (
	// MissingField means a required field is absent.
	MissingField ViolationKind = "missing field"
	// UnknownField means the document contains a field outside the schema.
	UnknownField ViolationKind = "unknown field"
	// TypeMismatch means a field is present with the wrong type, including
	// a kit.version string that fails the version grammar.
	TypeMismatch ViolationKind = "type mismatch"
)

var (
	// ErrMissingField is the sentinel error wrapped by SchemaError for MissingField.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownField is the sentinel error wrapped by SchemaError for UnknownField.
	ErrUnknownField = errors.New("unknown field")
	// ErrTypeMismatch is the sentinel error wrapped by SchemaError for TypeMismatch.
	ErrTypeMismatch = errors.New("type mismatch")
)

// SchemaError is returned when a decoded document deviates from the closed
// bundle schema. Path is the dotted location of the offending field, e.g.
// "wifi.enabled". Cause is set when the violation wraps a deeper error,
// such as a kit.version grammar failure.
type SchemaError struct {
	Kind  ViolationKind
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at %s: %v", e.Kind, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Unwrap returns the kind's sentinel (and the cause, when present) so
// callers can use errors.Is for programmatic detection.
func (e *SchemaError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case MissingField:
		sentinel = ErrMissingField
	case UnknownField:
		sentinel = ErrUnknownField
	default:
		sentinel = ErrTypeMismatch
	}
	if e.Cause != nil {
		return []error{sentinel, e.Cause}
	}
	return []error{sentinel}
}

// fieldKind is the expected scalar type of a schema field.
type fieldKind uint8

const (
	kindString fieldKind = iota
	kindBool
	kindVersion
)

// bundleSchema is the closed field set, per section. The document must
// contain exactly these sections and exactly these fields within them.
var bundleSchema = map[string]map[string]fieldKind{
	"bundle": {
		"version": kindString,
	},
	"kit": {
		"name":    kindString,
		"version": kindVersion,
	},
	"wifi": {
		"ssid":    kindString,
		"psk":     kindString,
		"enabled": kindBool,
		"region":  kindString,
	},
}

// validateDocument walks a decoded generic document against bundleSchema
// and returns the first violation found. The TOML decoder accepts unknown
// keys silently, so both halves of the closed-world check (no extras, no
// gaps) happen here, recursively per section.
func validateDocument(doc map[string]any) error {
	for _, name := range sortedKeys(doc) {
		if _, ok := bundleSchema[name]; !ok {
			return &SchemaError{Kind: UnknownField, Path: name}
		}
	}

	for _, name := range sortedKeys(bundleSchema) {
		raw, ok := doc[name]
		if !ok {
			return &SchemaError{Kind: MissingField, Path: name}
		}
		section, ok := raw.(map[string]any)
		if !ok {
			return &SchemaError{Kind: TypeMismatch, Path: name}
		}
		if err := validateSection(name, bundleSchema[name], section); err != nil {
			return err
		}
	}

	return nil
}

func validateSection(name string, fields map[string]fieldKind, section map[string]any) error {
	for _, key := range sortedKeys(section) {
		if _, ok := fields[key]; !ok {
			return &SchemaError{Kind: UnknownField, Path: name + "." + key}
		}
	}

	for _, key := range sortedKeys(fields) {
		path := name + "." + key
		value, ok := section[key]
		if !ok {
			return &SchemaError{Kind: MissingField, Path: path}
		}
		switch fields[key] {
		case kindString:
			if _, ok := value.(string); !ok {
				return &SchemaError{Kind: TypeMismatch, Path: path}
			}
		case kindBool:
			if _, ok := value.(bool); !ok {
				return &SchemaError{Kind: TypeMismatch, Path: path}
			}
		case kindVersion:
			s, ok := value.(string)
			if !ok {
				return &SchemaError{Kind: TypeMismatch, Path: path}
			}
			if _, err := kitversion.Parse(s); err != nil {
				return &SchemaError{Kind: TypeMismatch, Path: path, Cause: err}
			}
		}
	}

	return nil
}

// sortedKeys keeps violation reporting deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
