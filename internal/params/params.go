// Package params is the named-parameter source: a typed key/value set that
// can be loaded from a TOML file and patched with key=value overrides.
package params

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"cellscape/internal/core"
)

// Set holds named parameters. Values are int, float64, string or bool.
type Set struct {
	values map[string]any
}

// New returns an empty set.
func New() *Set { return &Set{values: map[string]any{}} }

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set { return &Set{values: maps.Clone(s.values)} }

// SetInt stores an integer parameter.
func (s *Set) SetInt(name string, v int) *Set { s.values[name] = v; return s }

// SetDouble stores a floating-point parameter.
func (s *Set) SetDouble(name string, v float64) *Set { s.values[name] = v; return s }

// SetString stores a text parameter.
func (s *Set) SetString(name, v string) *Set { s.values[name] = v; return s }

// SetBool stores a boolean parameter.
func (s *Set) SetBool(name string, v bool) *Set { s.values[name] = v; return s }

// Has reports whether name is present.
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Keys lists parameter names in sorted order.
func (s *Set) Keys() []string { return slices.Sorted(maps.Keys(s.values)) }

func (s *Set) lookup(name string) (any, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, &core.ConfigError{Op: "parameter", Key: name, Err: core.ErrMissing}
	}
	return v, nil
}

func typeErr(name, want string, got any) error {
	return &core.ConfigError{Op: "parameter", Key: name, Err: fmt.Errorf("%w: want %s, have %T", core.ErrType, want, got)}
}

// Doubles returns a floating-point parameter. Integer values are widened.
func (s *Set) Doubles(name string) (float64, error) {
	v, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, typeErr(name, "double", v)
}

// Ints returns an integer parameter.
func (s *Set) Ints(name string) (int, error) {
	v, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	if x, ok := v.(int); ok {
		return x, nil
	}
	return 0, typeErr(name, "int", v)
}

// Strings returns a text parameter.
func (s *Set) Strings(name string) (string, error) {
	v, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	if x, ok := v.(string); ok {
		return x, nil
	}
	return "", typeErr(name, "string", v)
}

// Bools returns a boolean parameter.
func (s *Set) Bools(name string) (bool, error) {
	v, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	if x, ok := v.(bool); ok {
		return x, nil
	}
	return false, typeErr(name, "bool", v)
}

// Merge copies every value of o into s, replacing existing keys.
func (s *Set) Merge(o *Set) {
	maps.Copy(s.values, o.values)
}

// LoadFile decodes a flat TOML document of scalar values.
func LoadFile(path string) (*Set, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load parameters %s: %w", path, err)
	}
	return fromRaw(raw)
}

// Parse decodes a flat TOML document from a string.
func Parse(doc string) (*Set, error) {
	var raw map[string]any
	if _, err := toml.Decode(doc, &raw); err != nil {
		return nil, fmt.Errorf("parse parameters: %w", err)
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (*Set, error) {
	s := New()
	for k, v := range raw {
		switch x := v.(type) {
		case int64:
			s.values[k] = int(x)
		case float64, string, bool:
			s.values[k] = x
		default:
			return nil, &core.ConfigError{Op: "parameter", Key: k, Err: fmt.Errorf("%w: unsupported %T", core.ErrType, v)}
		}
	}
	return s, nil
}

// Override applies a key=value assignment. The value is stored as an int,
// float, bool or string, whichever parses first.
func (s *Set) Override(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return &core.ConfigError{Op: "override", Key: kv, Err: fmt.Errorf("%w: want key=value", core.ErrInvalid)}
	}
	value = strings.TrimSpace(value)
	if i, err := strconv.Atoi(value); err == nil {
		s.values[key] = i
	} else if f, err := strconv.ParseFloat(value, 64); err == nil {
		s.values[key] = f
	} else if b, err := strconv.ParseBool(value); err == nil {
		s.values[key] = b
	} else {
		s.values[key] = value
	}
	return nil
}
