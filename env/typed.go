// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import "strings"

// Value is the set of types the typed accessors produce.
type Value interface {
	string | float64 | bool
}

// Options configures a single typed lookup.
type Options[T Value] struct {
	// DefaultValue is returned when the variable is absent and not required.
	// A nil DefaultValue means no default was supplied.
	DefaultValue *T

	// Required makes an absent variable an error, even when DefaultValue is set.
	Required bool
}

// Default returns Options that fall back to v when the variable is absent.
func Default[T Value](v T) Options[T] {
	return Options[T]{DefaultValue: &v}
}

// Required returns Options that make the variable mandatory.
func Required[T Value]() Options[T] {
	return Options[T]{Required: true}
}

// mergeOptions folds opts left to right. A later DefaultValue replaces an
// earlier one; Required is set if any of the options sets it.
func mergeOptions[T Value](opts []Options[T]) Options[T] {
	var merged Options[T]
	for _, o := range opts {
		if o.DefaultValue != nil {
			merged.DefaultValue = o.DefaultValue
		}
		merged.Required = merged.Required || o.Required
	}
	return merged
}

// Typed reads typed values from a Reader.
// It holds no state besides the Reader and is safe for concurrent use.
type Typed struct {
	reader Reader
}

// New returns a Typed that reads from r. A nil r reads the process environment.
func New(r Reader) *Typed {
	if r == nil {
		r = &OSReader{}
	}
	return &Typed{reader: r}
}

// lookup returns the raw value of key, or ok=false when it is absent.
// Missing and empty variables are both absent.
func (t *Typed) lookup(key string) (raw string, ok bool) {
	raw = t.reader.Getenv(key)
	return raw, raw != ""
}

// String returns the value of key unchanged.
// An absent, optional variable yields the default value, or "" without one.
func (t *Typed) String(key string, opts ...Options[string]) (string, error) {
	o := mergeOptions(opts)

	raw, ok := t.lookup(key)
	if !ok {
		if o.Required {
			return "", newMissingRequired(key)
		}
		if o.DefaultValue != nil {
			return *o.DefaultValue, nil
		}
		return "", nil
	}
	return raw, nil
}

// Number returns the value of key parsed as a decimal floating-point number.
//
// Unlike String and Boolean there is no implicit zero value: an absent,
// optional variable without a default returns ErrMissingValue. A value that
// does not start with a number returns ErrInvalidFormat.
func (t *Typed) Number(key string, opts ...Options[float64]) (float64, error) {
	o := mergeOptions(opts)

	raw, ok := t.lookup(key)
	if !ok {
		if o.Required {
			return 0, newMissingRequired(key)
		}
		if o.DefaultValue != nil {
			return *o.DefaultValue, nil
		}
		return 0, newMissingValue(key)
	}

	f, ok := parseNumber(raw)
	if !ok {
		return 0, newInvalidFormat(key, raw)
	}
	return f, nil
}

// Boolean reports whether the value of key is "true", "1" or "on", ignoring case.
// Any other present value is false. An absent, optional variable yields the
// default value, or false without one.
func (t *Typed) Boolean(key string, opts ...Options[bool]) (bool, error) {
	o := mergeOptions(opts)

	raw, ok := t.lookup(key)
	if !ok {
		if o.Required {
			return false, newMissingRequired(key)
		}
		if o.DefaultValue != nil {
			return *o.DefaultValue, nil
		}
		return false, nil
	}

	switch strings.ToLower(raw) {
	case "true", "1", "on":
		return true, nil
	default:
		return false, nil
	}
}

// MustString is like String but panics if the lookup fails.
func (t *Typed) MustString(key string, opts ...Options[string]) string {
	v, err := t.String(key, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// MustNumber is like Number but panics if the lookup fails.
func (t *Typed) MustNumber(key string, opts ...Options[float64]) float64 {
	v, err := t.Number(key, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// MustBoolean is like Boolean but panics if the lookup fails.
func (t *Typed) MustBoolean(key string, opts ...Options[bool]) bool {
	v, err := t.Boolean(key, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// process reads the process environment for the package-level functions.
var process = New(&OSReader{})

// String reads key from the process environment. See [Typed.String].
func String(key string, opts ...Options[string]) (string, error) {
	return process.String(key, opts...)
}

// Number reads key from the process environment. See [Typed.Number].
func Number(key string, opts ...Options[float64]) (float64, error) {
	return process.Number(key, opts...)
}

// Boolean reads key from the process environment. See [Typed.Boolean].
func Boolean(key string, opts ...Options[bool]) (bool, error) {
	return process.Boolean(key, opts...)
}

// MustString reads key from the process environment and panics on failure.
func MustString(key string, opts ...Options[string]) string {
	return process.MustString(key, opts...)
}

// MustNumber reads key from the process environment and panics on failure.
func MustNumber(key string, opts ...Options[float64]) float64 {
	return process.MustNumber(key, opts...)
}

// MustBoolean reads key from the process environment and panics on failure.
func MustBoolean(key string, opts ...Options[bool]) bool {
	return process.MustBoolean(key, opts...)
}
