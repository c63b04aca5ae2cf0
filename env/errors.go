// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"errors"
	"fmt"
)

// Sentinel errors for typed lookups.
var (
	// ErrMissingRequired is returned when a variable declared required is absent.
	ErrMissingRequired = errors.New("required environment variable is not set")

	// ErrMissingValue is returned by Number when an optional variable is absent
	// and no default value was supplied.
	ErrMissingValue = errors.New("environment variable is not set and has no default")

	// ErrInvalidFormat is returned by Number when the raw value is not a number.
	ErrInvalidFormat = errors.New("environment variable has an invalid format")
)

// ErrKind identifies which lookup rule a VariableError violated.
type ErrKind string

const (
	// ErrKindMissingRequired indicates a required variable was absent.
	ErrKindMissingRequired ErrKind = "missing_required"
	// ErrKindMissingValue indicates an optional numeric variable was absent without a default.
	ErrKindMissingValue ErrKind = "missing_value"
	// ErrKindInvalidFormat indicates a numeric variable could not be parsed.
	ErrKindInvalidFormat ErrKind = "invalid_format"
)

// VariableError describes a failed lookup of a single environment variable.
type VariableError struct {
	// Key is the name of the variable that was looked up.
	Key string
	// Value is the raw value, only set for ErrKindInvalidFormat.
	Value string
	// Kind is the violated rule.
	Kind ErrKind
}

// Error implements the error interface for VariableError.
func (e *VariableError) Error() string {
	switch e.Kind {
	case ErrKindMissingRequired:
		return fmt.Sprintf("environment variable %q is required but not set", e.Key)
	case ErrKindMissingValue:
		return fmt.Sprintf("environment variable %q is not set and no default value provided", e.Key)
	case ErrKindInvalidFormat:
		return fmt.Sprintf("environment variable %q is %q but expected a number", e.Key, e.Value)
	default:
		return fmt.Sprintf("environment variable %q: %s", e.Key, e.Kind)
	}
}

// Unwrap returns the sentinel error matching Kind, so errors.Is works
// against ErrMissingRequired, ErrMissingValue and ErrInvalidFormat.
func (e *VariableError) Unwrap() error {
	switch e.Kind {
	case ErrKindMissingRequired:
		return ErrMissingRequired
	case ErrKindMissingValue:
		return ErrMissingValue
	case ErrKindInvalidFormat:
		return ErrInvalidFormat
	default:
		return nil
	}
}

func newMissingRequired(key string) error {
	return &VariableError{Key: key, Kind: ErrKindMissingRequired}
}

func newMissingValue(key string) error {
	return &VariableError{Key: key, Kind: ErrKindMissingValue}
}

func newInvalidFormat(key, raw string) error {
	return &VariableError{Key: key, Value: raw, Kind: ErrKindInvalidFormat}
}
