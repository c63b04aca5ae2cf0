// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"
)

func TestOSReader_Getenv(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	// Cannot run in parallel because it modifies environment variables
	testKey := "TEST_ENV_VARIABLE_FOR_TESTING"
	testValue := "test_value_123"
	t.Setenv(testKey, testValue)
	t.Setenv("TEST_ENV_EMPTY_FOR_TESTING", "")

	reader := &OSReader{}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "existing environment variable",
			key:  testKey,
			want: testValue,
		},
		{
			name: "empty environment variable",
			key:  "TEST_ENV_EMPTY_FOR_TESTING",
			want: "",
		},
		{
			name: "non-existing environment variable",
			key:  "NONEXISTENT_ENV_VAR_TESTING_12345",
			want: "",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			got := reader.Getenv(tt.key)
			if got != tt.want {
				t.Errorf("OSReader.Getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapReader_Getenv(t *testing.T) {
	t.Parallel()

	reader := MapReader{"FOO": "bar", "EMPTY": ""}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"present", "FOO", "bar"},
		{"empty", "EMPTY", ""},
		{"missing", "MISSING", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := reader.Getenv(tt.key); got != tt.want {
				t.Errorf("MapReader.Getenv() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("nil map", func(t *testing.T) {
		t.Parallel()
		var m MapReader
		if got := m.Getenv("FOO"); got != "" {
			t.Errorf("MapReader.Getenv() on nil map = %v, want empty", got)
		}
	})
}

// TestReader_InterfaceCompliance ensures the readers implement the Reader interface
func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
	// If this compiles, the test passes
}
