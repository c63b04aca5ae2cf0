// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		// Plain literals
		{"integer", "123", 123, true},
		{"decimal", "123.45", 123.45, true},
		{"negative", "-42", -42, true},
		{"explicit plus", "+7", 7, true},
		{"zero", "0", 0, true},
		{"leading dot", ".5", 0.5, true},
		{"trailing dot", "5.", 5, true},
		{"exponent", "1e3", 1000, true},
		{"negative exponent", "2.5E-2", 0.025, true},
		{"leading zeros", "007", 7, true},

		// Prefix semantics
		{"leading whitespace", "  42", 42, true},
		{"leading tab and newline", "\t\n8", 8, true},
		{"trailing text", "8080/tcp", 8080, true},
		{"trailing whitespace", "3.14  ", 3.14, true},
		{"second dot ignored", "1.2.3", 1.2, true},
		{"dangling exponent", "1e", 1, true},
		{"dangling signed exponent", "4e+", 4, true},
		{"hex reads leading zero", "0x10", 0, true},
		{"underscore stops literal", "1_000", 1, true},

		// Infinity
		{"infinity", "Infinity", math.Inf(1), true},
		{"negative infinity", "-Infinity", math.Inf(-1), true},
		{"overflow saturates", "1e400", math.Inf(1), true},

		// Not a number
		{"letters", "abc", 0, false},
		{"nan literal", "NaN", 0, false},
		{"lowercase infinity", "infinity", 0, false},
		{"inf shorthand", "inf", 0, false},
		{"lone sign", "-", 0, false},
		{"lone dot", ".", 0, false},
		{"sign and dot", "+.", 0, false},
		{"only whitespace", "   ", 0, false},
		{"locale comma", ",5", 0, false},
		{"currency prefix", "$10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber_CommaIsNotDecimalSeparator(t *testing.T) {
	t.Parallel()

	got, ok := parseNumber("1,5")
	assert.True(t, ok)
	assert.Equal(t, float64(1), got)
}
