// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

const infinityLiteral = "Infinity"

// parseNumber parses the longest leading decimal literal of raw, after
// skipping leading whitespace. Trailing characters are ignored, so "8080/tcp"
// yields 8080. It reports false when raw does not start with a number.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	n := numericPrefixLen(s)
	if n == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		// Overflow saturates to ±Inf, which is still a number.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// numericPrefixLen returns the length of the decimal literal at the start of s:
// an optional sign followed by either "Infinity" or digits with an optional
// fraction and exponent. It returns 0 when s does not start with one.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], infinityLiteral) {
		return i + len(infinityLiteral)
	}

	start := i
	i = skipDigits(s, i)
	digits := i - start

	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		frac := j - (i + 1)
		if digits > 0 || frac > 0 {
			digits += frac
			i = j
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		// An exponent marker without digits is not part of the literal.
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}

	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
