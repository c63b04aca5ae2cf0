// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides typed, validated access to environment variables for
application startup code, on top of an interface-based abstraction that
enables dependency injection and testing isolation.

# Typed Lookups

String, Number and Boolean read a variable and convert it to the target type:

	host, err := env.String("HOST", env.Default("localhost"))
	port, err := env.Number("PORT", env.Default(8080.0))
	debug, err := env.Boolean("DEBUG")
	token, err := env.String("API_TOKEN", env.Required[string]())

A variable is absent when it is unset or set to the empty string. For an
absent variable:

  - Required options make every accessor fail with [ErrMissingRequired],
    regardless of any default.
  - Otherwise the default value is returned. Without one, String returns ""
    and Boolean returns false, while Number fails with [ErrMissingValue]
    since there is no safe numeric fallback.

Present values are converted as follows:

  - String returns the raw value.
  - Number parses the leading decimal literal ("123.45", "-1e3", "Infinity")
    and ignores trailing text; a value without one fails with
    [ErrInvalidFormat].
  - Boolean is true for "true", "1" and "on" in any case, false otherwise.

Note that Default infers its type from the argument, so numeric defaults must
be float64 literals (8080.0) or written as Default[float64](8080).

# Errors

Every failure is a [*VariableError] naming the variable, and unwraps to one of
the sentinel errors:

	_, err := env.Number("PORT")
	if errors.Is(err, env.ErrMissingValue) {
		// handle missing port
	}

	var varErr *env.VariableError
	if errors.As(err, &varErr) {
		log.Printf("bad configuration for %s", varErr.Key)
	}

MustString, MustNumber and MustBoolean panic with the same error instead,
for configuration that should stop the process when it is wrong.

# Readers

The package-level functions read the process environment. Use [New] to read
from any [Reader]:

	r := env.New(env.MapReader{"PORT": "9090"})
	port, err := r.Number("PORT")

OSReader reads environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

Lookups are stateless: nothing is cached, and the environment is never
modified.

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("MY_VAR").Return("test-value")

	result := myFunc(mock)

MapReader is a lighter alternative when call expectations do not matter.
*/
package env
