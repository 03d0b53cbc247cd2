// Package testutil provides small helpers shared across test packages.
package testutil

import "time"

// Ptr returns a pointer to the given value. Handy for optional fields in
// request fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// MustParseTime parses an RFC3339 time string or panics. For use in test
// fixtures only.
func MustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return t
}
