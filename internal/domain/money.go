// Package domain contains the core business entities and rules for the tour
// search and booking system. These entities are transport-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerces a heterogeneous value into a finite float64.
//
// The upstream API mixes plain numbers, formatted currency strings
// ("₹1,234"), empty strings, and nulls in the same price fields, so every
// numeric read goes through this single coercion point.
//
// Behavior:
//   - Numeric inputs pass through unchanged if finite; NaN/Inf become 0
//   - Strings are stripped of every rune that is not a digit, minus sign,
//     or decimal point, then parsed as a decimal number
//   - nil and anything unparseable degrade to 0
//   - Never panics, and ToNumber(ToNumber(x)) == ToNumber(x)
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		return parseNumeric(n.String())
	case string:
		return parseNumeric(n)
	default:
		return parseNumeric(fmt.Sprint(v))
	}
}

// parseNumeric strips non-numeric runes and parses the remainder.
// An empty or malformed remainder degrades to 0.
func parseNumeric(s string) float64 {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(n)
}

// finiteOrZero returns n if it is a finite number, else 0.
func finiteOrZero(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Amount is a monetary value decoded tolerantly from upstream JSON.
// The backend sends the same field as a number, a formatted string, or null
// depending on the endpoint, so Amount accepts all of them and degrades
// malformed input to 0 instead of failing the whole list decode.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error;
// a corrupt price field must not break a list render.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(ToNumber(raw))
	return nil
}

// Float64 returns the amount as a plain float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// Positive reports whether the amount is strictly greater than zero.
func (a Amount) Positive() bool {
	return a > 0
}
