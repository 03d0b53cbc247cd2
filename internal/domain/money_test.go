package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil is zero", input: nil, want: 0},
		{name: "finite float passes through", input: 42.5, want: 42.5},
		{name: "negative number passes through", input: -5, want: -5},
		{name: "NaN is zero", input: math.NaN(), want: 0},
		{name: "positive infinity is zero", input: math.Inf(1), want: 0},
		{name: "negative infinity is zero", input: math.Inf(-1), want: 0},
		{name: "int passes through", input: 1234, want: 1234},
		{name: "plain numeric string", input: "1234", want: 1234},
		{name: "currency symbol and separators stripped", input: "₹1,234", want: 1234},
		{name: "decimal string", input: "99.50", want: 99.5},
		{name: "negative string", input: "-5", want: -5},
		{name: "empty string is zero", input: "", want: 0},
		{name: "letters only is zero", input: "abc", want: 0},
		{name: "mixed text keeps digits", input: "INR 2500 per night", want: 2500},
		{name: "multiple decimal points is zero", input: "1.2.3", want: 0},
		{name: "whitespace only is zero", input: "   ", want: 0},
		{name: "json number", input: json.Number("750"), want: 750},
		{name: "bool is zero", input: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNumber(tt.input))
		})
	}
}

func TestToNumber_Idempotent(t *testing.T) {
	inputs := []any{nil, "₹1,234", "abc", -5, 42.5, math.NaN()}

	for _, input := range inputs {
		once := ToNumber(input)
		assert.Equal(t, once, ToNumber(once))
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Amount
	}{
		{name: "plain number", raw: `1500`, want: 1500},
		{name: "formatted string", raw: `"₹1,500"`, want: 1500},
		{name: "null", raw: `null`, want: 0},
		{name: "empty string", raw: `""`, want: 0},
		{name: "garbage string", raw: `"n/a"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestAmount_UnmarshalJSON_InStruct(t *testing.T) {
	// A corrupt price field must not fail the surrounding decode.
	var room Room
	raw := `{"isOffer": true, "price": "₹2,000", "finalPrice": null, "offerPriceLess": "500"}`

	require.NoError(t, json.Unmarshal([]byte(raw), &room))
	assert.Equal(t, Amount(2000), room.Price)
	assert.Equal(t, Amount(0), room.FinalPrice)
	assert.Equal(t, Amount(500), room.OfferPriceLess)
}
