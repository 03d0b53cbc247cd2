package tourapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
	}{
		{name: "bare array", raw: `[{"_id":"t1"},{"_id":"t2"}]`, wantLen: 2},
		{name: "data envelope", raw: `{"data":[{"_id":"t1"}]}`, wantLen: 1},
		{name: "empty bare array", raw: `[]`, wantLen: 0},
		{name: "empty envelope array", raw: `{"data":[]}`, wantLen: 0},
		{name: "envelope with null data", raw: `{"data":null}`, wantLen: 0},
		{name: "bare object", raw: `{"_id":"t1"}`, wantLen: 0},
		{name: "string body", raw: `"service warming up"`, wantLen: 0},
		{name: "malformed json", raw: `{"data":[`, wantLen: 0},
		{name: "empty body", raw: ``, wantLen: 0},
		{name: "json null", raw: `null`, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tours := DecodeList[domain.Tour]([]byte(tt.raw))
			// Always a usable slice, never nil.
			require.NotNil(t, tours)
			assert.Len(t, tours, tt.wantLen)
		})
	}
}

func TestDecodeList_EnvelopeFieldsSurvive(t *testing.T) {
	raw := `{"message":"ok","data":[{"_id":"t1","name":"Goa Getaway","price":"₹12,500"}]}`

	tours := DecodeList[domain.Tour]([]byte(raw))
	require.Len(t, tours, 1)
	assert.Equal(t, "t1", tours[0].ID)
	assert.Equal(t, domain.Amount(12500), tours[0].Price)
}

func TestDecodeItem(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		tour, ok := DecodeItem[domain.Tour]([]byte(`{"_id":"t1","name":"Goa"}`))
		require.True(t, ok)
		assert.Equal(t, "t1", tour.ID)
	})

	t.Run("data envelope", func(t *testing.T) {
		tour, ok := DecodeItem[domain.Tour]([]byte(`{"data":{"_id":"t2"}}`))
		require.True(t, ok)
		assert.Equal(t, "t2", tour.ID)
	})

	t.Run("envelope with null data falls through to bare decode", func(t *testing.T) {
		tour, ok := DecodeItem[domain.Tour]([]byte(`{"data":null}`))
		assert.True(t, ok)
		assert.Empty(t, tour.ID)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, ok := DecodeItem[domain.Tour]([]byte(`{`))
		assert.False(t, ok)
	})

	t.Run("array body", func(t *testing.T) {
		_, ok := DecodeItem[domain.Tour]([]byte(`[{"_id":"t1"}]`))
		assert.False(t, ok)
	})
}

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "message field", raw: `{"message":"tour not found"}`, want: "tour not found"},
		{name: "error field", raw: `{"error":"bad id"}`, want: "bad id"},
		{name: "message wins over error", raw: `{"message":"msg","error":"err"}`, want: "msg"},
		{name: "neither present", raw: `{}`, want: "fallback"},
		{name: "not json", raw: `<html>502</html>`, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeMessage([]byte(tt.raw), "fallback"))
		})
	}
}
