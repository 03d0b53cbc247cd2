package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tour-search/tour-search-and-booking-system/test/testutil"
)

// testNow is the comparison instant used throughout the offer tests.
var testNow = testutil.MustParseTime("2025-06-15T12:00:00Z")

// offerRoom creates an offer-active room for testing.
func offerRoom(finalPrice, priceLess float64) Room {
	return Room{
		IsOffer:        true,
		OfferName:      "Summer Deal",
		OfferPriceLess: Amount(priceLess),
		FinalPrice:     Amount(finalPrice),
	}
}

func TestRoom_OfferActive(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want bool
	}{
		{
			name: "offer flag unset",
			room: Room{IsOffer: false, OfferPriceLess: 500},
			want: false,
		},
		{
			name: "zero discount",
			room: Room{IsOffer: true, OfferPriceLess: 0},
			want: false,
		},
		{
			name: "negative discount",
			room: Room{IsOffer: true, OfferPriceLess: -100},
			want: false,
		},
		{
			name: "no expiry means always active",
			room: Room{IsOffer: true, OfferPriceLess: 500},
			want: true,
		},
		{
			name: "future expiry is active",
			room: Room{IsOffer: true, OfferPriceLess: 500, OfferExp: "2025-12-31"},
			want: true,
		},
		{
			name: "past expiry is inactive",
			room: Room{IsOffer: true, OfferPriceLess: 500, OfferExp: "2024-01-01"},
			want: false,
		},
		{
			name: "rfc3339 expiry after now is active",
			room: Room{IsOffer: true, OfferPriceLess: 500, OfferExp: "2025-06-15T18:00:00Z"},
			want: true,
		},
		{
			name: "unparseable expiry fails closed",
			room: Room{IsOffer: true, OfferPriceLess: 500, OfferExp: "next week"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.OfferActive(testNow))
		})
	}
}

func TestRoom_OfferActive_NilRoom(t *testing.T) {
	var room *Room
	assert.False(t, room.OfferActive(testNow))
}

func TestRoom_ResolvedFinalPrice(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want float64
	}{
		{name: "final price wins", room: Room{FinalPrice: 800, Price: 1000}, want: 800},
		{name: "falls back to price", room: Room{Price: 1000}, want: 1000},
		{name: "both absent", room: Room{}, want: 0},
		{name: "negative final price falls back", room: Room{FinalPrice: -1, Price: 1000}, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.ResolvedFinalPrice())
		})
	}
}

func TestRoom_ResolvedOriginalPrice(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want float64
	}{
		{
			name: "original price wins",
			room: Room{OriginalPrice: 1200, FinalPrice: 800, OfferPriceLess: 100},
			want: 1200,
		},
		{
			name: "reconstructed from final plus discount",
			room: Room{FinalPrice: 800, OfferPriceLess: 200},
			want: 1000,
		},
		{
			name: "no discount visible",
			room: Room{FinalPrice: 800},
			want: 800,
		},
		{
			name: "empty room",
			room: Room{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.ResolvedOriginalPrice())
		})
	}
}

func TestHotel_OfferSummary_SelectsCheapestActive(t *testing.T) {
	hotel := Hotel{Rooms: []Room{
		offerRoom(1000, 100),
		offerRoom(800, 50),
		{IsOffer: false, FinalPrice: 500}, // cheapest but not an offer
	}}

	summary := hotel.OfferSummary(testNow)

	assert.True(t, summary.HasOffer)
	assert.Equal(t, 800.0, summary.FinalPrice)
	assert.GreaterOrEqual(t, summary.DiscountAmount, 50.0)
}

func TestHotel_OfferSummary_TieKeepsFirstRoom(t *testing.T) {
	first := offerRoom(800, 50)
	first.OfferName = "First Deal"
	second := offerRoom(800, 200)
	second.OfferName = "Second Deal"

	hotel := Hotel{Rooms: []Room{first, second}}

	assert.Equal(t, "First Deal", hotel.OfferSummary(testNow).OfferName)
}

func TestHotel_OfferSummary_NoActiveRooms(t *testing.T) {
	tests := []struct {
		name  string
		hotel Hotel
	}{
		{name: "no rooms", hotel: Hotel{}},
		{name: "no offer rooms", hotel: Hotel{Rooms: []Room{{FinalPrice: 500}}}},
		{name: "expired offers only", hotel: Hotel{Rooms: []Room{
			{IsOffer: true, OfferPriceLess: 100, FinalPrice: 500, OfferExp: "2020-01-01"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, OfferSummary{}, tt.hotel.OfferSummary(testNow))
		})
	}
}

func TestHotel_OfferSummary_DiscountGuardsInconsistentData(t *testing.T) {
	// Advertised discount disagrees with the price difference; the larger
	// figure wins.
	hotel := Hotel{Rooms: []Room{{
		IsOffer:        true,
		OfferName:      "Deal",
		OfferPriceLess: 100,
		FinalPrice:     800,
		OriginalPrice:  1200,
	}}}

	summary := hotel.OfferSummary(testNow)
	assert.Equal(t, 400.0, summary.DiscountAmount)
}

func TestHotel_StartingPrice(t *testing.T) {
	tests := []struct {
		name  string
		hotel Hotel
		want  float64
	}{
		{
			name: "minimum positive price",
			hotel: Hotel{Rooms: []Room{
				{FinalPrice: 1000},
				{FinalPrice: 600},
				{Price: 900},
			}},
			want: 600,
		},
		{
			name:  "skips rooms without a valid price",
			hotel: Hotel{Rooms: []Room{{}, {FinalPrice: 750}}},
			want:  750,
		},
		{name: "no rooms", hotel: Hotel{}, want: 0},
		{name: "no valid prices", hotel: Hotel{Rooms: []Room{{}, {}}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hotel.StartingPrice())
		})
	}
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "rfc3339", input: "2025-06-15T18:00:00Z"},
		{name: "datetime without zone", input: "2025-06-15T18:00:00"},
		{name: "date only", input: "2025-06-15"},
		{name: "surrounding whitespace", input: "  2025-06-15  "},
		{name: "garbage", input: "tomorrow", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExpiry(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTour_BestOffer(t *testing.T) {
	tour := Tour{Hotels: []Hotel{
		{Rooms: []Room{offerRoom(1200, 100)}},
		{Rooms: []Room{offerRoom(900, 80)}},
		{Rooms: []Room{{FinalPrice: 400}}},
	}}

	best := tour.BestOffer(testNow)
	assert.True(t, best.HasOffer)
	assert.Equal(t, 900.0, best.FinalPrice)
}

func TestTour_BestOffer_NoOffers(t *testing.T) {
	tour := Tour{Hotels: []Hotel{{Rooms: []Room{{FinalPrice: 400}}}}}
	assert.False(t, tour.BestOffer(testNow).HasOffer)
}
