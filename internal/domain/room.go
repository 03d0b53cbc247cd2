package domain

import (
	"fmt"
	"strings"
	"time"
)

// Room represents a single bookable room within a hotel, as returned by the
// upstream tour API. Price fields use Amount because the backend interleaves
// numbers, currency strings, and nulls.
type Room struct {
	// ID is the upstream room identifier
	ID string `json:"_id,omitempty"`

	// Name is the display name of the room
	Name string `json:"roomName,omitempty"`

	// IsOffer marks the room as carrying a discount offer
	IsOffer bool `json:"isOffer"`

	// OfferName is the display name of the discount offer
	OfferName string `json:"offerName"`

	// OfferPriceLess is the advertised discount amount
	OfferPriceLess Amount `json:"offerPriceLess"`

	// OfferExp is the offer expiry instant as a date-like string; empty means
	// the offer never expires
	OfferExp string `json:"offerExp"`

	// Price is the base room price
	Price Amount `json:"price"`

	// FinalPrice is the price after discount
	FinalPrice Amount `json:"finalPrice"`

	// OriginalPrice is the pre-discount price
	OriginalPrice Amount `json:"originalPrice"`
}

// Hotel represents a hotel attached to a tour, with its room inventory.
type Hotel struct {
	ID        string   `json:"_id,omitempty"`
	Name      string   `json:"hotelName,omitempty"`
	City      string   `json:"city,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Rooms     []Room   `json:"rooms"`
}

// OfferSummary is the single best active offer for a hotel, recomputed on
// every query and never persisted. When HasOffer is false all numeric fields
// are 0 and OfferName is empty.
type OfferSummary struct {
	HasOffer       bool    `json:"hasOffer"`
	OfferName      string  `json:"offerName"`
	FinalPrice     float64 `json:"finalPrice"`
	OriginalPrice  float64 `json:"originalPrice"`
	DiscountAmount float64 `json:"discountAmount"`
	OfferExp       string  `json:"offerExp,omitempty"`
}

// expiryLayouts are the datetime formats the upstream API has been observed
// to use for offer expiry values.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseExpiry parses a date-like offer expiry string.
func ParseExpiry(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse expiry %q", s)
}

// OfferActive reports whether the room's discount is currently valid.
//
// A room is offer-active only if IsOffer is set, OfferPriceLess is strictly
// positive, and the expiry (when present) is at or after now. An unparseable
// expiry makes the offer inactive: validity fails closed on bad data.
func (r *Room) OfferActive(now time.Time) bool {
	if r == nil || !r.IsOffer {
		return false
	}
	if !r.OfferPriceLess.Positive() {
		return false
	}
	if strings.TrimSpace(r.OfferExp) == "" {
		return true
	}

	exp, err := ParseExpiry(r.OfferExp)
	if err != nil {
		return false
	}
	return !exp.Before(now)
}

// ResolvedFinalPrice returns the effective price of the room.
// FinalPrice wins when positive, then Price; upstream data sometimes
// populates only one of the two fields.
func (r *Room) ResolvedFinalPrice() float64 {
	if r == nil {
		return 0
	}
	if r.FinalPrice.Positive() {
		return r.FinalPrice.Float64()
	}
	if r.Price.Positive() {
		return r.Price.Float64()
	}
	return 0
}

// ResolvedOriginalPrice returns the pre-discount price of the room.
// When OriginalPrice is absent it is reconstructed as finalPrice +
// offerPriceLess, and failing that the final price is returned (no
// discount visible).
func (r *Room) ResolvedOriginalPrice() float64 {
	if r == nil {
		return 0
	}
	if r.OriginalPrice.Positive() {
		return r.OriginalPrice.Float64()
	}

	final := r.ResolvedFinalPrice()
	if final > 0 && r.OfferPriceLess.Positive() {
		return final + r.OfferPriceLess.Float64()
	}
	return final
}

// OfferSummary selects the single best active offer among the hotel's rooms.
//
// Active rooms are compared by resolved final price and the cheapest wins;
// ties keep original room order. The discount amount is the larger of the
// advertised OfferPriceLess and the original/final price difference, floored
// at zero, which guards against inconsistent source data where the two
// figures disagree.
func (h *Hotel) OfferSummary(now time.Time) OfferSummary {
	if h == nil || len(h.Rooms) == 0 {
		return OfferSummary{}
	}

	var best *Room
	for i := range h.Rooms {
		room := &h.Rooms[i]
		if !room.OfferActive(now) {
			continue
		}
		if best == nil || room.ResolvedFinalPrice() < best.ResolvedFinalPrice() {
			best = room
		}
	}
	if best == nil {
		return OfferSummary{}
	}

	final := best.ResolvedFinalPrice()
	original := best.ResolvedOriginalPrice()

	discount := best.OfferPriceLess.Float64()
	if diff := original - final; diff > discount {
		discount = diff
	}
	if discount < 0 {
		discount = 0
	}

	return OfferSummary{
		HasOffer:       true,
		OfferName:      best.OfferName,
		FinalPrice:     final,
		OriginalPrice:  original,
		DiscountAmount: discount,
		OfferExp:       best.OfferExp,
	}
}

// StartingPrice is the lowest positive resolved room price, used as the
// hotel's "from" price in listings. Returns 0 when no room has a valid price.
func (h *Hotel) StartingPrice() float64 {
	if h == nil {
		return 0
	}

	lowest := 0.0
	for i := range h.Rooms {
		price := h.Rooms[i].ResolvedFinalPrice()
		if price <= 0 {
			continue
		}
		if lowest == 0 || price < lowest {
			lowest = price
		}
	}
	return lowest
}
