package domain

import "time"

// Tour represents a single tour package as returned by the upstream API.
type Tour struct {
	// ID is the upstream tour identifier
	ID string `json:"_id"`

	// Name is the tour's display title
	Name string `json:"name"`

	// From and To are the route endpoints; they may carry a leading nights
	// token (e.g., "2N Goa") in upstream data
	From string `json:"from"`
	To   string `json:"to"`

	// Nights and Days describe the tour duration
	Nights int `json:"nights"`
	Days   int `json:"days"`

	// Price is the per-person base price
	Price Amount `json:"price"`

	// Rating is the average user rating (0-5)
	Rating float64 `json:"rating"`

	// Themes and Amenities are the tour's classification tags
	Themes    []string `json:"themes,omitempty"`
	Amenities []string `json:"amenities,omitempty"`

	// Hotels lists the hotels included in the tour itinerary
	Hotels []Hotel `json:"hotels,omitempty"`

	// CreatedAt is the upstream creation timestamp, used for the generic sort
	CreatedAt string `json:"createdAt,omitempty"`
}

// BestOffer returns the cheapest currently active room offer across all of
// the tour's hotels. The zero OfferSummary is returned when no hotel carries
// an active offer.
func (t *Tour) BestOffer(now time.Time) OfferSummary {
	if t == nil {
		return OfferSummary{}
	}

	var best OfferSummary
	for i := range t.Hotels {
		summary := t.Hotels[i].OfferSummary(now)
		if !summary.HasOffer {
			continue
		}
		if !best.HasOffer || summary.FinalPrice < best.FinalPrice {
			best = summary
		}
	}
	return best
}
