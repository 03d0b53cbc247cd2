package http

import (
	"strings"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

// ToFilterState converts a SearchToursRequest to a domain.FilterState.
// Absent price bounds keep their defaults so that the query builder omits
// them from the outgoing payload.
func ToFilterState(req *SearchToursRequest) domain.FilterState {
	state := domain.NewFilterState()

	state.FromCity = req.From
	state.ToCity = req.To
	state.SearchText = req.Query

	if req.MinPrice != nil {
		state.MinPrice = *req.MinPrice
	}
	if req.MaxPrice != nil {
		state.MaxPrice = *req.MaxPrice
	}
	state.MinRating = req.MinRating

	state.Themes = splitList(req.Themes)
	state.Amenities = splitList(req.Amenities)

	state.SortOrder = domain.ParseSortDirection(req.SortOrder)
	state.DurationSort = domain.ParseSortDirection(req.DurationSort)

	return state
}

// splitList splits a comma-separated parameter into trimmed non-empty items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// ToBookingRequest converts a CreateBookingRequest to a domain.BookingRequest.
func ToBookingRequest(req *CreateBookingRequest) domain.BookingRequest {
	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, domain.Passenger{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
		})
	}

	return domain.BookingRequest{
		UserID:        strings.TrimSpace(req.UserID),
		TourID:        strings.TrimSpace(req.TourID),
		VehicleID:     strings.TrimSpace(req.VehicleID),
		Seats:         req.Seats,
		Passengers:    passengers,
		From:          req.From,
		To:            req.To,
		TourStartDate: req.TourStartDate,
		Payment:       domain.Amount(req.Payment),
		Tax:           domain.Amount(req.Tax),
		Discount:      domain.Amount(req.Discount),
		BookingSource: req.BookingSource,
	}
}
