package http

import (
	"time"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

// SearchToursResponse is the response body for tour search.
type SearchToursResponse struct {
	// Total is the number of tours returned
	Total int `json:"total"`

	// ActiveFilters is the number of filters the query deviates from defaults
	ActiveFilters int `json:"active_filters"`

	// Tours is the result list
	Tours []TourDTO `json:"tours"`
}

// TourDTO is the data transfer object for tour responses. Route endpoints
// are normalized (leading nights token stripped) and each hotel carries its
// resolved starting price and best active offer.
type TourDTO struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	From          string               `json:"from"`
	To            string               `json:"to"`
	Nights        int                  `json:"nights"`
	Days          int                  `json:"days"`
	Price         float64              `json:"price"`
	Rating        float64              `json:"rating"`
	Themes        []string             `json:"themes,omitempty"`
	Amenities     []string             `json:"amenities,omitempty"`
	Hotels        []HotelDTO           `json:"hotels,omitempty"`
	BestOffer     *domain.OfferSummary `json:"best_offer,omitempty"`
}

// HotelDTO is the data transfer object for a hotel within a tour.
type HotelDTO struct {
	ID            string               `json:"id,omitempty"`
	Name          string               `json:"name,omitempty"`
	City          string               `json:"city,omitempty"`
	Rating        float64              `json:"rating,omitempty"`
	StartingPrice float64              `json:"starting_price"`
	Offer         *domain.OfferSummary `json:"offer,omitempty"`
}

// BookingResponse is the response body for booking endpoints.
type BookingResponse struct {
	Booking domain.Booking `json:"booking"`
	Message string         `json:"message,omitempty"`
}

// UserBookingsResponse is the response body for a user's booking list.
type UserBookingsResponse struct {
	Total    int              `json:"total"`
	Bookings []domain.Booking `json:"bookings"`
}

// toTourDTO converts a domain.Tour to its response representation,
// resolving offer summaries against the given instant.
func toTourDTO(tour domain.Tour, now time.Time) TourDTO {
	dto := TourDTO{
		ID:        tour.ID,
		Name:      tour.Name,
		From:      domain.NormalizeCity(tour.From),
		To:        domain.NormalizeCity(tour.To),
		Nights:    tour.Nights,
		Days:      tour.Days,
		Price:     tour.Price.Float64(),
		Rating:    tour.Rating,
		Themes:    tour.Themes,
		Amenities: tour.Amenities,
	}

	for i := range tour.Hotels {
		hotel := &tour.Hotels[i]
		hotelDTO := HotelDTO{
			ID:            hotel.ID,
			Name:          hotel.Name,
			City:          hotel.City,
			Rating:        hotel.Rating,
			StartingPrice: hotel.StartingPrice(),
		}
		if summary := hotel.OfferSummary(now); summary.HasOffer {
			hotelDTO.Offer = &summary
		}
		dto.Hotels = append(dto.Hotels, hotelDTO)
	}

	if best := tour.BestOffer(now); best.HasOffer {
		dto.BestOffer = &best
	}

	return dto
}

// toTourDTOs converts a tour list, never returning nil.
func toTourDTOs(tours []domain.Tour, now time.Time) []TourDTO {
	dtos := make([]TourDTO, 0, len(tours))
	for _, tour := range tours {
		dtos = append(dtos, toTourDTO(tour, now))
	}
	return dtos
}
