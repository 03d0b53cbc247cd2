// Package usecase contains the business logic for tour search and booking.
// It orchestrates the remote tour API behind session state, caching, and
// validation.
package usecase

import (
	"context"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

//go:generate mockgen -source=service.go -destination=../../test/mocks/tour_service.go -package=mocks

// TourService is the outbound port to the remote tour API.
// It is implemented by the tourapi adapter.
type TourService interface {
	// ListTours fetches the unfiltered tour list.
	ListTours(ctx context.Context) ([]domain.Tour, error)

	// FilterTours fetches the tour list matching the given query payload.
	FilterTours(ctx context.Context, payload domain.QueryPayload) ([]domain.Tour, error)

	// GetTour fetches a single tour by its identifier.
	GetTour(ctx context.Context, id string) (domain.Tour, error)

	// CreateBooking submits a new tour booking.
	CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)

	// ListUserBookings fetches the bookings belonging to the given user.
	ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
}
