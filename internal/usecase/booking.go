package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

// BookingUseCase defines the interface for tour booking operations.
type BookingUseCase interface {
	// Create validates and submits a new tour booking.
	Create(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)

	// ListForUser returns the bookings belonging to the given user.
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// bookingUseCase implements BookingUseCase on top of the remote tour API.
type bookingUseCase struct {
	service TourService
	log     zerolog.Logger
}

// NewBookingUseCase creates a BookingUseCase with the given service.
func NewBookingUseCase(service TourService, log zerolog.Logger) BookingUseCase {
	return &bookingUseCase{service: service, log: log}
}

// Create implements BookingUseCase.Create. Validation happens before any
// network call: a booking with missing required fields never leaves the
// process.
func (uc *bookingUseCase) Create(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return domain.Booking{}, err
	}

	booking, err := uc.service.CreateBooking(ctx, req)
	if err != nil {
		return domain.Booking{}, err
	}

	uc.log.Info().
		Str("tour_id", req.TourID).
		Str("user_id", req.UserID).
		Int("seats", req.Seats).
		Msg("Booking created")

	return booking, nil
}

// ListForUser implements BookingUseCase.ListForUser.
func (uc *bookingUseCase) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return uc.service.ListUserBookings(ctx, userID)
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
