package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultBookingSource identifies bookings created through this service.
const DefaultBookingSource = "mobile-app"

// bookingDateRegex matches tour start dates in YYYY-MM-DD format.
var bookingDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Passenger is a traveller on a tour booking.
type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender,omitempty"`
}

// BookingRequest carries the fields required to create a tour booking.
// It is validated before any network call: booking submission fails on
// validation, unlike display data which degrades silently.
type BookingRequest struct {
	UserID        string      `json:"userId"`
	TourID        string      `json:"tourId"`
	VehicleID     string      `json:"vehicleId"`
	Seats         int         `json:"seats"`
	Passengers    []Passenger `json:"passengers,omitempty"`
	From          string      `json:"from,omitempty"`
	To            string      `json:"to,omitempty"`
	TourStartDate string      `json:"tourStartDate"`
	Payment       Amount      `json:"payment"`
	Tax           Amount      `json:"tax"`
	Discount      Amount      `json:"discount"`
	BookingSource string      `json:"bookingSource,omitempty"`
}

// Validate checks the booking request for required fields.
// Returns a wrapped ErrInvalidRequest error carrying a user-facing message.
func (b *BookingRequest) Validate() error {
	if strings.TrimSpace(b.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(b.TourID) == "" {
		return fmt.Errorf("%w: tourId is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(b.VehicleID) == "" {
		return fmt.Errorf("%w: vehicleId is required", ErrInvalidRequest)
	}
	if b.Seats < 1 {
		return fmt.Errorf("%w: seats must be at least 1", ErrInvalidRequest)
	}
	if b.TourStartDate == "" {
		return fmt.Errorf("%w: tourStartDate is required", ErrInvalidRequest)
	}
	if !bookingDateRegex.MatchString(b.TourStartDate) {
		return fmt.Errorf("%w: tourStartDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, b.TourStartDate)
	}
	if _, err := time.Parse("2006-01-02", b.TourStartDate); err != nil {
		return fmt.Errorf("%w: tourStartDate is not a valid date: %s", ErrInvalidRequest, b.TourStartDate)
	}
	if b.Payment < 0 {
		return fmt.Errorf("%w: payment cannot be negative", ErrInvalidRequest)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (b *BookingRequest) SetDefaults() {
	if b.BookingSource == "" {
		b.BookingSource = DefaultBookingSource
	}
	if b.Seats == 0 && len(b.Passengers) > 0 {
		b.Seats = len(b.Passengers)
	}
}

// Booking is a confirmed tour booking as returned by the upstream API.
type Booking struct {
	ID            string      `json:"_id"`
	UserID        string      `json:"userId"`
	TourID        string      `json:"tourId"`
	VehicleID     string      `json:"vehicleId,omitempty"`
	Seats         int         `json:"seats"`
	Passengers    []Passenger `json:"passengers,omitempty"`
	From          string      `json:"from,omitempty"`
	To            string      `json:"to,omitempty"`
	TourStartDate string      `json:"tourStartDate,omitempty"`
	Payment       Amount      `json:"payment"`
	Tax           Amount      `json:"tax"`
	Discount      Amount      `json:"discount"`
	BookingSource string      `json:"bookingSource,omitempty"`
	Status        string      `json:"status,omitempty"`
	CreatedAt     string      `json:"createdAt,omitempty"`
}
