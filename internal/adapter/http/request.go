// Package http provides the HTTP handler layer for the tour search and
// booking API. It handles request parsing, validation, response formatting,
// and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"
)

// SearchToursRequest represents the query parameters for tour search.
// Comma-separated list parameters mirror the upstream filtering endpoint.
type SearchToursRequest struct {
	// From is the route origin city (optional)
	From string `query:"from"`

	// To is the route destination city (optional)
	To string `query:"to"`

	// Query is the free-text search term; ignored when a route is set
	Query string `query:"q"`

	// Themes is a comma-separated list of theme selections
	Themes string `query:"themes"`

	// Amenities is a comma-separated list of amenity selections
	Amenities string `query:"amenities"`

	// MinPrice and MaxPrice bound the price range filter
	MinPrice *float64 `query:"minPrice"`
	MaxPrice *float64 `query:"maxPrice"`

	// MinRating is the rating floor (0-5)
	MinRating float64 `query:"minRating"`

	// SortOrder is the creation-date sort direction: default, asc, desc
	SortOrder string `query:"sortOrder"`

	// DurationSort is the nights sort direction; overrides SortOrder
	DurationSort string `query:"durationSort"`
}

// CreateBookingRequest represents the request body for booking creation.
type CreateBookingRequest struct {
	UserID        string         `json:"userId"`
	TourID        string         `json:"tourId"`
	VehicleID     string         `json:"vehicleId"`
	Seats         int            `json:"seats"`
	Passengers    []PassengerDTO `json:"passengers,omitempty"`
	From          string         `json:"from,omitempty"`
	To            string         `json:"to,omitempty"`
	TourStartDate string         `json:"tourStartDate"`
	Payment       float64        `json:"payment"`
	Tax           float64        `json:"tax"`
	Discount      float64        `json:"discount"`
	BookingSource string         `json:"bookingSource,omitempty"`
}

// PassengerDTO represents a traveller in a booking request.
type PassengerDTO struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender,omitempty"`
}

// bookingDatePattern matches dates in YYYY-MM-DD format.
var bookingDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validSortDirections are the accepted sort direction parameter values.
var validSortDirections = map[string]bool{
	"":        true, // Empty is valid (no sort)
	"default": true,
	"asc":     true,
	"desc":    true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchToursRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.MinPrice != nil && *r.MinPrice < 0 {
		errs.Add("minPrice", "minPrice must be a non-negative number")
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("maxPrice", "maxPrice must be a non-negative number")
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		errs.Add("minPrice", "minPrice must be less than or equal to maxPrice")
	}

	if r.MinRating < 0 || r.MinRating > 5 {
		errs.Add("minRating", "minRating must be between 0 and 5")
	}

	if !validSortDirections[strings.ToLower(r.SortOrder)] {
		errs.Add("sortOrder", "sortOrder must be one of: default, asc, desc")
	}
	if !validSortDirections[strings.ToLower(r.DurationSort)] {
		errs.Add("durationSort", "durationSort must be one of: default, asc, desc")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the booking request and returns any validation errors.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.UserID) == "" {
		errs.Add("userId", "userId is required")
	}
	if strings.TrimSpace(r.TourID) == "" {
		errs.Add("tourId", "tourId is required")
	}
	if strings.TrimSpace(r.VehicleID) == "" {
		errs.Add("vehicleId", "vehicleId is required")
	}

	if r.Seats < 1 && len(r.Passengers) == 0 {
		errs.Add("seats", "seats must be at least 1")
	}

	if r.TourStartDate == "" {
		errs.Add("tourStartDate", "tourStartDate is required")
	} else if !bookingDatePattern.MatchString(r.TourStartDate) {
		errs.Add("tourStartDate", "tourStartDate must be in YYYY-MM-DD format")
	} else if _, err := time.Parse("2006-01-02", r.TourStartDate); err != nil {
		errs.Add("tourStartDate", "tourStartDate is not a valid date")
	}

	if r.Payment < 0 {
		errs.Add("payment", "payment must be a non-negative number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
