package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tour-search/tour-search-and-booking-system/internal/adapter/http/response"
	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/timeutil"
	"github.com/tour-search/tour-search-and-booking-system/internal/usecase"
)

// TourHandler handles HTTP requests for tour search and booking endpoints.
type TourHandler struct {
	search   usecase.TourSearchUseCase
	bookings usecase.BookingUseCase
	clock    timeutil.Clock
}

// NewTourHandler creates a new TourHandler with the given use cases.
func NewTourHandler(search usecase.TourSearchUseCase, bookings usecase.BookingUseCase, clock timeutil.Clock) *TourHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TourHandler{
		search:   search,
		bookings: bookings,
		clock:    clock,
	}
}

// ListTours handles GET /api/v1/tours
//
// @Summary List all tours
// @Description Returns the unfiltered tour list
// @Tags tours
// @Produce json
// @Success 200 {object} SearchToursResponse
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/tours [get]
func (h *TourHandler) ListTours(c echo.Context) error {
	tours, err := h.search.SearchTours(c.Request().Context(), domain.QueryPayload{})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &SearchToursResponse{
		Total: len(tours),
		Tours: toTourDTOs(tours, h.clock.Now()),
	})
}

// SearchTours handles GET /api/v1/tours/search
//
// @Summary Search tours
// @Description Searches tours by route, free text, and advanced filters
// @Tags tours
// @Produce json
// @Param from query string false "Route origin city"
// @Param to query string false "Route destination city"
// @Param q query string false "Free-text search (ignored when a route is set)"
// @Param themes query string false "Comma-separated theme list"
// @Param amenities query string false "Comma-separated amenity list"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minRating query number false "Rating floor (0-5)"
// @Param sortOrder query string false "Creation-date sort: default, asc, desc"
// @Param durationSort query string false "Nights sort: default, asc, desc"
// @Success 200 {object} SearchToursResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/tours/search [get]
func (h *TourHandler) SearchTours(c echo.Context) error {
	var req SearchToursRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	state := ToFilterState(&req)
	payload := domain.BuildQueryPayload(state, true)

	tours, err := h.search.SearchTours(c.Request().Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &SearchToursResponse{
		Total:         len(tours),
		ActiveFilters: state.ActiveFilterCount(),
		Tours:         toTourDTOs(tours, h.clock.Now()),
	})
}

// GetTour handles GET /api/v1/tours/:id
//
// @Summary Get tour detail
// @Tags tours
// @Produce json
// @Param id path string true "Tour identifier"
// @Success 200 {object} TourDTO
// @Failure 404 {object} response.ErrorDetail "Tour not found"
// @Router /api/v1/tours/{id} [get]
func (h *TourHandler) GetTour(c echo.Context) error {
	tour, err := h.search.GetTour(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	dto := toTourDTO(tour, h.clock.Now())
	return response.OK(c, &dto)
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Create a tour booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking fields"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/bookings [post]
func (h *TourHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	booking, err := h.bookings.Create(c.Request().Context(), ToBookingRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, &BookingResponse{
		Booking: booking,
		Message: "Booking created successfully",
	})
}

// ListUserBookings handles GET /api/v1/bookings
//
// @Summary List a user's bookings
// @Tags bookings
// @Produce json
// @Param userId query string true "User identifier"
// @Success 200 {object} UserBookingsResponse
// @Failure 400 {object} response.ErrorDetail "Missing userId"
// @Router /api/v1/bookings [get]
func (h *TourHandler) ListUserBookings(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.ValidationError(c, map[string]string{"userId": "userId is required"})
	}

	bookings, err := h.bookings.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	return response.OK(c, &UserBookingsResponse{
		Total:    len(bookings),
		Bookings: bookings,
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TourHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TourHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TourHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return response.NotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return response.GatewayTimeout(c)
	}

	return response.InternalServerError(c)
}
