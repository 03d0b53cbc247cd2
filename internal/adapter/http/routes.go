package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all tour search and booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TourHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	tours := api.Group("/tours")
	tours.GET("", h.ListTours)
	tours.GET("/search", h.SearchTours)
	tours.GET("/:id", h.GetTour)

	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListUserBookings)
}
