// Package integration wires the full HTTP stack against a fake upstream tour
// API and exercises it end to end.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	tourhttp "github.com/tour-search/tour-search-and-booking-system/internal/adapter/http"
	"github.com/tour-search/tour-search-and-booking-system/internal/adapter/http/middleware"
	"github.com/tour-search/tour-search-and-booking-system/internal/adapter/tourapi"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/retry"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/timeutil"
	"github.com/tour-search/tour-search-and-booking-system/internal/usecase"
)

// fixtureNow pins offer expiry resolution for the whole suite.
var fixtureNow = timeutil.NewMockClockFromString("2025-06-15T12:00:00Z")

// upstreamState is the canned data behind the fake tour backend.
type upstreamState struct {
	tours    []map[string]any
	bookings []map[string]any
	failures int // remaining 5xx responses before recovery
}

// newUpstream starts a fake tour backend mimicking the real one's mixed
// response shapes: bare arrays for lists, envelopes for detail and booking.
func newUpstream(state *upstreamState) *httptest.Server {
	mux := http.NewServeMux()

	failing := func(w http.ResponseWriter) bool {
		if state.failures > 0 {
			state.failures--
			w.WriteHeader(http.StatusBadGateway)
			return true
		}
		return false
	}

	mux.HandleFunc("/get-tour-list", func(w http.ResponseWriter, r *http.Request) {
		if failing(w) {
			return
		}
		json.NewEncoder(w).Encode(state.tours)
	})

	mux.HandleFunc("/filter-tour/by-query", func(w http.ResponseWriter, r *http.Request) {
		if failing(w) {
			return
		}
		q := r.URL.Query()
		matched := make([]map[string]any, 0)
		for _, tour := range state.tours {
			if from := q.Get("fromWhere"); from != "" && tour["from"] != from {
				continue
			}
			if to := q.Get("to"); to != "" && tour["to"] != to {
				continue
			}
			matched = append(matched, tour)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": matched})
	})

	mux.HandleFunc("/get-tour/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/get-tour/"):]
		for _, tour := range state.tours {
			if tour["_id"] == id {
				json.NewEncoder(w).Encode(map[string]any{"data": tour})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "tour not found"})
	})

	mux.HandleFunc("/tour-booking/create-tour-booking", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		booking := map[string]any{
			"_id":    "booking-1",
			"userId": req["userId"],
			"tourId": req["tourId"],
			"seats":  req["seats"],
			"status": "confirmed",
		}
		state.bookings = append(state.bookings, booking)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"data": booking})
	})

	mux.HandleFunc("/tour-booking/get-users-booking", func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		matched := make([]map[string]any, 0)
		for _, booking := range state.bookings {
			if booking["userId"] == userID {
				matched = append(matched, booking)
			}
		}
		json.NewEncoder(w).Encode(matched)
	})

	return httptest.NewServer(mux)
}

// newApp builds the full application stack pointed at the fake upstream.
// The result cache is nil: integration runs do not require Redis.
func newApp(upstreamURL string) *echo.Echo {
	client := tourapi.New(tourapi.Config{
		BaseURL:      upstreamURL,
		Timeout:      2 * time.Second,
		RateLimitRPS: 1000,
		Retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     10 * time.Millisecond,
			Multiplier:   2.0,
			RetryIf:      retry.SkipPermanent,
		},
	}, zerolog.Nop())

	searchUseCase := usecase.NewTourSearchUseCase(client, nil, zerolog.Nop())
	bookingUseCase := usecase.NewBookingUseCase(client, zerolog.Nop())

	e := echo.New()
	middleware.Setup(e, zerolog.Nop())
	tourhttp.RegisterRoutes(e, tourhttp.NewTourHandler(searchUseCase, bookingUseCase, fixtureNow))
	return e
}

// defaultTours is a fixture set exercising offers, expiry, and price
// coercion quirks.
func defaultTours() []map[string]any {
	return []map[string]any{
		{
			"_id":    "tour-goa",
			"name":   "Goa Beach Escape",
			"from":   "Delhi",
			"to":     "Goa",
			"nights": 3,
			"days":   4,
			"price":  "₹12,500",
			"rating": 4.5,
			"themes": []string{"beach"},
			"hotels": []map[string]any{{
				"_id":       "hotel-1",
				"hotelName": "Sea View Resort",
				"rooms": []map[string]any{
					{
						"_id":            "room-1",
						"isOffer":        true,
						"offerName":      "Monsoon Deal",
						"offerPriceLess": 500,
						"offerExp":       "2025-12-31",
						"finalPrice":     8000,
						"originalPrice":  8500,
					},
					{
						"_id":            "room-2",
						"isOffer":        true,
						"offerPriceLess": 200,
						"offerExp":       "2020-01-01", // expired
						"finalPrice":     6000,
					},
				},
			}},
		},
		{
			"_id":    "tour-manali",
			"name":   "Manali Hills",
			"from":   "Delhi",
			"to":     "Manali",
			"nights": 5,
			"days":   6,
			"price":  18000,
			"rating": 4.2,
		},
	}
}
