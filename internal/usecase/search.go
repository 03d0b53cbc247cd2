package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/cache"
)

// TourSearchUseCase defines the interface for tour search operations.
type TourSearchUseCase interface {
	// SearchTours returns the tours matching the payload. An empty payload
	// returns the unfiltered list.
	SearchTours(ctx context.Context, payload domain.QueryPayload) ([]domain.Tour, error)

	// GetTour returns a single tour by its identifier.
	GetTour(ctx context.Context, id string) (domain.Tour, error)
}

// tourSearchUseCase implements TourSearchUseCase with an optional Redis
// result cache in front of the remote service.
type tourSearchUseCase struct {
	service TourService
	cache   *cache.ResultCache
	log     zerolog.Logger
}

// NewTourSearchUseCase creates a TourSearchUseCase. The cache may be nil, in
// which case every search goes to the remote service.
func NewTourSearchUseCase(service TourService, resultCache *cache.ResultCache, log zerolog.Logger) TourSearchUseCase {
	return &tourSearchUseCase{
		service: service,
		cache:   resultCache,
		log:     log,
	}
}

// SearchTours implements TourSearchUseCase.SearchTours.
func (uc *tourSearchUseCase) SearchTours(ctx context.Context, payload domain.QueryPayload) ([]domain.Tour, error) {
	if tours, ok := uc.cache.Get(ctx, payload); ok {
		uc.log.Debug().Str("cache_key", payload.CacheKey()).Int("results", len(tours)).Msg("Search cache hit")
		return tours, nil
	}

	var tours []domain.Tour
	var err error
	if payload.IsEmpty() {
		tours, err = uc.service.ListTours(ctx)
	} else {
		tours, err = uc.service.FilterTours(ctx, payload)
	}
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []domain.Tour{}
	}

	if uc.cache != nil {
		if cacheErr := uc.cache.Set(ctx, payload, tours); cacheErr != nil {
			// A cache write failure must not fail the search.
			uc.log.Warn().Err(cacheErr).Msg("Search cache write failed")
		}
	}

	return tours, nil
}

// GetTour implements TourSearchUseCase.GetTour. Detail lookups are not
// cached; the list cache is the hot path.
func (uc *tourSearchUseCase) GetTour(ctx context.Context, id string) (domain.Tour, error) {
	return uc.service.GetTour(ctx, id)
}

// Ensure tourSearchUseCase implements TourSearchUseCase at compile time.
var _ TourSearchUseCase = (*tourSearchUseCase)(nil)
