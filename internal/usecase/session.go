package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

// DefaultDebounceWindow is how long route/text input must stay quiet before
// a light query is issued. It coalesces keystroke bursts into one request
// while keeping typeahead responsive.
const DefaultDebounceWindow = 350 * time.Millisecond

// QueryStatus is the state of a session's current query.
type QueryStatus string

// Query state machine: Idle -> Loading -> {Succeeded | Failed}.
const (
	StatusIdle      QueryStatus = "idle"
	StatusLoading   QueryStatus = "loading"
	StatusSucceeded QueryStatus = "succeeded"
	StatusFailed    QueryStatus = "failed"
)

// SessionConfig holds the tunable parameters of a search session.
type SessionConfig struct {
	// DebounceWindow is the quiet period before a light query fires
	DebounceWindow time.Duration
}

// DefaultSessionConfig returns the default session configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{DebounceWindow: DefaultDebounceWindow}
}

// Snapshot is a consistent read of the session's derived state.
type Snapshot struct {
	// Status is the current query state
	Status QueryStatus

	// Tours is the most recently applied result list
	Tours []domain.Tour

	// ErrorMessage carries the failure message when Status is Failed
	ErrorMessage string

	// ActiveFilters is the badge count of non-default filters
	ActiveFilters int
}

// SearchSession owns one user's filter state and decides when queries are
// issued: route/text edits schedule a debounced light query, Apply issues an
// immediate full query, Clear resets everything and refetches the full list.
//
// Every dispatched query carries a monotonically increasing sequence number.
// A response belonging to an older sequence than the latest issued request is
// discarded rather than applied, so the most recent user intent always wins
// even when responses arrive out of order.
type SearchSession struct {
	mu      sync.Mutex
	filters domain.FilterState
	status  QueryStatus
	tours   []domain.Tour
	errMsg  string
	seq     uint64
	pending *time.Timer
	window  time.Duration

	search TourSearchUseCase
	log    zerolog.Logger
}

// NewSearchSession creates a session with default filter state.
func NewSearchSession(search TourSearchUseCase, cfg SessionConfig, log zerolog.Logger) *SearchSession {
	window := cfg.DebounceWindow
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	return &SearchSession{
		filters: domain.NewFilterState(),
		status:  StatusIdle,
		window:  window,
		search:  search,
		log:     log,
	}
}

// SetFromCity updates the route origin and schedules a debounced light query.
func (s *SearchSession) SetFromCity(ctx context.Context, city string) {
	s.mu.Lock()
	s.filters.FromCity = city
	s.scheduleLocked(ctx)
	s.mu.Unlock()
}

// SetToCity updates the route destination and schedules a debounced light query.
func (s *SearchSession) SetToCity(ctx context.Context, city string) {
	s.mu.Lock()
	s.filters.ToCity = city
	s.scheduleLocked(ctx)
	s.mu.Unlock()
}

// SetSearchText updates the free-text query and schedules a debounced light query.
func (s *SearchSession) SetSearchText(ctx context.Context, text string) {
	s.mu.Lock()
	s.filters.SearchText = text
	s.scheduleLocked(ctx)
	s.mu.Unlock()
}

// SetPriceRange updates the price range filter. It does not trigger a query;
// advanced filters only go out on Apply.
func (s *SearchSession) SetPriceRange(min, max float64) {
	s.mu.Lock()
	s.filters.MinPrice = min
	s.filters.MaxPrice = max
	s.mu.Unlock()
}

// SetMinRating updates the rating floor.
func (s *SearchSession) SetMinRating(rating float64) {
	s.mu.Lock()
	s.filters.MinRating = rating
	s.mu.Unlock()
}

// ToggleTheme flips a theme selection.
func (s *SearchSession) ToggleTheme(name string) {
	s.mu.Lock()
	s.filters.ToggleTheme(name)
	s.mu.Unlock()
}

// ToggleAmenity flips an amenity selection.
func (s *SearchSession) ToggleAmenity(name string) {
	s.mu.Lock()
	s.filters.ToggleAmenity(name)
	s.mu.Unlock()
}

// SetSortOrder updates the generic (creation date) sort direction.
func (s *SearchSession) SetSortOrder(dir domain.SortDirection) {
	s.mu.Lock()
	s.filters.SortOrder = dir
	s.mu.Unlock()
}

// SetDurationSort updates the nights sort direction.
func (s *SearchSession) SetDurationSort(dir domain.SortDirection) {
	s.mu.Lock()
	s.filters.DurationSort = dir
	s.mu.Unlock()
}

// Apply cancels any pending debounced query and issues an immediate full
// query including the advanced filters.
func (s *SearchSession) Apply(ctx context.Context) {
	s.mu.Lock()
	s.cancelPendingLocked()
	s.dispatchLocked(ctx, true)
	s.mu.Unlock()
}

// Clear resets every filter to its default and fetches the unfiltered list.
func (s *SearchSession) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cancelPendingLocked()
	s.filters.Reset()
	s.dispatchLocked(ctx, true)
	s.mu.Unlock()
}

// Filters returns a copy of the current filter state.
func (s *SearchSession) Filters() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Snapshot returns a consistent view of the session's derived state.
func (s *SearchSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Status:        s.status,
		Tours:         s.tours,
		ErrorMessage:  s.errMsg,
		ActiveFilters: s.filters.ActiveFilterCount(),
	}
}

// scheduleLocked restarts the debounce timer. The query fires only when at
// least one of route/text is non-empty after normalization; each qualifying
// edit within the window cancels the pending query and restarts the timer.
// Callers must hold s.mu.
func (s *SearchSession) scheduleLocked(ctx context.Context) {
	s.cancelPendingLocked()
	if !s.filters.HasRouteOrText() {
		return
	}

	s.pending = time.AfterFunc(s.window, func() {
		s.mu.Lock()
		s.dispatchLocked(ctx, false)
		s.mu.Unlock()
	})
}

// cancelPendingLocked stops the pending debounced query, if any.
// Callers must hold s.mu.
func (s *SearchSession) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// dispatchLocked issues the query for the current filter state. The fetch
// runs asynchronously; the session transitions to Loading immediately and a
// stale response (older sequence than the latest issued) is discarded.
// Callers must hold s.mu.
func (s *SearchSession) dispatchLocked(ctx context.Context, includeAdvanced bool) {
	payload := domain.BuildQueryPayload(s.filters, includeAdvanced)

	s.seq++
	seq := s.seq
	s.status = StatusLoading

	go func() {
		tours, err := s.search.SearchTours(ctx, payload)

		s.mu.Lock()
		defer s.mu.Unlock()

		if seq < s.seq {
			s.log.Debug().Uint64("seq", seq).Uint64("latest", s.seq).Msg("Discarding stale search response")
			return
		}

		if err != nil {
			s.status = StatusFailed
			s.errMsg = err.Error()
			return
		}

		// Results replace the list wholesale; there is no incremental merge.
		s.tours = tours
		s.status = StatusSucceeded
		s.errMsg = ""
	}()
}
