package domain

import (
	"regexp"
	"strings"
)

// SortDirection defines the direction of a sort selection.
type SortDirection string

// Available sort directions. SortDefault means the user has not chosen a
// direction and no sort parameter is sent upstream.
const (
	SortDefault    SortDirection = "default"
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// IsValid checks if the sort direction is a known value.
func (s SortDirection) IsValid() bool {
	switch s {
	case SortDefault, SortAscending, SortDescending:
		return true
	default:
		return false
	}
}

// ParseSortDirection converts a string to a SortDirection.
// Returns SortDefault if the string is empty or invalid.
func ParseSortDirection(s string) SortDirection {
	d := SortDirection(strings.ToLower(strings.TrimSpace(s)))
	if d.IsValid() {
		return d
	}
	return SortDefault
}

// Default price range bounds. A price filter is only considered active when
// it deviates from these.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 50000
)

// nightsTokenPattern matches a leading "<digits>N " duration token that
// occurs in upstream place names (e.g., "1N Delhi"). It must not be sent as
// part of a city name.
var nightsTokenPattern = regexp.MustCompile(`(?i)^\s*\d+N\s+`)

// NormalizeCity strips the leading nights token and surrounding whitespace
// from an upstream place name.
func NormalizeCity(s string) string {
	return strings.TrimSpace(nightsTokenPattern.ReplaceAllString(s, ""))
}

// FilterState holds one search session's filter selections. It is created
// when the session starts, mutated by user input, and discarded on clear.
type FilterState struct {
	// FromCity and ToCity are the route endpoints; they may carry a leading
	// nights token from upstream place names
	FromCity string
	ToCity   string

	// SearchText is the free-text query
	SearchText string

	// MinPrice and MaxPrice bound the price range filter
	MinPrice float64
	MaxPrice float64

	// MinRating is the rating floor; 0 means no rating filter
	MinRating float64

	// Amenities and Themes are the selected filter chips, unique and in
	// selection order
	Amenities []string
	Themes    []string

	// SortOrder is the generic (creation date) sort direction
	SortOrder SortDirection

	// DurationSort is the nights sort direction; when set it takes priority
	// over SortOrder
	DurationSort SortDirection
}

// NewFilterState returns a FilterState with every field at its default.
func NewFilterState() FilterState {
	return FilterState{
		MinPrice:     DefaultMinPrice,
		MaxPrice:     DefaultMaxPrice,
		SortOrder:    SortDefault,
		DurationSort: SortDefault,
	}
}

// Reset returns every field to its default value.
func (f *FilterState) Reset() {
	*f = NewFilterState()
}

// ToggleAmenity adds the amenity to the selection, or removes it if already
// selected. Blank names are ignored.
func (f *FilterState) ToggleAmenity(name string) {
	f.Amenities = toggle(f.Amenities, name)
}

// ToggleTheme adds the theme to the selection, or removes it if already
// selected. Blank names are ignored.
func (f *FilterState) ToggleTheme(name string) {
	f.Themes = toggle(f.Themes, name)
}

// toggle flips membership of name in the slice, preserving selection order.
func toggle(items []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return items
	}
	for i, item := range items {
		if item == name {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return append(items, name)
}

// The predicates below decide which filters count as "active". They are the
// single source of truth shared by ActiveFilterCount and BuildQueryPayload,
// so the badge count and the outgoing payload cannot drift apart.

func (f *FilterState) routeFrom() string {
	return NormalizeCity(f.FromCity)
}

func (f *FilterState) routeTo() string {
	return NormalizeCity(f.ToCity)
}

func (f *FilterState) searchQuery() string {
	return strings.TrimSpace(f.SearchText)
}

func (f *FilterState) priceFiltered() bool {
	return f.MinPrice != DefaultMinPrice || f.MaxPrice != DefaultMaxPrice
}

func (f *FilterState) ratingFiltered() bool {
	return f.MinRating > 0
}

func (f *FilterState) sortSelected() bool {
	return f.SortOrder != SortDefault && f.SortOrder.IsValid()
}

func (f *FilterState) durationSortSelected() bool {
	return f.DurationSort != SortDefault && f.DurationSort.IsValid()
}

// HasRouteOrText reports whether at least one of from, to, or search text is
// non-empty after normalization. The debounced light query only fires when
// this holds.
func (f *FilterState) HasRouteOrText() bool {
	return f.routeFrom() != "" || f.routeTo() != "" || f.searchQuery() != ""
}

// ActiveFilterCount is the number of filters deviating from their defaults,
// plus one per selected theme and amenity. Used for the filter badge.
func (f *FilterState) ActiveFilterCount() int {
	count := 0
	if f.routeFrom() != "" {
		count++
	}
	if f.routeTo() != "" {
		count++
	}
	if f.searchQuery() != "" {
		count++
	}
	if f.priceFiltered() {
		count++
	}
	if f.ratingFiltered() {
		count++
	}
	if f.sortSelected() {
		count++
	}
	if f.durationSortSelected() {
		count++
	}
	return count + len(f.Themes) + len(f.Amenities)
}
