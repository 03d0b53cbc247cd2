package domain

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query parameter names understood by the tour filtering endpoint.
const (
	ParamQuery     = "q"
	ParamFromWhere = "fromWhere"
	ParamTo        = "to"
	ParamThemes    = "themes"
	ParamAmenities = "amenities"
	ParamMinPrice  = "minPrice"
	ParamMaxPrice  = "maxPrice"
	ParamMinRating = "minRating"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
)

// Sort keys accepted by the tour filtering endpoint.
const (
	SortByNights    = "nights"
	SortByCreatedAt = "createdAt"
)

// QueryPayload is the minimal parameter set sent to the filtering endpoint.
// A key is present only when the corresponding filter deviates from its
// default; absence, not an empty value, signals "no filter".
type QueryPayload map[string]string

// BuildQueryPayload produces the request parameters for the given filter
// state.
//
// Rules, in order:
//  1. Route endpoints are normalized (leading nights token stripped).
//  2. Non-empty from/to become fromWhere/to.
//  3. The free-text q is included only when both route endpoints are empty:
//     route filters and free-text search are mutually exclusive, and route
//     wins.
//  4. When includeAdvanced is set, themes/amenities are comma-joined when
//     non-empty, the price bounds are included only when they deviate from
//     the defaults, and minRating only when positive.
//  5. A nights sort suppresses the generic creation-date sort entirely; at
//     most one sort directive is ever emitted.
func BuildQueryPayload(state FilterState, includeAdvanced bool) QueryPayload {
	payload := QueryPayload{}

	from := state.routeFrom()
	to := state.routeTo()

	if from != "" {
		payload[ParamFromWhere] = from
	}
	if to != "" {
		payload[ParamTo] = to
	}

	// Free text only applies when no route filter is set.
	if from == "" && to == "" {
		if q := state.searchQuery(); q != "" {
			payload[ParamQuery] = q
		}
	}

	if includeAdvanced {
		if len(state.Themes) > 0 {
			payload[ParamThemes] = strings.Join(state.Themes, ",")
		}
		if len(state.Amenities) > 0 {
			payload[ParamAmenities] = strings.Join(state.Amenities, ",")
		}
		if state.MinPrice != DefaultMinPrice {
			payload[ParamMinPrice] = formatNumber(state.MinPrice)
		}
		if state.MaxPrice != DefaultMaxPrice {
			payload[ParamMaxPrice] = formatNumber(state.MaxPrice)
		}
		if state.ratingFiltered() {
			payload[ParamMinRating] = formatNumber(state.MinRating)
		}

		switch {
		case state.durationSortSelected():
			payload[ParamSortBy] = SortByNights
			payload[ParamSortOrder] = string(state.DurationSort)
		case state.sortSelected():
			payload[ParamSortBy] = SortByCreatedAt
			payload[ParamSortOrder] = string(state.SortOrder)
		}
	}

	return payload
}

// formatNumber renders a numeric parameter without trailing zeros.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// IsEmpty reports whether the payload carries no parameters at all.
func (p QueryPayload) IsEmpty() bool {
	return len(p) == 0
}

// Values converts the payload to url.Values for the outgoing request.
func (p QueryPayload) Values() url.Values {
	values := url.Values{}
	for key, value := range p {
		values.Set(key, value)
	}
	return values
}

// CacheKey returns a deterministic key for caching the results of this
// payload. Keys are sorted so that equal payloads always produce equal keys.
func (p QueryPayload) CacheKey() string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("tours")
	for _, key := range keys {
		b.WriteString(":")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(p[key])
	}
	return b.String()
}
