package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain city", input: "Delhi", want: "Delhi"},
		{name: "leading nights token", input: "1N Delhi", want: "Delhi"},
		{name: "multi digit nights token", input: "10N Port Blair", want: "Port Blair"},
		{name: "lowercase token", input: "2n Goa", want: "Goa"},
		{name: "token with leading whitespace", input: "  3N Manali", want: "Manali"},
		{name: "token in the middle stays", input: "Delhi 2N", want: "Delhi 2N"},
		{name: "digits without N stay", input: "221B Baker Street", want: "221B Baker Street"},
		{name: "surrounding whitespace trimmed", input: "  Jaipur  ", want: "Jaipur"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCity(tt.input))
		})
	}
}

func TestParseSortDirection(t *testing.T) {
	tests := []struct {
		input string
		want  SortDirection
	}{
		{input: "asc", want: SortAscending},
		{input: "DESC", want: SortDescending},
		{input: " default ", want: SortDefault},
		{input: "", want: SortDefault},
		{input: "sideways", want: SortDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSortDirection(tt.input), "input %q", tt.input)
	}
}

func TestFilterState_Toggle(t *testing.T) {
	state := NewFilterState()

	state.ToggleAmenity("wifi")
	state.ToggleAmenity("pool")
	assert.Equal(t, []string{"wifi", "pool"}, state.Amenities)

	// Toggling again removes, preserving order of the rest.
	state.ToggleAmenity("wifi")
	assert.Equal(t, []string{"pool"}, state.Amenities)

	// Blank names are ignored.
	state.ToggleAmenity("  ")
	assert.Equal(t, []string{"pool"}, state.Amenities)

	state.ToggleTheme("beach")
	state.ToggleTheme("beach")
	assert.Empty(t, state.Themes)
}

func TestFilterState_Reset(t *testing.T) {
	state := NewFilterState()
	state.FromCity = "1N Delhi"
	state.SearchText = "honeymoon"
	state.MinPrice = 5000
	state.MaxPrice = 20000
	state.MinRating = 4
	state.ToggleTheme("beach")
	state.SortOrder = SortAscending
	state.DurationSort = SortDescending

	state.Reset()

	assert.Equal(t, NewFilterState(), state)
	assert.Zero(t, state.ActiveFilterCount())
}

func TestFilterState_HasRouteOrText(t *testing.T) {
	tests := []struct {
		name  string
		state FilterState
		want  bool
	}{
		{name: "all empty", state: NewFilterState(), want: false},
		{name: "from set", state: FilterState{FromCity: "Delhi"}, want: true},
		{name: "to set", state: FilterState{ToCity: "Goa"}, want: true},
		{name: "text set", state: FilterState{SearchText: "beach"}, want: true},
		{name: "whitespace only text", state: FilterState{SearchText: "   "}, want: false},
		{name: "from is only a nights token", state: FilterState{FromCity: "2N "}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.HasRouteOrText())
		})
	}
}

func TestFilterState_ActiveFilterCount(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *FilterState)
		want  int
	}{
		{name: "defaults", setup: func(f *FilterState) {}, want: 0},
		{
			name:  "route counts each endpoint",
			setup: func(f *FilterState) { f.FromCity = "Delhi"; f.ToCity = "Goa" },
			want:  2,
		},
		{
			name:  "price range counts once",
			setup: func(f *FilterState) { f.MinPrice = 1000; f.MaxPrice = 20000 },
			want:  1,
		},
		{
			name:  "only max price changed still counts",
			setup: func(f *FilterState) { f.MaxPrice = 30000 },
			want:  1,
		},
		{
			name:  "rating counts when positive",
			setup: func(f *FilterState) { f.MinRating = 4 },
			want:  1,
		},
		{
			name: "each chip counts",
			setup: func(f *FilterState) {
				f.ToggleTheme("beach")
				f.ToggleTheme("adventure")
				f.ToggleAmenity("wifi")
			},
			want: 3,
		},
		{
			name: "both sorts count separately",
			setup: func(f *FilterState) {
				f.SortOrder = SortAscending
				f.DurationSort = SortDescending
			},
			want: 2,
		},
		{
			name: "everything at once",
			setup: func(f *FilterState) {
				f.FromCity = "1N Delhi"
				f.SearchText = "honeymoon"
				f.MinPrice = 5000
				f.MinRating = 3
				f.ToggleTheme("beach")
				f.SortOrder = SortDescending
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewFilterState()
			tt.setup(&state)
			assert.Equal(t, tt.want, state.ActiveFilterCount())
		})
	}
}
