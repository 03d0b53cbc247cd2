package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())

	clock.Advance(2 * time.Hour)
	assert.Equal(t, fixed.Add(2*time.Hour), clock.Now())

	clock.AdvanceDays(3)
	assert.Equal(t, fixed.Add(2*time.Hour+72*time.Hour), clock.Now())

	reset := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(reset)
	assert.Equal(t, reset, clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-06-15T12:00:00Z")
	assert.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() {
		NewMockClockFromString("not-a-time")
	})
}
