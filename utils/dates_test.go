package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	for _, raw := range []string{"2026-03-10 14:00", "2026-03-10T14:00:00Z", "2026-03-10"} {
		_, err := ParseTimestamp(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParseTimestamp("10/03/2026")
	assert.Error(t, err)
	_, err = ParseTimestamp("")
	assert.Error(t, err)
}

func TestCombineDateTime(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := CombineDateTime(day, "14:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), got)

	_, err = CombineDateTime(day, "2pm")
	assert.Error(t, err)
}

func TestNightsBetween(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	// Standard one-night stay: 22 hours rounds up to one night.
	assert.Equal(t, 1, NightsBetween(start, time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)))
	// Two nights.
	assert.Equal(t, 2, NightsBetween(start, time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)))
	// Exactly 48 hours stays at two.
	assert.Equal(t, 2, NightsBetween(start, start.Add(48*time.Hour)))
	// Clock components never add a night: a 33-hour window whose dates are
	// one day apart is still a single night.
	assert.Equal(t, 1, NightsBetween(
		time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC)))
	// A same-day hall window still bills one day.
	assert.Equal(t, 1, NightsBetween(start, start.Add(-2*time.Hour)))
}

func TestNightDates(t *testing.T) {
	start := time.Date(2026, 3, 30, 14, 0, 0, 0, time.UTC)
	// Crosses a month boundary.
	assert.Equal(t, []string{"2026-03-30", "2026-03-31", "2026-04-01"}, NightDates(start, 3))
}

func TestTruncateToDay(t *testing.T) {
	got := TruncateToDay(time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
}
