package availability

import (
	"testing"
	"time"

	"atithi/models"

	"github.com/stretchr/testify/assert"
)

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func bookedUnit(checkIn, checkOut string) models.Unit {
	return models.Unit{
		Number: "101",
		BookedDates: []models.Occupancy{
			{Status: models.StatusBooked, CheckIn: checkIn, CheckOut: checkOut, BookingNumber: "b-1"},
		},
	}
}

func TestIsAvailable_EmptyHistory(t *testing.T) {
	r := NewResolver()
	unit := models.Unit{Number: "101"}

	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 10, 14, 0), ts(2026, 3, 12, 12, 0)))
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 10, 14, 0), ts(2026, 3, 10, 14, 0)))
}

func TestIsAvailable_OverlapCases(t *testing.T) {
	r := NewResolver()
	// Existing stay: Mar 10 14:00 -> Mar 12 12:00.
	unit := bookedUnit("2026-03-10 14:00", "2026-03-12 12:00")

	// Strictly inside.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 11, 14, 0), ts(2026, 3, 12, 10, 0)))
	// Overlapping the front.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 9, 14, 0), ts(2026, 3, 11, 12, 0)))
	// Overlapping the back.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 11, 14, 0), ts(2026, 3, 14, 12, 0)))
	// Containing the stay entirely.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 9, 14, 0), ts(2026, 3, 14, 12, 0)))

	// Boundary touches conflict: requested end equals the stay's start.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 8, 14, 0), ts(2026, 3, 10, 14, 0)))
	// Requested start equals the stay's end (back-to-back turnover).
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 12, 12, 0), ts(2026, 3, 14, 12, 0)))

	// Strictly outside on both sides.
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 5, 14, 0), ts(2026, 3, 8, 12, 0)))
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 13, 14, 0), ts(2026, 3, 15, 12, 0)))
}

func TestIsAvailable_PointQuery(t *testing.T) {
	r := NewResolver()
	unit := bookedUnit("2026-03-10 14:00", "2026-03-12 12:00")

	// start <= point < end.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 10, 14, 0), ts(2026, 3, 10, 14, 0)))
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 11, 9, 0), ts(2026, 3, 11, 9, 0)))
	// The end boundary itself is exclusive for point queries.
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 12, 12, 0), ts(2026, 3, 12, 12, 0)))
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 9, 10, 0), ts(2026, 3, 9, 10, 0)))
}

func TestIsAvailable_Maintenance(t *testing.T) {
	r := NewResolver()
	unit := models.Unit{
		Number: "201",
		BookedDates: []models.Occupancy{
			{Status: models.StatusMaintenance, CheckIn: "2026-03-15 00:00"},
		},
	}

	// Every start at or after the maintenance start is blocked.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 15, 0, 0), ts(2026, 3, 16, 12, 0)))
	assert.False(t, r.IsAvailable(unit, ts(2026, 4, 1, 14, 0), ts(2026, 4, 3, 12, 0)))
	// Starts before maintenance begins are permitted.
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 10, 14, 0), ts(2026, 3, 12, 12, 0)))
}

func TestIsAvailable_HousekeepingPrecedence(t *testing.T) {
	r := NewResolver()
	unit := models.Unit{
		Number: "102",
		BookedDates: []models.Occupancy{
			// Open-ended checkout: the housekeeping hold.
			{Status: models.StatusCheckOut, CheckIn: "2026-03-09 12:00", CheckOut: ""},
		},
	}

	// Held for any request starting on or after the hold's day.
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 9, 14, 0), ts(2026, 3, 11, 12, 0)))
	assert.False(t, r.IsAvailable(unit, ts(2026, 3, 20, 14, 0), ts(2026, 3, 22, 12, 0)))
	// Requests starting before the hold's day are unaffected by it.
	assert.True(t, r.IsAvailable(unit, ts(2026, 3, 5, 14, 0), ts(2026, 3, 7, 12, 0)))

	// The hold wins regardless of other occupancies.
	unit.BookedDates = append(unit.BookedDates, models.Occupancy{
		Status: models.StatusBooked, CheckIn: "2026-06-01 14:00", CheckOut: "2026-06-03 12:00",
	})
	assert.False(t, r.IsAvailable(unit, ts(2026, 5, 1, 14, 0), ts(2026, 5, 3, 12, 0)))

	// A pending record behaves the same way.
	pending := models.Unit{
		Number: "103",
		BookedDates: []models.Occupancy{
			{Status: models.StatusPending, CheckIn: "2026-03-09 12:00"},
		},
	}
	assert.False(t, r.IsAvailable(pending, ts(2026, 3, 10, 14, 0), ts(2026, 3, 12, 12, 0)))
}

func TestIsAvailable_MalformedRecords(t *testing.T) {
	unit := models.Unit{
		Number: "104",
		BookedDates: []models.Occupancy{
			{Status: models.StatusBooked, CheckIn: "not a date", CheckOut: "2026-03-12 12:00"},
		},
	}

	// Permissive default: malformed records never block.
	permissive := NewResolver()
	assert.True(t, permissive.IsAvailable(unit, ts(2026, 3, 10, 14, 0), ts(2026, 3, 12, 12, 0)))

	// Strict policy: malformed records are unavailable-safe.
	strict := &Resolver{Policy: Policy{MalformedBlocks: true}}
	assert.False(t, strict.IsAvailable(unit, ts(2026, 3, 10, 14, 0), ts(2026, 3, 12, 12, 0)))
}

func TestStatusAt_MatchesIntervalRules(t *testing.T) {
	r := NewResolver()
	unit := models.Unit{
		Number: "105",
		BookedDates: []models.Occupancy{
			{Status: models.StatusCheckIn, CheckIn: "2026-03-10 14:00", CheckOut: "2026-03-12 12:00"},
			{Status: models.StatusMaintenance, CheckIn: "2026-04-01 00:00"},
		},
	}

	assert.Equal(t, models.StatusCheckIn, r.StatusAt(unit, ts(2026, 3, 11, 9, 0)))
	assert.Equal(t, models.StatusMaintenance, r.StatusAt(unit, ts(2026, 4, 2, 9, 0)))
	assert.Equal(t, models.StatusAvailable, r.StatusAt(unit, ts(2026, 3, 20, 9, 0)))

	held := models.Unit{
		Number: "106",
		BookedDates: []models.Occupancy{
			{Status: models.StatusCheckOut, CheckIn: "2026-03-09 12:00"},
		},
	}
	assert.Equal(t, models.StatusCheckOut, r.StatusAt(held, ts(2026, 3, 15, 9, 0)))
}

func TestConflicts_ReportsPerUnitNumbers(t *testing.T) {
	r := NewResolver()
	units := []models.Unit{
		bookedUnit("2026-03-10 14:00", "2026-03-12 12:00"),
		{Number: "102"},
		{Number: "103", BookedDates: []models.Occupancy{
			{Status: models.StatusCheckOut, CheckIn: "2026-03-01 12:00"},
		}},
	}

	conflicted := r.Conflicts(units, ts(2026, 3, 10, 14, 0), ts(2026, 3, 12, 12, 0))
	assert.Equal(t, []string{"101", "103"}, conflicted)
}

func TestWindow_AnchorsSlotClockTimes(t *testing.T) {
	slot := models.TimeSlot{Name: "full day", FromTime: "14:00", ToTime: "12:00"}
	start, end, err := Window(models.DateRange{StartDate: "2026-03-10", EndDate: "2026-03-12"}, slot)
	assert.NoError(t, err)
	assert.Equal(t, ts(2026, 3, 10, 14, 0), start)
	assert.Equal(t, ts(2026, 3, 12, 12, 0), end)

	_, _, err = Window(models.DateRange{StartDate: "10/03/2026", EndDate: "2026-03-12"}, slot)
	assert.Error(t, err)
}
