package availability

import (
	"time"

	"atithi/models"
	"atithi/utils"

	"go.uber.org/zap"
)

// Policy controls how the resolver treats occupancy records whose
// boundaries do not parse. The permissive default mirrors the legacy
// behavior (malformed records never block); flipping MalformedBlocks makes
// such records unavailable-safe instead.
type Policy struct {
	MalformedBlocks bool
}

// Resolver classifies a unit's state for a requested stay window from its
// occupancy history alone. It is a pure function of its inputs and safe for
// concurrent use.
type Resolver struct {
	Policy Policy
}

// NewResolver returns a resolver with the permissive malformed-record policy.
func NewResolver() *Resolver {
	return &Resolver{}
}

// IsAvailable reports whether the unit is free for [start, end]. The window
// must already carry the active time slot's check-in/check-out clock times.
// Passing start == end performs a point-in-interval query, used for
// calendar-cell rendering.
func (r *Resolver) IsAvailable(unit models.Unit, start, end time.Time) bool {
	return r.statusFor(unit, start, end) == models.StatusAvailable
}

// StatusAt classifies the unit at a single instant, returning the matching
// occupancy's status label, or StatusAvailable when nothing holds the unit.
// It shares IsAvailable's interval rules exactly and must not diverge from
// them.
func (r *Resolver) StatusAt(unit models.Unit, at time.Time) models.OccupancyStatus {
	return r.statusFor(unit, at, at)
}

// Conflicts returns the numbers of the given units that are not available
// for the window, in input order. Used by the pre-commit re-validation pass.
func (r *Resolver) Conflicts(units []models.Unit, start, end time.Time) []string {
	var conflicted []string
	for _, u := range units {
		if !r.IsAvailable(u, start, end) {
			conflicted = append(conflicted, u.Number)
		}
	}
	return conflicted
}

func (r *Resolver) statusFor(unit models.Unit, start, end time.Time) models.OccupancyStatus {
	// Housekeeping precedence: an open-ended checkout/pending record whose
	// check-in day is on or before the requested day pulls the unit out of
	// service until the hold is explicitly cleared, regardless of the rest
	// of its history.
	for _, occ := range unit.BookedDates {
		if occ.Status != models.StatusCheckOut && occ.Status != models.StatusPending {
			continue
		}
		if occ.CheckOut != "" {
			continue
		}
		held, ok := r.parseBoundary(unit.Number, occ, occ.CheckIn)
		if !ok {
			if r.Policy.MalformedBlocks {
				return occ.Status
			}
			continue
		}
		if !utils.TruncateToDay(held).After(utils.TruncateToDay(start)) {
			return occ.Status
		}
	}

	for _, occ := range unit.BookedDates {
		switch occ.Status {
		case models.StatusMaintenance:
			if occ.CheckIn == "" {
				continue
			}
			from, ok := r.parseBoundary(unit.Number, occ, occ.CheckIn)
			if !ok {
				if r.Policy.MalformedBlocks {
					return occ.Status
				}
				continue
			}
			// Maintenance has no end date: it blocks every start at or
			// after the moment it begins.
			if !start.Before(from) {
				return occ.Status
			}

		case models.StatusCheckIn, models.StatusCheckOut, models.StatusBooked:
			bookedStart, okStart := r.parseBoundary(unit.Number, occ, occ.CheckIn)
			bookedEnd, okEnd := r.parseBoundary(unit.Number, occ, occ.CheckOut)
			if !okStart || !okEnd {
				if r.Policy.MalformedBlocks {
					return occ.Status
				}
				continue
			}
			if start.Equal(end) {
				// Point query: start <= point < end.
				if !start.Before(bookedStart) && start.Before(bookedEnd) {
					return occ.Status
				}
				continue
			}
			// Range query. Boundary touches count as conflicts: back-to-back
			// bookings sharing a calendar boundary are treated as
			// overlapping, a deliberately conservative policy.
			if !start.After(bookedEnd) && !end.Before(bookedStart) {
				return occ.Status
			}
		}
	}

	return models.StatusAvailable
}

// parseBoundary parses an occupancy boundary, flagging malformed records so
// operators can repair the history.
func (r *Resolver) parseBoundary(unitNumber string, occ models.Occupancy, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := utils.ParseTimestamp(raw)
	if err != nil {
		utils.GetLogger().Warn("malformed occupancy boundary",
			zap.String("unit", unitNumber),
			zap.String("status", string(occ.Status)),
			zap.String("value", raw),
			zap.String("bookingNumber", occ.BookingNumber))
		return time.Time{}, false
	}
	return t, true
}
