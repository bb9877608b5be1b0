package availability

import (
	"fmt"
	"time"

	"atithi/models"
	"atithi/utils"
)

// Window derives the concrete stay window for a date range under a time
// slot: the slot's from-time anchored on the start date and its to-time on
// the end date. This is the window both the resolver and the price
// calculator operate on.
func Window(dr models.DateRange, slot models.TimeSlot) (time.Time, time.Time, error) {
	startDay, err := utils.ParseDate(dr.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}
	endDay, err := utils.ParseDate(dr.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", err)
	}
	start, err := utils.CombineDateTime(startDay, slot.FromTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("slot %q: %w", slot.Name, err)
	}
	end, err := utils.CombineDateTime(endDay, slot.ToTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("slot %q: %w", slot.Name, err)
	}
	return start, end, nil
}
