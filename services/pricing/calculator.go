package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"atithi/models"
	"atithi/utils"
)

// ErrNotReady signals that the selection is incomplete and no breakdown can
// be computed yet. Callers keep the form open and suppress the total
// display rather than surfacing an error.
var ErrNotReady = errors.New("pricing: selection is not ready")

// ComputeTotals produces the per-night-per-unit price breakdown for a stay
// selection. It is pure and deterministic: re-invoking it with an unchanged
// selection yields an identical breakdown, since the booking form calls it
// on every input change.
//
// All monetary values are rounded to whole rupees immediately after each
// computation step, so the aggregates are sums of already-rounded pieces.
// This avoids fractional-rupee drift across many line items and must not be
// replaced by a single rounding at the end.
func ComputeTotals(sel models.StaySelection, settings models.Settings) (*models.PriceBreakdown, error) {
	if len(sel.SelectedUnits) == 0 {
		return nil, ErrNotReady
	}
	for _, u := range sel.SelectedUnits {
		if u.Type == "" || u.Number == "" || u.Price <= 0 {
			return nil, ErrNotReady
		}
	}

	slot, ok := settings.SlotByName(sel.TimeSlot)
	if !ok {
		return nil, ErrNotReady
	}
	startDay, err := utils.ParseDate(sel.DateRange.StartDate)
	if err != nil {
		return nil, ErrNotReady
	}
	endDay, err := utils.ParseDate(sel.DateRange.EndDate)
	if err != nil {
		return nil, ErrNotReady
	}
	if sel.PropertyType == models.PropertyRoom && !endDay.After(startDay) {
		return nil, ErrNotReady
	}

	// Billable nights come from the calendar date range alone. The slot's
	// clock times shape the availability window, never the night count: a
	// half-day slot changes the rate, not how many nights are billed.
	nights := utils.NightsBetween(startDay, endDay)
	dates := utils.NightDates(startDay, nights)
	halfDay := strings.EqualFold(slot.Name, models.HalfDaySlotName)

	// Extra guests beyond the combined capacity of the selection are charged
	// once per night at the highest per-guest rate among the selected units,
	// and only against the first unit's lines. Rooms only.
	perNightExtra := 0.0
	if sel.PropertyType == models.PropertyRoom {
		capacity := 0
		highestCost := 0.0
		for _, u := range sel.SelectedUnits {
			capacity += u.MaxGuests
			if c := parseGuestCost(u.AdditionalGuestCosts); c > highestCost {
				highestCost = c
			}
		}
		if extra := sel.Guests.Total() - capacity; extra > 0 {
			perNightExtra = round(float64(extra) * highestCost)
		}
	}

	bd := &models.PriceBreakdown{}
	for i, u := range sel.SelectedUnits {
		for _, date := range dates {
			base := u.Price
			if halfDay {
				base = round(base / 2)
			}
			if off, ok := offerFor(settings.SpecialOfferings, sel.PropertyType, date); ok {
				base = round(base - round(base*off.DiscountPercentage/100))
			}
			tax := round(base * u.IGST / 100)

			additional := 0.0
			if i == 0 {
				additional = perNightExtra
			}

			line := models.PriceLine{
				Date:             date,
				UnitType:         u.Type,
				UnitNumber:       u.Number,
				RoomCharge:       base,
				Taxes:            tax,
				AdditionalCharge: additional,
				Total:            base + tax + additional,
			}
			bd.Lines = append(bd.Lines, line)
			bd.RoomCharge += line.RoomCharge
			bd.Taxes += line.Taxes
		}
	}

	if perNightExtra > 0 {
		bd.AdditionalGuestCharge = perNightExtra * float64(nights)
	}

	if sel.PropertyType == models.PropertyHall {
		// Hall services are a flat one-time charge on the aggregate, never
		// multiplied by nights and never attached to a per-night line.
		services := 0.0
		for _, svc := range sel.SelectedServices {
			services += round(svc.Price)
		}
		bd.ServicesCharge = services
	}

	if sel.DiscountPercentage > 0 {
		bd.DiscountAmount = round(bd.RoomCharge * sel.DiscountPercentage / 100)
		bd.Lines = append(bd.Lines, models.PriceLine{
			UnitType: models.DiscountLineType,
			Total:    -bd.DiscountAmount,
		})
	}

	bd.Total = bd.RoomCharge + bd.Taxes + bd.AdditionalGuestCharge + bd.ServicesCharge - bd.DiscountAmount
	bd.TotalDisplay = utils.FormatINR(bd.Total)
	return bd, nil
}

// offerFor returns the first special offering matching the property type
// whose inclusive date window contains the night. Offers never stack.
func offerFor(offers []models.SpecialOffering, propertyType, date string) (models.SpecialOffering, bool) {
	night, err := utils.ParseDate(date)
	if err != nil {
		return models.SpecialOffering{}, false
	}
	for _, off := range offers {
		if off.PropertyType != propertyType {
			continue
		}
		from, err := utils.ParseDate(off.StartDate)
		if err != nil {
			continue
		}
		to, err := utils.ParseDate(off.EndDate)
		if err != nil {
			continue
		}
		if !night.Before(from) && !night.After(to) {
			return off, true
		}
	}
	return models.SpecialOffering{}, false
}

// parseGuestCost reads a catalog additional-guest cost, defaulting
// unparsable legacy values to 0.
func parseGuestCost(raw string) float64 {
	if raw == "" {
		return 0
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || c < 0 {
		return 0
	}
	return c
}

// round rounds a monetary value to the nearest whole rupee.
func round(v float64) float64 {
	return math.Round(v)
}
