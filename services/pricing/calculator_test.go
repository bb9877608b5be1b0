package pricing

import (
	"testing"

	"atithi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSettings() models.Settings {
	return models.Settings{
		TimeSlots: []models.TimeSlot{
			{Name: "full day", FromTime: "14:00", ToTime: "12:00"},
			{Name: "half day", FromTime: "09:00", ToTime: "18:00"},
		},
	}
}

func roomSelection() models.StaySelection {
	return models.StaySelection{
		DateRange:    models.DateRange{StartDate: "2026-03-10", EndDate: "2026-03-11"},
		TimeSlot:     "full day",
		PropertyType: models.PropertyRoom,
		SelectedUnits: []models.SelectedUnit{
			{Type: "Deluxe", Number: "101", Price: 1000, IGST: 18, MaxGuests: 2},
		},
		Guests: models.GuestCount{Adults: 2},
	}
}

func TestComputeTotals_SingleNightRoom(t *testing.T) {
	bd, err := ComputeTotals(roomSelection(), baseSettings())
	require.NoError(t, err)
	require.Len(t, bd.Lines, 1)

	line := bd.Lines[0]
	assert.Equal(t, "2026-03-10", line.Date)
	assert.Equal(t, "Deluxe", line.UnitType)
	assert.Equal(t, "101", line.UnitNumber)
	assert.Equal(t, 1000.0, line.RoomCharge)
	assert.Equal(t, 180.0, line.Taxes)
	assert.Equal(t, 0.0, line.AdditionalCharge)
	assert.Equal(t, 1180.0, line.Total)

	assert.Equal(t, 1000.0, bd.RoomCharge)
	assert.Equal(t, 180.0, bd.Taxes)
	assert.Equal(t, 1180.0, bd.Total)
	assert.Equal(t, "₹1,180", bd.TotalDisplay)
}

func TestComputeTotals_GlobalDiscount(t *testing.T) {
	sel := roomSelection()
	sel.DiscountPercentage = 10

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)

	assert.Equal(t, 100.0, bd.DiscountAmount)
	assert.Equal(t, 1080.0, bd.Total)

	// Synthetic discount row appended for renderers.
	require.Len(t, bd.Lines, 2)
	discountLine := bd.Lines[1]
	assert.Equal(t, models.DiscountLineType, discountLine.UnitType)
	assert.Equal(t, -100.0, discountLine.Total)
}

func TestComputeTotals_HalfDayHalvesRate(t *testing.T) {
	full, err := ComputeTotals(roomSelection(), baseSettings())
	require.NoError(t, err)

	sel := roomSelection()
	sel.TimeSlot = "half day"
	half, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)

	// The slot changes the rate, never the night count: the half-day window
	// spans more clock hours yet bills the same single night.
	require.Len(t, half.Lines, 1)
	require.Len(t, half.Lines, len(full.Lines))

	// Tax is computed off the halved base.
	assert.Equal(t, 500.0, half.Lines[0].RoomCharge)
	assert.Equal(t, 90.0, half.Lines[0].Taxes)
	assert.Equal(t, full.RoomCharge/2, half.RoomCharge)
	assert.Equal(t, 590.0, half.Total)
}

func TestComputeTotals_ExtraGuestCharge(t *testing.T) {
	sel := roomSelection()
	sel.SelectedUnits = []models.SelectedUnit{
		{Type: "Deluxe", Number: "101", Price: 1000, IGST: 18, MaxGuests: 2, AdditionalGuestCosts: "300"},
		{Type: "Deluxe", Number: "102", Price: 1000, IGST: 18, MaxGuests: 2, AdditionalGuestCosts: "500"},
	}
	sel.Guests = models.GuestCount{Adults: 4, Children: 1} // capacity 4, one extra

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	require.Len(t, bd.Lines, 2)

	// Charged once per night at the highest rate, on the first unit only.
	assert.Equal(t, "101", bd.Lines[0].UnitNumber)
	assert.Equal(t, 500.0, bd.Lines[0].AdditionalCharge)
	assert.Equal(t, 0.0, bd.Lines[1].AdditionalCharge)
	assert.Equal(t, 500.0, bd.AdditionalGuestCharge)
	assert.Equal(t, 2000.0+360.0+500.0, bd.Total)
}

func TestComputeTotals_GuestsWithinCapacity(t *testing.T) {
	sel := roomSelection()
	sel.SelectedUnits[0].AdditionalGuestCosts = "500"
	sel.Guests = models.GuestCount{Adults: 1} // under capacity

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	assert.Equal(t, 0.0, bd.AdditionalGuestCharge)
	assert.Equal(t, 0.0, bd.Lines[0].AdditionalCharge)
}

func TestComputeTotals_UnparsableGuestCostDefaultsToZero(t *testing.T) {
	sel := roomSelection()
	sel.SelectedUnits[0].AdditionalGuestCosts = "n/a"
	sel.Guests = models.GuestCount{Adults: 5}

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	assert.Equal(t, 0.0, bd.AdditionalGuestCharge)
}

func TestComputeTotals_HallServices(t *testing.T) {
	sel := models.StaySelection{
		DateRange:    models.DateRange{StartDate: "2026-03-10", EndDate: "2026-03-10"},
		TimeSlot:     "full day",
		PropertyType: models.PropertyHall,
		SelectedUnits: []models.SelectedUnit{
			{Type: "Banquet", Number: "H1", Price: 20000, IGST: 18},
		},
		Guests: models.GuestCount{Adults: 200},
		SelectedServices: []models.HallService{
			{Name: "Decoration", Price: 5000},
			{Name: "Catering", Price: 15000},
		},
	}

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	require.Len(t, bd.Lines, 1)

	// Halls never carry the extra-guest charge, whatever the count.
	assert.Equal(t, 0.0, bd.AdditionalGuestCharge)
	// Services are charged once on the aggregate, not per night or per line.
	assert.Equal(t, 20000.0, bd.ServicesCharge)
	assert.Equal(t, 0.0, bd.Lines[0].AdditionalCharge)
	assert.Equal(t, 20000.0+3600.0+20000.0, bd.Total)
}

func TestComputeTotals_SpecialOffering(t *testing.T) {
	settings := baseSettings()
	settings.SpecialOfferings = []models.SpecialOffering{
		{Name: "Holi", PropertyType: models.PropertyRoom, StartDate: "2026-03-10", EndDate: "2026-03-10", DiscountPercentage: 20},
	}

	sel := roomSelection()
	sel.DateRange.EndDate = "2026-03-12" // two nights, only the first in the offer

	bd, err := ComputeTotals(sel, settings)
	require.NoError(t, err)
	require.Len(t, bd.Lines, 2)

	assert.Equal(t, 800.0, bd.Lines[0].RoomCharge)
	assert.Equal(t, 144.0, bd.Lines[0].Taxes)
	assert.Equal(t, 1000.0, bd.Lines[1].RoomCharge)
	assert.Equal(t, 180.0, bd.Lines[1].Taxes)
	assert.Equal(t, 1800.0, bd.RoomCharge)
}

func TestComputeTotals_OffersDoNotStack(t *testing.T) {
	settings := baseSettings()
	settings.SpecialOfferings = []models.SpecialOffering{
		{Name: "First", PropertyType: models.PropertyRoom, StartDate: "2026-03-01", EndDate: "2026-03-31", DiscountPercentage: 10},
		{Name: "Second", PropertyType: models.PropertyRoom, StartDate: "2026-03-01", EndDate: "2026-03-31", DiscountPercentage: 50},
	}

	bd, err := ComputeTotals(roomSelection(), baseSettings())
	require.NoError(t, err)
	full := bd.RoomCharge

	bd, err = ComputeTotals(roomSelection(), settings)
	require.NoError(t, err)
	// Only the first matching offer applies.
	assert.Equal(t, full-100, bd.RoomCharge)
}

func TestComputeTotals_PerStepRounding(t *testing.T) {
	sel := roomSelection()
	sel.SelectedUnits[0].Price = 999

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	// 999 * 18% = 179.82, rounded at the step, not at the end.
	assert.Equal(t, 180.0, bd.Lines[0].Taxes)
	assert.Equal(t, 1179.0, bd.Total)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	sel := roomSelection()
	sel.DiscountPercentage = 7

	first, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	second, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeTotals_NotReady(t *testing.T) {
	settings := baseSettings()

	sel := roomSelection()
	sel.SelectedUnits = nil
	_, err := ComputeTotals(sel, settings)
	assert.ErrorIs(t, err, ErrNotReady)

	sel = roomSelection()
	sel.SelectedUnits[0].Price = 0
	_, err = ComputeTotals(sel, settings)
	assert.ErrorIs(t, err, ErrNotReady)

	sel = roomSelection()
	sel.TimeSlot = "overnight"
	_, err = ComputeTotals(sel, settings)
	assert.ErrorIs(t, err, ErrNotReady)

	sel = roomSelection()
	sel.DateRange.EndDate = sel.DateRange.StartDate
	_, err = ComputeTotals(sel, settings)
	assert.ErrorIs(t, err, ErrNotReady)

	sel = roomSelection()
	sel.DateRange.StartDate = "bad"
	_, err = ComputeTotals(sel, settings)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestComputeTotals_MultiNightMultiUnitLineOrder(t *testing.T) {
	sel := roomSelection()
	sel.DateRange.EndDate = "2026-03-12"
	sel.SelectedUnits = append(sel.SelectedUnits,
		models.SelectedUnit{Type: "Suite", Number: "201", Price: 2500, IGST: 18, MaxGuests: 3})

	bd, err := ComputeTotals(sel, baseSettings())
	require.NoError(t, err)
	require.Len(t, bd.Lines, 4)

	// Unit-major, night-minor ordering.
	assert.Equal(t, "101", bd.Lines[0].UnitNumber)
	assert.Equal(t, "2026-03-10", bd.Lines[0].Date)
	assert.Equal(t, "101", bd.Lines[1].UnitNumber)
	assert.Equal(t, "2026-03-11", bd.Lines[1].Date)
	assert.Equal(t, "201", bd.Lines[2].UnitNumber)
	assert.Equal(t, "2026-03-10", bd.Lines[2].Date)

	assert.Equal(t, 2.0*1000+2*2500, bd.RoomCharge)
}
