package booking

import (
	"fmt"

	"atithi/models"
	"atithi/utils"
)

func validateStayRequest(req StayRequest) error {
	if req.DateRange.StartDate == "" || req.DateRange.EndDate == "" {
		return fmt.Errorf("dateRange is required")
	}
	if _, err := utils.ParseDate(req.DateRange.StartDate); err != nil {
		return err
	}
	if _, err := utils.ParseDate(req.DateRange.EndDate); err != nil {
		return err
	}
	if req.TimeSlot == "" {
		return fmt.Errorf("timeSlot is required")
	}
	if req.PropertyType != models.PropertyRoom && req.PropertyType != models.PropertyHall {
		return fmt.Errorf("propertyType must be %q or %q", models.PropertyRoom, models.PropertyHall)
	}
	if req.PropertyType == models.PropertyRoom && req.DateRange.EndDate <= req.DateRange.StartDate {
		return fmt.Errorf("room stays require at least one night")
	}
	return nil
}

func validateSelection(sel models.StaySelection) error {
	if err := validateStayRequest(StayRequest{
		DateRange:    sel.DateRange,
		TimeSlot:     sel.TimeSlot,
		PropertyType: sel.PropertyType,
	}); err != nil {
		return err
	}
	if sel.DiscountPercentage < 0 || sel.DiscountPercentage > 100 {
		return fmt.Errorf("discountPercentage must be between 0 and 100")
	}
	if sel.Guests.Adults < 0 || sel.Guests.Children < 0 {
		return fmt.Errorf("guest counts must not be negative")
	}
	if sel.PropertyType != models.PropertyHall && len(sel.SelectedServices) > 0 {
		return fmt.Errorf("services apply to hall bookings only")
	}
	return nil
}

// optionFor projects a catalog unit into the option offered to the form.
func optionFor(ut models.UnitType, unit models.Unit) models.UnitOption {
	return models.UnitOption{
		Type:                 ut.Name,
		Number:               unit.Number,
		Price:                ut.Price,
		IGST:                 ut.IGST,
		MaxGuests:            ut.MaxGuests,
		Capacity:             ut.Capacity,
		AdditionalGuestCosts: ut.AdditionalGuestCosts,
	}
}
