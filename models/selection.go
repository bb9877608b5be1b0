package models

// DateRange is the requested stay window as calendar dates; the active time
// slot supplies the clock components.
type DateRange struct {
	StartDate string `bson:"startDate" json:"startDate" binding:"required"` // "2006-01-02"
	EndDate   string `bson:"endDate" json:"endDate" binding:"required"`     // "2006-01-02"
}

// GuestCount carries the occupancy figures entered on the booking form.
type GuestCount struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
}

// Total returns the combined guest count.
func (g GuestCount) Total() int {
	return g.Adults + g.Children
}

// SelectedUnit is one unit chosen on the booking form, carrying the rate
// fields resolved from its catalog entry at selection time.
type SelectedUnit struct {
	Type                 string  `bson:"type" json:"type"`
	Number               string  `bson:"number" json:"number"`
	Price                float64 `bson:"price" json:"price"`
	IGST                 float64 `bson:"igst" json:"igst"`
	MaxGuests            int     `bson:"maxGuests,omitempty" json:"maxGuests,omitempty"`
	AdditionalGuestCosts string  `bson:"additionalGuestCosts,omitempty" json:"additionalGuestCosts,omitempty"`
}

// StaySelection is the caller-constructed, ephemeral input to the pricing
// engine: the stay window, chosen units, occupancy and discounts as they
// stand on the open booking form.
type StaySelection struct {
	DateRange          DateRange      `bson:"dateRange" json:"dateRange"`
	TimeSlot           string         `bson:"timeSlot" json:"timeSlot"`
	PropertyType       string         `bson:"propertyType" json:"propertyType"`
	SelectedUnits      []SelectedUnit `bson:"selectedUnits" json:"selectedUnits"`
	Guests             GuestCount     `bson:"guests" json:"guests"`
	SelectedServices   []HallService  `bson:"selectedServices,omitempty" json:"selectedServices,omitempty"`
	DiscountPercentage float64        `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
}
