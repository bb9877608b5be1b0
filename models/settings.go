package models

// TimeSlot is a named check-in/check-out clock-time pair. The slot named
// "half day" halves the nightly rate as well as narrowing the stay window.
type TimeSlot struct {
	Name     string `bson:"name" json:"name"`
	FromTime string `bson:"fromTime" json:"fromTime"` // "15:04" check-in clock time
	ToTime   string `bson:"toTime" json:"toTime"`     // "15:04" check-out clock time
}

// HalfDaySlotName identifies the rate-halving slot in Settings.TimeSlots.
const HalfDaySlotName = "half day"

// SpecialOffering is a date-bounded percentage discount tied to a property type.
type SpecialOffering struct {
	Name               string  `bson:"name" json:"name"`
	PropertyType       string  `bson:"propertyType" json:"propertyType"`
	StartDate          string  `bson:"startDate" json:"startDate"` // "2006-01-02", inclusive
	EndDate            string  `bson:"endDate" json:"endDate"`     // "2006-01-02", inclusive
	DiscountPercentage float64 `bson:"discountPercentage" json:"discountPercentage"`
}

// HallService is a fixed-price add-on available for hall bookings.
type HallService struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Settings is the property-wide configuration consumed by the pricing and
// availability engines. Loaded once per booking form session.
type Settings struct {
	TimeSlots        []TimeSlot        `bson:"timeSlots" json:"timeSlots"`
	SpecialOfferings []SpecialOffering `bson:"specialOfferings,omitempty" json:"specialOfferings,omitempty"`
	Services         []HallService     `bson:"services,omitempty" json:"services,omitempty"`
}

// SlotByName returns the named time slot, if configured.
func (s Settings) SlotByName(name string) (TimeSlot, bool) {
	for _, slot := range s.TimeSlots {
		if slot.Name == name {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
