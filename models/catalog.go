package models

// PropertyType distinguishes overnight rooms from event halls.
const (
	PropertyRoom = "room"
	PropertyHall = "hall"
)

// UnitType is a catalog entry: a room type or hall type with its rate card
// and the physical units it owns.
type UnitType struct {
	Name         string  `bson:"name" json:"name"`
	PropertyType string  `bson:"propertyType" json:"propertyType"` // "room" or "hall"
	Price        float64 `bson:"price" json:"price"`               // base nightly rate
	IGST         float64 `bson:"igst" json:"igst"`                 // tax percentage
	MaxGuests    int     `bson:"maxGuests,omitempty" json:"maxGuests,omitempty"`
	Capacity     int     `bson:"capacity,omitempty" json:"capacity,omitempty"` // halls
	// Per extra guest per night, rooms only. Kept as a string because legacy
	// catalog rows carry unparsable values; the calculator defaults those to 0.
	AdditionalGuestCosts string `bson:"additionalGuestCosts,omitempty" json:"additionalGuestCosts,omitempty"`
	Units                []Unit `bson:"units,omitempty" json:"units,omitempty"`
}
