package models

// OccupancyStatus labels a hold on a physical unit.
type OccupancyStatus string

const (
	StatusBooked      OccupancyStatus = "booked"
	StatusCheckIn     OccupancyStatus = "checkin"
	StatusCheckOut    OccupancyStatus = "checkout"
	StatusMaintenance OccupancyStatus = "maintenance"
	StatusPending     OccupancyStatus = "pending"

	// StatusAvailable is a derived label, never stored on a record.
	StatusAvailable OccupancyStatus = "available"
)

// Occupancy is a historical or active hold record on a unit. Boundaries are
// stored as strings ("2006-01-02 15:04"); an empty CheckOut signals an
// open-ended hold. Historical records may carry malformed boundaries, so
// consumers must parse defensively.
type Occupancy struct {
	Status        OccupancyStatus `bson:"status" json:"status"`
	CheckIn       string          `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut      string          `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	BookingNumber string          `bson:"bookingNumber,omitempty" json:"bookingNumber,omitempty"` // back-reference for linking only
}

// Unit is a concrete room or hall instance. Its current state is derived
// entirely from BookedDates; the unit holds no mutable status field.
type Unit struct {
	Number      string      `bson:"number" json:"number"`
	BookedDates []Occupancy `bson:"bookedDates,omitempty" json:"bookedDates,omitempty"`
}
