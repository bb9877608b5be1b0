package models

import "time"

// Booking statuses.
const (
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checkedin"
	BookingCheckedOut = "checkedout"
	BookingCancelled  = "cancelled"
)

// Booking represents a confirmed booking record.
type Booking struct {
	BookingNumber string         `bson:"bookingNumber" json:"bookingNumber"` // UUID
	GuestName     string         `bson:"guestName" json:"guestName"`
	GuestPhone    string         `bson:"guestPhone,omitempty" json:"guestPhone,omitempty"`
	Selection     StaySelection  `bson:"selection" json:"selection"`
	Breakdown     PriceBreakdown `bson:"breakdown" json:"breakdown"` // frozen at confirmation
	CheckIn       string         `bson:"checkIn" json:"checkIn"`     // "2006-01-02 15:04"
	CheckOut      string         `bson:"checkOut" json:"checkOut"`
	Status        string         `bson:"status" json:"status"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}
