package models

// UnitOption is a catalog unit offered to the booking form, already
// filtered to the requested stay window.
type UnitOption struct {
	Type                 string  `json:"type"`
	Number               string  `json:"number"`
	Price                float64 `json:"price"`
	IGST                 float64 `json:"igst"`
	MaxGuests            int     `json:"maxGuests,omitempty"`
	Capacity             int     `json:"capacity,omitempty"`
	AdditionalGuestCosts string  `json:"additionalGuestCosts,omitempty"`
}

// BookingSession is the cached state of an open booking form: the stay
// request, the availability-filtered unit options, the current selection
// and its live quote. A nil Breakdown means the selection is not ready to
// price yet and the form should suppress the total display.
type BookingSession struct {
	SessionID      string          `json:"sessionId"`
	GuestName      string          `json:"guestName,omitempty"`
	GuestPhone     string          `json:"guestPhone,omitempty"`
	Selection      StaySelection   `json:"selection"`
	AvailableUnits []UnitOption    `json:"availableUnits"`
	Breakdown      *PriceBreakdown `json:"breakdown,omitempty"`
}
