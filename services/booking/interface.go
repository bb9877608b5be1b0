package booking

import (
	bookingRepo "atithi/database/repository/booking"
	catalogRepo "atithi/database/repository/catalog"
	settingsRepo "atithi/database/repository/settings"
	"atithi/models"
	"atithi/services/availability"
)

// StayRequest starts a booking session: a stay window plus property type,
// before any units are chosen.
type StayRequest struct {
	DateRange    models.DateRange `json:"dateRange" binding:"required"`
	TimeSlot     string           `json:"timeSlot" binding:"required"`
	PropertyType string           `json:"propertyType" binding:"required"`
	GuestName    string           `json:"guestName"`
	GuestPhone   string           `json:"guestPhone"`
}

// BookingSessionService manages the stateful booking form workflow: open a
// session, reprice it on every change, confirm with a re-validation pass.
type BookingSessionService interface {
	InitiateSession(req StayRequest) (*models.BookingSession, error)
	UpdateSession(sessionID string, sel models.StaySelection) (*models.BookingSession, error)
	ConfirmBooking(sessionID string) (*models.Booking, error)
	CancelSession(sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Catalog  catalogRepo.CatalogRepository
	Settings settingsRepo.SettingsRepository
	Bookings bookingRepo.BookingRepository
	Resolver *availability.Resolver
}
