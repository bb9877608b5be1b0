package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "atithi/database/repository/booking"
	catalogRepo "atithi/database/repository/catalog"
	"atithi/models"
	"atithi/utils"

	"go.uber.org/zap"
)

// StayOpsService covers the lifecycle of a unit after confirmation:
// check-in, check-out (which opens a housekeeping hold), clearing the hold,
// and maintenance blocks.
type StayOpsService interface {
	CheckIn(bookingNumber string) error
	CheckOut(bookingNumber string) error
	ClearHousekeeping(unitType, unitNumber string) error
	StartMaintenance(unitType, unitNumber, from string) error
	EndMaintenance(unitType, unitNumber string) error
}

// DefaultStayOpsService implements StayOpsService.
type DefaultStayOpsService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
}

// CheckIn marks the booking and its unit occupancies as checked in.
func (s *DefaultStayOpsService) CheckIn(bookingNumber string) error {
	ctx := context.Background()
	b, err := s.Bookings.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return err
	}
	if b.Status != models.BookingConfirmed {
		return fmt.Errorf("booking %s is %s, not %s", bookingNumber, b.Status, models.BookingConfirmed)
	}
	for _, u := range b.Selection.SelectedUnits {
		if err := s.Catalog.UpdateOccupancyStatus(ctx, u.Type, u.Number, bookingNumber, models.StatusCheckIn, false); err != nil {
			return err
		}
	}
	return s.Bookings.UpdateStatus(ctx, bookingNumber, models.BookingCheckedIn)
}

// CheckOut ends the stay. Each unit's occupancy becomes an open-ended
// checkout record, which is the housekeeping hold: the unit stays out of
// service until ClearHousekeeping removes it.
func (s *DefaultStayOpsService) CheckOut(bookingNumber string) error {
	ctx := context.Background()
	b, err := s.Bookings.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return err
	}
	if b.Status != models.BookingCheckedIn {
		return fmt.Errorf("booking %s is %s, not %s", bookingNumber, b.Status, models.BookingCheckedIn)
	}
	for _, u := range b.Selection.SelectedUnits {
		if err := s.Catalog.UpdateOccupancyStatus(ctx, u.Type, u.Number, bookingNumber, models.StatusCheckOut, true); err != nil {
			return err
		}
	}
	if err := s.Bookings.UpdateStatus(ctx, bookingNumber, models.BookingCheckedOut); err != nil {
		return err
	}
	utils.GetLogger().Info("stay checked out, housekeeping hold opened",
		zap.String("bookingNumber", bookingNumber))
	return nil
}

// ClearHousekeeping removes the open hold records from a unit, returning it
// to service.
func (s *DefaultStayOpsService) ClearHousekeeping(unitType, unitNumber string) error {
	ctx := context.Background()
	return s.Catalog.RemoveOccupancies(ctx, unitType, unitNumber,
		[]models.OccupancyStatus{models.StatusCheckOut, models.StatusPending})
}

// StartMaintenance blocks a unit from the given date onward. Maintenance
// has no end date; EndMaintenance lifts it.
func (s *DefaultStayOpsService) StartMaintenance(unitType, unitNumber, from string) error {
	ctx := context.Background()
	if from == "" {
		from = time.Now().Format(utils.DateTimeLayout)
	} else if _, err := utils.ParseTimestamp(from); err != nil {
		return err
	}
	return s.Catalog.AppendOccupancy(ctx, unitType, unitNumber, models.Occupancy{
		Status:  models.StatusMaintenance,
		CheckIn: from,
	})
}

// EndMaintenance removes maintenance records from a unit.
func (s *DefaultStayOpsService) EndMaintenance(unitType, unitNumber string) error {
	ctx := context.Background()
	return s.Catalog.RemoveOccupancies(ctx, unitType, unitNumber,
		[]models.OccupancyStatus{models.StatusMaintenance})
}
