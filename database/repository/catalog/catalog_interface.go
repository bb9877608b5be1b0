package catalogRepo

import (
	"context"

	"atithi/models"
)

// CatalogRepository manages unit-type catalog entries and the occupancy
// history embedded in their units.
type CatalogRepository interface {
	GetUnitTypes(ctx context.Context, propertyType string) ([]models.UnitType, error)
	GetUnitType(ctx context.Context, name string) (*models.UnitType, error)
	UpsertUnitType(ctx context.Context, ut models.UnitType) error

	// ReserveUnit appends a booked occupancy to a unit only if the server-side
	// availability guard still holds for the stay window. Returns
	// ErrUnitConflict when another booking won the race.
	ReserveUnit(ctx context.Context, typeName, unitNumber string, occ models.Occupancy) error

	// AppendOccupancy adds a hold record unconditionally (maintenance blocks,
	// housekeeping holds opened at checkout).
	AppendOccupancy(ctx context.Context, typeName, unitNumber string, occ models.Occupancy) error

	// UpdateOccupancyStatus rewrites the status of the occupancy linked to a
	// booking, optionally clearing its check-out boundary to open a hold.
	UpdateOccupancyStatus(ctx context.Context, typeName, unitNumber, bookingNumber string, status models.OccupancyStatus, openEnded bool) error

	// RemoveOccupancies drops every occupancy on the unit carrying one of the
	// given statuses. Used to clear housekeeping holds and end maintenance.
	RemoveOccupancies(ctx context.Context, typeName, unitNumber string, statuses []models.OccupancyStatus) error

	// RemoveBookingOccupancies drops the occupancies linked to a booking from
	// every unit of the type. Used when a booking is cancelled or re-edited.
	RemoveBookingOccupancies(ctx context.Context, typeName, bookingNumber string) error
}
