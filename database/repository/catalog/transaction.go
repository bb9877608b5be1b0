package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atithi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// blockingCond builds the aggregation predicate deciding whether an
// existing occupancy record blocks a reservation for [checkIn, checkOut].
// It must stay in lockstep with the resolver's rules: open-ended
// checkout/pending holds always block, maintenance blocks when it begins
// on or before the requested start, and active stays block on inclusive
// window overlap (boundary touches conflict, same as the resolver).
func blockingCond(checkIn, checkOut string) bson.D {
	return bson.D{
		{Key: "$or", Value: bson.A{
			bson.D{
				{Key: "$and", Value: bson.A{
					bson.D{{Key: "$in", Value: bson.A{"$$occ.status", bson.A{string(models.StatusCheckOut), string(models.StatusPending)}}}},
					bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$ifNull", Value: bson.A{"$$occ.checkOut", ""}}}, ""}}},
				}},
			},
			bson.D{
				{Key: "$and", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$$occ.status", string(models.StatusMaintenance)}}},
					bson.D{{Key: "$lte", Value: bson.A{"$$occ.checkIn", checkIn}}},
				}},
			},
			bson.D{
				{Key: "$and", Value: bson.A{
					bson.D{{Key: "$in", Value: bson.A{"$$occ.status", bson.A{
						string(models.StatusBooked), string(models.StatusCheckIn), string(models.StatusCheckOut),
					}}}},
					bson.D{{Key: "$ne", Value: bson.A{bson.D{{Key: "$ifNull", Value: bson.A{"$$occ.checkOut", ""}}}, ""}}},
					bson.D{{Key: "$lte", Value: bson.A{"$$occ.checkIn", checkOut}}},
					bson.D{{Key: "$gte", Value: bson.A{"$$occ.checkOut", checkIn}}},
				}},
			},
		}},
	}
}

// ErrUnitConflict is returned when the server-side availability guard
// rejects a reservation: another booking claimed the unit between the
// caller's re-validation pass and this write.
var ErrUnitConflict = errors.New("unit is no longer available")

// ReserveUnit is the atomic reserve-if-available primitive. The occupancy is
// appended inside a single conditional pipeline update whose guard mirrors
// the resolver's interval rule, so two concurrent bookers cannot both claim
// the same unit for overlapping windows.
//
// Occupancy boundaries use the zero-padded "2006-01-02 15:04" layout, so
// lexicographic string comparison matches chronological order and the guard
// can compare them directly.
func (repo *MongoCatalogRepo) ReserveUnit(ctx context.Context, typeName, unitNumber string, occ models.Occupancy) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"name": typeName,
		"units": bson.M{
			"$elemMatch": bson.M{"number": unitNumber},
		},
	}

	blocking := blockingCond(occ.CheckIn, occ.CheckOut)

	occDoc := bson.D{
		{Key: "status", Value: string(occ.Status)},
		{Key: "checkIn", Value: occ.CheckIn},
		{Key: "checkOut", Value: occ.CheckOut},
		{Key: "bookingNumber", Value: occ.BookingNumber},
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "units", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$units"},
					{Key: "as", Value: "unit"},
					{Key: "in", Value: bson.D{
						{Key: "$cond", Value: bson.D{
							{Key: "if", Value: bson.D{
								{Key: "$and", Value: bson.A{
									bson.D{{Key: "$eq", Value: bson.A{"$$unit.number", unitNumber}}},
									bson.D{{Key: "$eq", Value: bson.A{
										bson.D{{Key: "$size", Value: bson.D{
											{Key: "$filter", Value: bson.D{
												{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$$unit.bookedDates", bson.A{}}}}},
												{Key: "as", Value: "occ"},
												{Key: "cond", Value: blocking},
											}},
										}}},
										0,
									}}},
								}},
							}},
							{Key: "then", Value: bson.D{
								{Key: "$mergeObjects", Value: bson.A{
									"$$unit",
									bson.D{{Key: "bookedDates", Value: bson.D{
										{Key: "$concatArrays", Value: bson.A{
											bson.D{{Key: "$ifNull", Value: bson.A{"$$unit.bookedDates", bson.A{}}}},
											bson.A{occDoc},
										}},
									}}},
								}},
							}},
							{Key: "else", Value: "$$unit"},
						}},
					}},
				}},
			}},
		}}},
	}

	res, err := repo.coll().UpdateOne(ctx, filter, pipeline)
	if err != nil {
		return fmt.Errorf("failed to reserve unit %s/%s: %w", typeName, unitNumber, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("unit %s/%s not found", typeName, unitNumber)
	}
	if res.ModifiedCount == 0 {
		return ErrUnitConflict
	}
	return nil
}
