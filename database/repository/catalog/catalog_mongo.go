package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"atithi/database"
	"atithi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const unitTypesCollection = "unitTypes"

// MongoCatalogRepo is the MongoDB-backed catalog repository.
type MongoCatalogRepo struct{}

// NewMongoCatalogRepo returns a catalog repository backed by the global
// Mongo client.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{}
}

func (repo *MongoCatalogRepo) coll() *mongo.Collection {
	return database.DB().Collection(unitTypesCollection)
}

func (repo *MongoCatalogRepo) GetUnitTypes(ctx context.Context, propertyType string) ([]models.UnitType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if propertyType != "" {
		filter["propertyType"] = propertyType
	}

	cursor, err := repo.coll().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.UnitType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode unit types: %w", err)
	}
	return types, nil
}

func (repo *MongoCatalogRepo) GetUnitType(ctx context.Context, name string) (*models.UnitType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ut models.UnitType
	err := repo.coll().FindOne(ctx, bson.M{"name": name}).Decode(&ut)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("unit type %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unit type %q: %w", name, err)
	}
	return &ut, nil
}

func (repo *MongoCatalogRepo) UpsertUnitType(ctx context.Context, ut models.UnitType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll().ReplaceOne(ctx, bson.M{"name": ut.Name}, ut, opts); err != nil {
		return fmt.Errorf("failed to upsert unit type %q: %w", ut.Name, err)
	}
	return nil
}

func (repo *MongoCatalogRepo) AppendOccupancy(ctx context.Context, typeName, unitNumber string, occ models.Occupancy) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": typeName, "units.number": unitNumber}
	update := bson.M{"$push": bson.M{"units.$.bookedDates": occ}}
	res, err := repo.coll().UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append occupancy to %s/%s: %w", typeName, unitNumber, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("unit %s/%s not found", typeName, unitNumber)
	}
	return nil
}

func (repo *MongoCatalogRepo) UpdateOccupancyStatus(ctx context.Context, typeName, unitNumber, bookingNumber string, status models.OccupancyStatus, openEnded bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"units.$[u].bookedDates.$[o].status": status}
	if openEnded {
		set["units.$[u].bookedDates.$[o].checkOut"] = ""
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"u.number": unitNumber},
			bson.M{"o.bookingNumber": bookingNumber},
		},
	})
	res, err := repo.coll().UpdateOne(ctx, bson.M{"name": typeName}, bson.M{"$set": set}, opts)
	if err != nil {
		return fmt.Errorf("failed to update occupancy status on %s/%s: %w", typeName, unitNumber, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("unit type %q not found", typeName)
	}
	return nil
}

func (repo *MongoCatalogRepo) RemoveOccupancies(ctx context.Context, typeName, unitNumber string, statuses []models.OccupancyStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": typeName, "units.number": unitNumber}
	update := bson.M{"$pull": bson.M{
		"units.$.bookedDates": bson.M{"status": bson.M{"$in": statuses}},
	}}
	if _, err := repo.coll().UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove occupancies from %s/%s: %w", typeName, unitNumber, err)
	}
	return nil
}

func (repo *MongoCatalogRepo) RemoveBookingOccupancies(ctx context.Context, typeName, bookingNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": typeName}
	update := bson.M{"$pull": bson.M{
		"units.$[].bookedDates": bson.M{"bookingNumber": bookingNumber},
	}}
	if _, err := repo.coll().UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove booking %s occupancies from %s: %w", bookingNumber, typeName, err)
	}
	return nil
}
