package bookingRepo

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

const bookingsCollection = "bookings"

// BookingRepository persists confirmed bookings with their frozen price
// breakdowns.
type BookingRepository interface {
	Create(ctx context.Context, b models.Booking) error
	GetByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error)
	List(ctx context.Context, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingNumber, status string) error
}

// MongoBookingRepo is the MongoDB-backed booking repository.
type MongoBookingRepo struct{}

func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{}
}

func (repo *MongoBookingRepo) coll() *mongo.Collection {
	return database.DB().Collection(bookingsCollection)
}

func (repo *MongoBookingRepo) Create(ctx context.Context, b models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll().InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking %s: %w", b.BookingNumber, err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := repo.coll().FindOne(ctx, bson.M{"bookingNumber": bookingNumber}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("booking %q not found", bookingNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %q: %w", bookingNumber, err)
	}
	return &b, nil
}

func (repo *MongoBookingRepo) List(ctx context.Context, status string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, bookingNumber, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll().UpdateOne(ctx,
		bson.M{"bookingNumber": bookingNumber},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", bookingNumber, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %q not found", bookingNumber)
	}
	return nil
}
