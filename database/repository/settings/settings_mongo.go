package settingsRepo

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

const settingsCollection = "settings"

// SettingsRepository serves the single property-wide settings document.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s models.Settings) error
}

// MongoSettingsRepo is the MongoDB-backed settings repository.
type MongoSettingsRepo struct{}

func NewMongoSettingsRepo() *MongoSettingsRepo {
	return &MongoSettingsRepo{}
}

func (repo *MongoSettingsRepo) coll() *mongo.Collection {
	return database.DB().Collection(settingsCollection)
}

func (repo *MongoSettingsRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Settings
	err := repo.coll().FindOne(ctx, bson.M{}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		// A fresh install has no settings yet; callers get an empty document.
		return &models.Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &s, nil
}

func (repo *MongoSettingsRepo) UpdateSettings(ctx context.Context, s models.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll().ReplaceOne(ctx, bson.M{}, s, opts); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
