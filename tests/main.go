package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"atithi/config"
	"atithi/database"
	"atithi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the catalog and settings with a small property so the booking flow
// can be exercised end to end against a local stack.
func main() {
	config.LoadConfig()
	database.InitDB()

	db := database.DB()
	unitTypes := db.Collection("unitTypes")
	settings := db.Collection("settings")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := unitTypes.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear unitTypes collection: %v", err)
	}
	if _, err := settings.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear settings collection: %v", err)
	}

	makeUnits := func(prefix string, count int) []models.Unit {
		units := make([]models.Unit, 0, count)
		for i := 1; i <= count; i++ {
			units = append(units, models.Unit{Number: fmt.Sprintf("%s%02d", prefix, i)})
		}
		return units
	}

	catalog := []interface{}{
		models.UnitType{
			Name:                 "Standard",
			PropertyType:         models.PropertyRoom,
			Price:                1800,
			IGST:                 12,
			MaxGuests:            2,
			AdditionalGuestCosts: "400",
			Units:                makeUnits("1", 8),
		},
		models.UnitType{
			Name:                 "Deluxe",
			PropertyType:         models.PropertyRoom,
			Price:                3200,
			IGST:                 18,
			MaxGuests:            3,
			AdditionalGuestCosts: "600",
			Units:                makeUnits("2", 6),
		},
		models.UnitType{
			Name:         "Banquet Hall",
			PropertyType: models.PropertyHall,
			Price:        25000,
			IGST:         18,
			Capacity:     400,
			Units:        makeUnits("H", 2),
		},
	}
	if _, err := unitTypes.InsertMany(ctx, catalog); err != nil {
		log.Fatalf("Failed to seed unit types: %v", err)
	}

	today := time.Now()
	offerEnd := today.AddDate(0, 0, 14)
	doc := models.Settings{
		TimeSlots: []models.TimeSlot{
			{Name: "full day", FromTime: "14:00", ToTime: "12:00"},
			{Name: models.HalfDaySlotName, FromTime: "09:00", ToTime: "18:00"},
		},
		SpecialOfferings: []models.SpecialOffering{
			{
				Name:               "Season opening",
				PropertyType:       models.PropertyRoom,
				StartDate:          today.Format("2006-01-02"),
				EndDate:            offerEnd.Format("2006-01-02"),
				DiscountPercentage: 10,
			},
		},
		Services: []models.HallService{
			{Name: "Decoration", Price: 8000},
			{Name: "Catering (per plate buffet)", Price: 450},
			{Name: "Sound system", Price: 3500},
		},
	}
	if _, err := settings.InsertOne(ctx, doc); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	log.Printf("Seeded %d unit types and settings into %s", len(catalog), config.AppConfig.DatabaseName)
}
