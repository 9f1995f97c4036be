// Command seed replaces the appointment option catalog with the demo catalog.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"doctorportal/config"
	"doctorportal/database"
	appointmentRepo "doctorportal/database/repository/appointment"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrMissingSecret) {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.DBName)

	// Clear the existing catalog.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := db.Collection("appointmentOptions").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear appointmentOptions collection: %v", err)
	}

	repo, err := appointmentRepo.NewMongoOptionRepo(db)
	if err != nil {
		log.Fatalf("%v", err)
	}
	catalog := database.DefaultCatalog()
	if err := repo.InsertMany(ctx, catalog); err != nil {
		log.Fatalf("Failed to insert catalog: %v", err)
	}
	log.Printf("Inserted %d appointment options into %s", len(catalog), cfg.DBName)
}
