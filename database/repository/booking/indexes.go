package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes of the bookings collection. The composite
// key index is named by mode so switching modes never collides with an
// existing index definition.
func (r *mongoBookingRepo) ensureIndexes(unique bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	keyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "treatmentName", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetName("date_treatment_email_idx"),
	}
	if unique {
		keyIndex.Options = options.Index().SetUnique(true).SetName("date_treatment_email_unique")
	}

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
		keyIndex,
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
