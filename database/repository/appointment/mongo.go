package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoOptionRepo constructs an OptionRepository over the "appointmentOptions" collection.
func NewMongoOptionRepo(db *mongo.Database) (OptionRepository, error) {
	r := &mongoOptionRepo{coll: db.Collection("appointmentOptions")}
	if err := r.ensureIndexes(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *mongoOptionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment option indexes: %w", err)
	}
	return nil
}

func (r *mongoOptionRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query appointment options: %w", err)
	}
	opts := []models.AppointmentOption{}
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return opts, nil
}

func (r *mongoOptionRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetProjection(bson.M{"_id": 0, "name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query specialties: %w", err)
	}
	specialties := []models.Specialty{}
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}

func (r *mongoOptionRepo) InsertMany(ctx context.Context, opts []models.AppointmentOption) error {
	if len(opts) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(opts))
	for _, o := range opts {
		docs = append(docs, o)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert appointment options: %w", err)
	}
	return nil
}
