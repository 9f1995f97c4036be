package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorportal/database/repository"
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the "bookings" collection.
// With unique set, the (appointmentDate, treatmentName, email) index is unique.
func NewMongoBookingRepo(db *mongo.Database, unique bool) (BookingRepository, error) {
	r := &mongoBookingRepo{coll: db.Collection("bookings")}
	if err := r.ensureIndexes(unique); err != nil {
		return nil, err
	}
	return r, nil
}

func keyFilter(key models.BookingKey) bson.M {
	return bson.M{
		"appointmentDate": key.AppointmentDate,
		"treatmentName":   key.TreatmentName,
		"email":           key.Email,
	}
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", repository.MapWriteError(err))
	}
	return nil
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"appointmentDate": date})
}

func (r *mongoBookingRepo) FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error) {
	return r.find(ctx, keyFilter(key))
}

func (r *mongoBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}
