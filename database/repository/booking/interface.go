package bookingRepo

import (
	"context"

	"doctorportal/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create persists a new booking. When the store enforces the composite
	// uniqueness constraint a violation is reported as repository.ErrDuplicate.
	Create(ctx context.Context, booking *models.Booking) error
	// FindByDate returns every booking on the given appointment date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByKey returns bookings matching date, treatment and email exactly.
	FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error)
	// FindByEmail returns the bookings owned by email.
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID returns nil, nil when no booking has the id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}
