// Package booking registers bookings while keeping each user to one booking
// per treatment and date.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorportal/database/repository"
	"doctorportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the booking persistence the registrar needs.
type Store interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// Catalog provides the treatment catalog for slot validation.
type Catalog interface {
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
}

// Result is the outcome of Create. A rejected booking is a normal result,
// not an error.
type Result struct {
	Accepted   bool
	InsertedID string
	Conflict   *ConflictError
}

// Registrar creates bookings.
type Registrar struct {
	Bookings Store
	Catalog  Catalog
	// ValidateSlots additionally rejects unknown treatments, slots the
	// treatment does not offer, and slots already taken on that date.
	ValidateSlots bool
	Logger        *zap.Logger

	now func() time.Time
}

// NewRegistrar returns a Registrar. catalog may be nil when validateSlots is false.
func NewRegistrar(bookings Store, catalog Catalog, validateSlots bool, logger *zap.Logger) *Registrar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registrar{
		Bookings:      bookings,
		Catalog:       catalog,
		ValidateSlots: validateSlots && catalog != nil,
		Logger:        logger,
		now:           time.Now,
	}
}

// Create persists booking unless its owner already holds a booking for the
// same treatment on the same date.
//
// The lookup and the insert are separate store calls, so two concurrent
// requests with the same key can both pass the lookup. Only a store built with
// the unique composite index closes that window; its violation is reported as
// the same conflict.
func (r *Registrar) Create(ctx context.Context, booking models.Booking) (Result, error) {
	existing, err := r.Bookings.FindByKey(ctx, booking.Key())
	if err != nil {
		return Result{}, fmt.Errorf("check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return r.reject(booking, newDuplicateError(booking.AppointmentDate)), nil
	}

	if r.ValidateSlots {
		conflict, err := r.checkSlot(ctx, booking)
		if err != nil {
			return Result{}, err
		}
		if conflict != nil {
			return r.reject(booking, conflict), nil
		}
	}

	booking.ID = uuid.New().String()
	booking.CreatedAt = r.now()
	if err := r.Bookings.Create(ctx, &booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return r.reject(booking, newDuplicateError(booking.AppointmentDate)), nil
		}
		return Result{}, fmt.Errorf("persist booking: %w", err)
	}

	r.Logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("treatment", booking.TreatmentName),
		zap.String("date", booking.AppointmentDate),
		zap.String("slot", booking.Slot))
	return Result{Accepted: true, InsertedID: booking.ID}, nil
}

func (r *Registrar) reject(booking models.Booking, conflict *ConflictError) Result {
	r.Logger.Info("booking rejected",
		zap.String("code", conflict.Code),
		zap.String("email", booking.Email),
		zap.String("date", booking.AppointmentDate))
	return Result{Conflict: conflict}
}

func (r *Registrar) checkSlot(ctx context.Context, booking models.Booking) (*ConflictError, error) {
	ref := slotRef{treatment: booking.TreatmentName, date: booking.AppointmentDate, slot: booking.Slot}

	catalog, err := r.Catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var option *models.AppointmentOption
	for i := range catalog {
		if catalog[i].Name == booking.TreatmentName {
			option = &catalog[i]
			break
		}
	}
	if option == nil {
		return newUnknownTreatmentError(booking.TreatmentName), nil
	}
	offered := false
	for _, s := range option.Slots {
		if s == booking.Slot {
			offered = true
			break
		}
	}
	if !offered {
		return newUnknownSlotError(ref), nil
	}

	sameDay, err := r.Bookings.FindByDate(ctx, booking.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("load bookings for %s: %w", booking.AppointmentDate, err)
	}
	for _, b := range sameDay {
		if b.TreatmentName == booking.TreatmentName && b.Slot == booking.Slot {
			return newSlotTakenError(ref), nil
		}
	}
	return nil, nil
}

// ListByEmail returns the bookings owned by email.
func (r *Registrar) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := r.Bookings.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// GetByID returns the booking or nil when absent.
func (r *Registrar) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := r.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}
