package appointmentRepo

import (
	"context"

	"doctorportal/models"
)

// OptionRepository gives access to the treatment catalog.
type OptionRepository interface {
	// GetAll returns the full catalog in storage order.
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	// GetSpecialties returns only the treatment names.
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
	// InsertMany adds catalog entries.
	InsertMany(ctx context.Context, opts []models.AppointmentOption) error
}
