package doctorRepo

import (
	"context"

	"doctorportal/models"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Delete removes the doctor and returns the number of deleted records.
	Delete(ctx context.Context, id string) (int64, error)
}
