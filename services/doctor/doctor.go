package doctor

import (
	"context"
	"fmt"
	"time"

	doctorRepo "doctorportal/database/repository/doctor"
	"doctorportal/models"

	"github.com/google/uuid"
)

type DoctorService interface {
	Add(ctx context.Context, d models.Doctor) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Add(ctx context.Context, d models.Doctor) (models.InsertResult, error) {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, &d); err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to add doctor: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor: %w", err)
	}
	return n, nil
}
