// Package memory provides map-backed repositories with the same semantics as
// the MongoDB ones. They are used by tests and by STORE=memory.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"doctorportal/database/repository"
	appointmentRepo "doctorportal/database/repository/appointment"
	bookingRepo "doctorportal/database/repository/booking"
	doctorRepo "doctorportal/database/repository/doctor"
	userRepo "doctorportal/database/repository/user"
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ userRepo.UserRepository          = (*UserStore)(nil)
	_ appointmentRepo.OptionRepository = (*CatalogStore)(nil)
	_ bookingRepo.BookingRepository    = (*BookingStore)(nil)
	_ doctorRepo.DoctorRepository      = (*DoctorStore)(nil)
)

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserStore(users ...models.User) *UserStore {
	return &UserStore{users: append([]models.User(nil), users...)}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *UserStore) GetAll(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User{}, s.users...), nil
}

func (s *UserStore) Upsert(_ context.Context, user *models.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.users {
		if s.users[i].Email == user.Email {
			s.users[i].UpdatedAt = now
			return false, nil
		}
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, *user)
	return true, nil
}

func (s *UserStore) SetRole(_ context.Context, id, role string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range s.users {
		if s.users[i].ID == id {
			res.MatchedCount = 1
			if s.users[i].Role != role {
				s.users[i].Role = role
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	s.users = append(s.users, models.User{ID: id, Role: role})
	res.UpsertedCount = 1
	return res, nil
}

// CatalogStore is an in-memory OptionRepository.
type CatalogStore struct {
	mu   sync.RWMutex
	opts []models.AppointmentOption
}

func NewCatalogStore(opts ...models.AppointmentOption) *CatalogStore {
	s := &CatalogStore{}
	_ = s.InsertMany(context.Background(), opts)
	return s
}

func (s *CatalogStore) GetAll(_ context.Context) ([]models.AppointmentOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AppointmentOption, len(s.opts))
	for i, o := range s.opts {
		out[i] = o.Clone()
	}
	return out, nil
}

func (s *CatalogStore) GetSpecialties(_ context.Context) ([]models.Specialty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Specialty, 0, len(s.opts))
	for _, o := range s.opts {
		out = append(out, models.Specialty{Name: o.Name})
	}
	return out, nil
}

func (s *CatalogStore) InsertMany(_ context.Context, opts []models.AppointmentOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range opts {
		for _, existing := range s.opts {
			if existing.Name == o.Name {
				return fmt.Errorf("appointment option %q: %w", o.Name, repository.ErrDuplicate)
			}
		}
		c := o.Clone()
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		s.opts = append(s.opts, c)
	}
	return nil
}

// BookingStore is an in-memory BookingRepository. With Unique set it enforces
// the composite key the way the unique Mongo index does.
type BookingStore struct {
	Unique bool

	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingStore(unique bool, bookings ...models.Booking) *BookingStore {
	return &BookingStore{Unique: unique, bookings: append([]models.Booking(nil), bookings...)}
}

func (s *BookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Unique {
		for _, b := range s.bookings {
			if b.Key() == booking.Key() {
				return fmt.Errorf("failed to insert booking: %w", repository.ErrDuplicate)
			}
		}
	}
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *BookingStore) filter(keep func(models.Booking) bool) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingStore) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	return s.filter(func(b models.Booking) bool { return b.AppointmentDate == date }), nil
}

func (s *BookingStore) FindByKey(_ context.Context, key models.BookingKey) ([]models.Booking, error) {
	return s.filter(func(b models.Booking) bool { return b.Key() == key }), nil
}

func (s *BookingStore) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	return s.filter(func(b models.Booking) bool { return b.Email == email }), nil
}

func (s *BookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	found := s.filter(func(b models.Booking) bool { return b.ID == id })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// Len reports how many bookings are stored.
func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// DoctorStore is an in-memory DoctorRepository.
type DoctorStore struct {
	mu      sync.RWMutex
	doctors []models.Doctor
}

func NewDoctorStore(doctors ...models.Doctor) *DoctorStore {
	return &DoctorStore{doctors: append([]models.Doctor(nil), doctors...)}
}

func (s *DoctorStore) Create(_ context.Context, doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append(s.doctors, *doctor)
	return nil
}

func (s *DoctorStore) GetAll(_ context.Context) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Doctor{}, s.doctors...), nil
}

func (s *DoctorStore) Delete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.doctors {
		if d.ID == id {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
