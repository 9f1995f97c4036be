package memory_test

import (
	"context"
	"testing"

	"doctorportal/database/repository"
	"doctorportal/database/repository/memory"
	"doctorportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRoleUpsertsUnknownID(t *testing.T) {
	s := memory.NewUserStore()

	res, err := s.SetRole(context.Background(), "ghost", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
	assert.Equal(t, int64(1), res.UpsertedCount)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ghost", all[0].ID)
}

func TestBookingStoreUniqueKey(t *testing.T) {
	b := models.Booking{ID: "1", TreatmentName: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am", Email: "a@x.com"}

	loose := memory.NewBookingStore(false)
	require.NoError(t, loose.Create(context.Background(), &b))
	assert.NoError(t, loose.Create(context.Background(), &b))

	strict := memory.NewBookingStore(true)
	require.NoError(t, strict.Create(context.Background(), &b))
	assert.ErrorIs(t, strict.Create(context.Background(), &b), repository.ErrDuplicate)
}

func TestCatalogStoreRejectsDuplicateNames(t *testing.T) {
	s := memory.NewCatalogStore(models.AppointmentOption{Name: "Cleaning", Slots: []string{"9am"}})

	err := s.InsertMany(context.Background(), []models.AppointmentOption{{Name: "Cleaning"}})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].ID.IsZero())
}

func TestDoctorStoreDelete(t *testing.T) {
	s := memory.NewDoctorStore(models.Doctor{ID: "d1", Name: "Dr. A", Specialty: "Cleaning"})

	n, err := s.Delete(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Delete(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
