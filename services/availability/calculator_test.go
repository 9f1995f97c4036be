package availability_test

import (
	"context"
	"errors"
	"testing"

	"doctorportal/database/repository/memory"
	"doctorportal/models"
	"doctorportal/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []models.AppointmentOption {
	return []models.AppointmentOption{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}, Price: 40},
		{Name: "Surgery", Slots: []string{"9am", "11am", "1pm"}, Price: 150},
	}
}

func TestForDateNoBookingsReturnsFullCatalog(t *testing.T) {
	calc := availability.NewCalculator(memory.NewCatalogStore(catalog()...), memory.NewBookingStore(false))

	got, err := calc.ForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"9am", "10am"}, got[0].Slots)
	assert.Equal(t, []string{"9am", "11am", "1pm"}, got[1].Slots)
}

func TestForDateRemovesBookedSlots(t *testing.T) {
	bookings := memory.NewBookingStore(false,
		models.Booking{ID: "b1", TreatmentName: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am", Email: "a@x.com"},
		models.Booking{ID: "b2", TreatmentName: "Surgery", AppointmentDate: "2024-01-01", Slot: "11am", Email: "b@x.com"},
		models.Booking{ID: "b3", TreatmentName: "Surgery", AppointmentDate: "2024-01-02", Slot: "1pm", Email: "b@x.com"},
	)
	calc := availability.NewCalculator(memory.NewCatalogStore(catalog()...), bookings)

	got, err := calc.ForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", got[0].Name)
	assert.Equal(t, []string{"10am"}, got[0].Slots)
	assert.Equal(t, []string{"9am", "1pm"}, got[1].Slots)

	other, err := calc.ForDate(context.Background(), "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am"}, other[0].Slots)
}

func TestForDateIsIdempotentAndDoesNotMutateCatalog(t *testing.T) {
	store := memory.NewCatalogStore(catalog()...)
	bookings := memory.NewBookingStore(false,
		models.Booking{ID: "b1", TreatmentName: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am", Email: "a@x.com"},
	)
	calc := availability.NewCalculator(store, bookings)

	first, err := calc.ForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	first[0].Slots[0] = "mutated"

	second, err := calc.ForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10am"}, second[0].Slots)

	persisted, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am"}, persisted[0].Slots)
}

func TestForDateEmptyCatalog(t *testing.T) {
	calc := availability.NewCalculator(memory.NewCatalogStore(), memory.NewBookingStore(false))

	got, err := calc.ForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestForDateFullyBooked(t *testing.T) {
	bookings := memory.NewBookingStore(false,
		models.Booking{ID: "b1", TreatmentName: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am", Email: "a@x.com"},
		models.Booking{ID: "b2", TreatmentName: "Cleaning", AppointmentDate: "2024-01-01", Slot: "10am", Email: "b@x.com"},
	)
	calc := availability.NewCalculator(memory.NewCatalogStore(catalog()...), bookings)

	got, err := calc.ForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.NotNil(t, got[0].Slots)
	assert.Empty(t, got[0].Slots)
}

type failingBookings struct{}

func (failingBookings) FindByDate(context.Context, string) ([]models.Booking, error) {
	return nil, errors.New("connection refused")
}

func TestForDatePropagatesStoreErrors(t *testing.T) {
	calc := availability.NewCalculator(memory.NewCatalogStore(catalog()...), failingBookings{})

	_, err := calc.ForDate(context.Background(), "2024-01-01")
	assert.ErrorContains(t, err, "connection refused")
}

func TestSpecialties(t *testing.T) {
	calc := availability.NewCalculator(memory.NewCatalogStore(catalog()...), memory.NewBookingStore(false))

	got, err := calc.Specialties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Specialty{{Name: "Cleaning"}, {Name: "Surgery"}}, got)
}

func TestRemainingPreservesOrder(t *testing.T) {
	taken := map[string]struct{}{"b": {}, "d": {}}
	assert.Equal(t, []string{"a", "c", "e"}, availability.Remaining([]string{"a", "b", "c", "d", "e"}, taken))
	assert.Equal(t, []string{"a"}, availability.Remaining([]string{"a"}, nil))
}
