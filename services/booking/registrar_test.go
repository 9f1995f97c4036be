package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"doctorportal/database/repository/memory"
	"doctorportal/models"
	"doctorportal/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func cleaning() *memory.CatalogStore {
	return memory.NewCatalogStore(models.AppointmentOption{Name: "Cleaning", Slots: []string{"9am", "10am"}})
}

func req(email, slot string) models.Booking {
	return models.Booking{
		TreatmentName:   "Cleaning",
		AppointmentDate: "2024-01-01",
		Slot:            slot,
		Email:           email,
	}
}

func TestCreateAcceptsFirstBooking(t *testing.T) {
	store := memory.NewBookingStore(false)
	r := booking.NewRegistrar(store, cleaning(), true, zap.NewNop())

	res, err := r.Create(context.Background(), req("a@x.com", "9am"))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.NotEmpty(t, res.InsertedID)

	saved, err := r.GetByID(context.Background(), res.InsertedID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "9am", saved.Slot)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestCreateRejectsDuplicateKey(t *testing.T) {
	store := memory.NewBookingStore(false)
	r := booking.NewRegistrar(store, cleaning(), false, zap.NewNop())

	first, err := r.Create(context.Background(), req("a@x.com", "9am"))
	require.NoError(t, err)
	require.True(t, first.Accepted)

	second, err := r.Create(context.Background(), req("a@x.com", "10am"))
	require.NoError(t, err)
	assert.False(t, second.Accepted)
	require.NotNil(t, second.Conflict)
	assert.Equal(t, "You already have a booking on 2024-01-01", second.Conflict.Message)
	assert.Equal(t, 1, store.Len())
}

func TestCreateAllowsOtherKeys(t *testing.T) {
	store := memory.NewBookingStore(false)
	r := booking.NewRegistrar(store, cleaning(), false, zap.NewNop())

	_, err := r.Create(context.Background(), req("a@x.com", "9am"))
	require.NoError(t, err)

	otherDay := req("a@x.com", "9am")
	otherDay.AppointmentDate = "2024-01-02"
	res, err := r.Create(context.Background(), otherDay)
	require.NoError(t, err)
	assert.True(t, res.Accepted)

	otherUser, err := r.Create(context.Background(), req("b@x.com", "10am"))
	require.NoError(t, err)
	assert.True(t, otherUser.Accepted)
	assert.Equal(t, 3, store.Len())
}

func TestCreateValidatesSlots(t *testing.T) {
	store := memory.NewBookingStore(false)
	r := booking.NewRegistrar(store, cleaning(), true, zap.NewNop())

	_, err := r.Create(context.Background(), req("a@x.com", "9am"))
	require.NoError(t, err)

	unknownTreatment := req("c@x.com", "9am")
	unknownTreatment.TreatmentName = "Whitening"

	tests := []struct {
		name    string
		booking models.Booking
		code    string
	}{
		{"slot taken by someone else", req("b@x.com", "9am"), "slotTaken"},
		{"slot not offered", req("b@x.com", "7pm"), "unknownSlot"},
		{"unknown treatment", unknownTreatment, "unknownTreatment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Create(context.Background(), tt.booking)
			require.NoError(t, err)
			assert.False(t, res.Accepted)
			require.NotNil(t, res.Conflict)
			assert.Equal(t, tt.code, res.Conflict.Code)
		})
	}
	assert.Equal(t, 1, store.Len())
}

func TestCreateWithoutValidationAllowsSharedSlot(t *testing.T) {
	store := memory.NewBookingStore(false)
	r := booking.NewRegistrar(store, nil, true, zap.NewNop())

	_, err := r.Create(context.Background(), req("a@x.com", "9am"))
	require.NoError(t, err)
	res, err := r.Create(context.Background(), req("b@x.com", "9am"))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
}

// gatedStore holds every FindByKey until all callers have passed the check,
// reproducing the check-then-insert window deterministically.
type gatedStore struct {
	*memory.BookingStore
	gate *sync.WaitGroup
}

func (g gatedStore) FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error) {
	found, err := g.BookingStore.FindByKey(ctx, key)
	g.gate.Done()
	g.gate.Wait()
	return found, err
}

func raceCreate(t *testing.T, unique bool) (*memory.BookingStore, []booking.Result) {
	t.Helper()
	const n = 2
	gate := &sync.WaitGroup{}
	gate.Add(n)
	store := memory.NewBookingStore(unique)
	r := booking.NewRegistrar(gatedStore{BookingStore: store, gate: gate}, nil, false, zap.NewNop())

	results := make([]booking.Result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := r.Create(context.Background(), req("a@x.com", "9am"))
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()
	return store, results
}

func TestConcurrentDuplicatesRaceWithAdvisoryCheck(t *testing.T) {
	store, results := raceCreate(t, false)

	assert.True(t, results[0].Accepted)
	assert.True(t, results[1].Accepted)
	assert.Equal(t, 2, store.Len())
}

func TestConcurrentDuplicatesBlockedByUniqueIndex(t *testing.T) {
	store, results := raceCreate(t, true)

	accepted := 0
	for _, res := range results {
		if res.Accepted {
			accepted++
		} else {
			assert.Equal(t, "duplicateBooking", res.Conflict.Code)
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, store.Len())
}

type brokenStore struct {
	*memory.BookingStore
}

func (brokenStore) FindByKey(context.Context, models.BookingKey) ([]models.Booking, error) {
	return nil, errors.New("server selection timeout")
}

func TestCreateSurfacesStoreFaults(t *testing.T) {
	r := booking.NewRegistrar(brokenStore{memory.NewBookingStore(false)}, nil, false, zap.NewNop())

	_, err := r.Create(context.Background(), req("a@x.com", "9am"))
	assert.ErrorContains(t, err, "server selection timeout")
}

func TestListByEmail(t *testing.T) {
	store := memory.NewBookingStore(false)
	r := booking.NewRegistrar(store, nil, false, zap.NewNop())
	_, err := r.Create(context.Background(), req("a@x.com", "9am"))
	require.NoError(t, err)
	_, err = r.Create(context.Background(), req("b@x.com", "10am"))
	require.NoError(t, err)

	mine, err := r.ListByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].Email)

	missing, err := r.GetByID(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
