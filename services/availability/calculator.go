// Package availability projects the treatment catalog onto the bookings of a
// single date.
package availability

import (
	"context"
	"fmt"

	"doctorportal/models"
)

// CatalogReader loads the treatment catalog.
type CatalogReader interface {
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
}

// BookingReader loads the bookings of a date.
type BookingReader interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// Calculator computes the remaining slots of every treatment on a date.
type Calculator struct {
	Catalog  CatalogReader
	Bookings BookingReader
}

// NewCalculator returns a Calculator over the given stores.
func NewCalculator(catalog CatalogReader, bookings BookingReader) *Calculator {
	return &Calculator{Catalog: catalog, Bookings: bookings}
}

// ForDate returns the catalog with each option's slots reduced to the ones not
// booked on date. The returned options are copies.
func (c *Calculator) ForDate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	catalog, err := c.Catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	booked, err := c.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load bookings for %s: %w", date, err)
	}

	taken := BookedSlots(booked)
	result := make([]models.AppointmentOption, 0, len(catalog))
	for _, option := range catalog {
		projected := option.Clone()
		projected.Slots = Remaining(option.Slots, taken[option.Name])
		result = append(result, projected)
	}
	return result, nil
}

// Specialties lists catalog names only.
func (c *Calculator) Specialties(ctx context.Context) ([]models.Specialty, error) {
	specialties, err := c.Catalog.GetSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("load specialties: %w", err)
	}
	return specialties, nil
}

// BookedSlots groups the slot labels of bookings by treatment name.
func BookedSlots(bookings []models.Booking) map[string]map[string]struct{} {
	taken := make(map[string]map[string]struct{})
	for _, b := range bookings {
		set, ok := taken[b.TreatmentName]
		if !ok {
			set = make(map[string]struct{})
			taken[b.TreatmentName] = set
		}
		set[b.Slot] = struct{}{}
	}
	return taken
}

// Remaining returns slots minus taken, preserving the order of slots.
func Remaining(slots []string, taken map[string]struct{}) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
