package models

import "time"

// Booking is a reserved slot of a treatment on a calendar date.
// Bookings are immutable once created.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	TreatmentName   string    `bson:"treatmentName" json:"treatmentName" binding:"required"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate" binding:"required"`
	Slot            string    `bson:"slot" json:"slot" binding:"required"`
	Email           string    `bson:"email" json:"email" binding:"required,email"`
	Patient         string    `bson:"patient,omitempty" json:"patient,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// BookingKey identifies the one booking a user may hold for a treatment on a date.
type BookingKey struct {
	AppointmentDate string
	TreatmentName   string
	Email           string
}

// Key returns the duplicate-detection key of the booking.
func (b *Booking) Key() BookingKey {
	return BookingKey{
		AppointmentDate: b.AppointmentDate,
		TreatmentName:   b.TreatmentName,
		Email:           b.Email,
	}
}
