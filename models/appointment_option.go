package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment offered by the clinic together with its daily slots.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

// Clone returns a copy whose slot list does not share storage with o.
func (o AppointmentOption) Clone() AppointmentOption {
	c := o
	c.Slots = append(make([]string, 0, len(o.Slots)), o.Slots...)
	return c
}

// Specialty is the projection served by the specialty listing.
type Specialty struct {
	Name string `bson:"name" json:"name"`
}
