package models

import "time"

// Doctor is an admin-managed catalog entry.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Specialty string    `bson:"specialty" json:"specialty" binding:"required"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
