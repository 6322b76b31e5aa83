package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient statuses
const (
	PatientStatusActive   = "active"
	PatientStatusArchived = "archived"
)

// Patient is a therapist-owned record for a person practicing scenarios.
type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TherapistID primitive.ObjectID `bson:"therapistId" json:"therapistId"`
	Name        string             `bson:"name" json:"name"`
	Age         int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender      string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
