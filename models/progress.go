package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScenarioProgress is the durable per-patient, per-scenario record. Writes
// merge rather than overwrite: score keeps the best attempt, completed is
// sticky, attempts accumulate.
type ScenarioProgress struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID     string             `bson:"patientId" json:"patientId"`
	ScenarioID    string             `bson:"scenarioId" json:"scenarioId"`
	ScenarioTitle string             `bson:"scenarioTitle" json:"scenarioTitle"`
	Score         int                `bson:"score" json:"score"`
	Completed     bool               `bson:"completed" json:"completed"`
	Attempts      int                `bson:"attempts" json:"attempts"`
	LastAttempted time.Time          `bson:"lastAttempted" json:"lastAttempted"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProgressSummary aggregates a patient's progress for the therapist view.
type ProgressSummary struct {
	PatientID          string    `json:"patientId"`
	CompletedScenarios int       `json:"completedScenarios"`
	TotalScenarios     int       `json:"totalScenarios"`
	AverageScore       int       `json:"averageScore"`
	LastActive         time.Time `json:"lastActive"`
}
