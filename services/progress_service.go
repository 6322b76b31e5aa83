package services

import (
	"context"
	"log"
	"time"

	"emotale/db"
	"emotale/models"
)

// SaveProgress merges one attempt into the durable progress store. The write
// is best-effort from the player's perspective; callers run it off the
// request path and only report failure, never block on it.
func SaveProgress(ctx context.Context, patientID, scenarioID, scenarioTitle string, score int, completed bool) error {
	if patientID == "" {
		// Anonymous practice: nothing durable to write.
		return nil
	}
	if err := db.UpsertProgress(ctx, patientID, scenarioID, scenarioTitle, score, completed); err != nil {
		log.Printf("Error saving progress for patient %s scenario %s: %v", patientID, scenarioID, err)
		return err
	}
	return nil
}

// ListProgress returns a patient's progress records, most recent first.
func ListProgress(ctx context.Context, patientID string) ([]models.ScenarioProgress, error) {
	return db.ListProgressByPatient(ctx, patientID)
}

// SummarizeProgress aggregates a patient's records for the therapist view.
func SummarizeProgress(ctx context.Context, patientID string, fallbackActive time.Time) (*models.ProgressSummary, error) {
	records, err := db.ListProgressByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	total, err := db.CountScenarios(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.ProgressSummary{
		PatientID:      patientID,
		TotalScenarios: int(total),
		LastActive:     fallbackActive,
	}

	scoreSum := 0
	for _, r := range records {
		if r.Completed {
			summary.CompletedScenarios++
		}
		scoreSum += r.Score
		if r.LastAttempted.After(summary.LastActive) {
			summary.LastActive = r.LastAttempted
		}
	}
	if len(records) > 0 {
		summary.AverageScore = scoreSum / len(records)
	}
	return summary, nil
}
