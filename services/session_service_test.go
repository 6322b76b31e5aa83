package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"emotale/models"
	"emotale/story"
)

type progressRecorder struct {
	mu             sync.Mutex
	calls          int
	lastScore      int
	sawCompleted   bool
	completedScore int
	err            error
}

func (r *progressRecorder) save(ctx context.Context, patientID, scenarioID, scenarioTitle string, score int, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastScore = score
	if completed {
		r.sawCompleted = true
		r.completedScore = score
	}
	return r.err
}

func (r *progressRecorder) snapshot() (int, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls, r.completedScore, r.sawCompleted
}

func sessionTestScenario() *models.Scenario {
	return &models.Scenario{
		ID:    "session-test",
		Title: "Session Test",
		Story: []models.Segment{
			{
				ID:                         1,
				EmotionRecognitionQuestion: "What is felt?",
				EmotionOptions:             []string{"Anger", "Joy"},
				CorrectEmotion:             "Anger",
			},
			{
				ID:        2,
				Narrative: "The end.",
			},
		},
	}
}

func waitForSave(t *testing.T, r *progressRecorder, minCalls int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		calls, _, _ := r.snapshot()
		if calls >= minCalls {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Expected at least %d progress saves", minCalls)
}

func TestSessionLifecycle(t *testing.T) {
	recorder := &progressRecorder{}
	ss := NewSessionService(recorder.save)

	session, err := ss.StartSession(sessionTestScenario(), "kid@example.com", "patient-1", "Sam")
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	if session.ID == "" {
		t.Error("Expected a session id")
	}

	fetched, err := ss.GetSession(session.ID)
	if err != nil {
		t.Fatalf("Failed to fetch session: %v", err)
	}
	if fetched.ID != session.ID {
		t.Errorf("Expected session %s, got %s", session.ID, fetched.ID)
	}

	ss.EndSession(session.ID)
	if _, err := ss.GetSession(session.ID); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound after end, got %v", err)
	}
}

func TestSessionCompletionSavesProgress(t *testing.T) {
	recorder := &progressRecorder{}
	ss := NewSessionService(recorder.save)

	session, err := ss.StartSession(sessionTestScenario(), "kid@example.com", "patient-1", "Sam")
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	if _, result, err := ss.SelectEmotion(session.ID, "Anger"); err != nil {
		t.Fatalf("Failed to select emotion: %v", err)
	} else if !result.Correct {
		t.Error("Expected a correct answer")
	}

	if _, _, _, err := ss.Advance(session.ID); err != nil {
		t.Fatalf("Failed to advance: %v", err)
	}

	_, finalScore, completed, err := ss.Advance(session.ID)
	if err != nil {
		t.Fatalf("Failed to complete: %v", err)
	}
	if !completed {
		t.Fatal("Expected play-through to complete")
	}
	if finalScore != 100 {
		t.Errorf("Expected final score 100, got %d", finalScore)
	}

	waitForSave(t, recorder, 2) // partial save + final save
	_, completedScore, sawCompleted := recorder.snapshot()
	if !sawCompleted || completedScore != 100 {
		t.Errorf("Expected completed save with score 100, got score=%d completed=%v", completedScore, sawCompleted)
	}

	saved, err := ss.ProgressSaved(session.ID)
	if err != nil {
		t.Fatalf("Failed to read save state: %v", err)
	}
	if !saved {
		t.Error("Expected progress to be marked saved")
	}
}

func TestSessionSaveFailureDoesNotBlockPlay(t *testing.T) {
	recorder := &progressRecorder{err: errors.New("store down")}
	ss := NewSessionService(recorder.save)

	session, _ := ss.StartSession(sessionTestScenario(), "kid@example.com", "patient-1", "Sam")

	ss.SelectEmotion(session.ID, "Joy")
	ss.Advance(session.ID)
	_, finalScore, completed, err := ss.Advance(session.ID)
	if err != nil {
		t.Fatalf("Play must not fail on a save error: %v", err)
	}
	if !completed || finalScore != 0 {
		t.Errorf("Expected completed with score 0, got completed=%v score=%d", completed, finalScore)
	}

	waitForSave(t, recorder, 1)
	saved, saveErr := ss.ProgressSaved(session.ID)
	if saved {
		t.Error("Expected save to be marked failed")
	}
	if saveErr == nil {
		t.Error("Expected the save error to be reported")
	}

	// Restart still works after a failed save.
	if _, err := ss.Restart(session.ID); err != nil {
		t.Errorf("Failed to restart: %v", err)
	}
}

func TestSessionWithoutPatientSkipsSaves(t *testing.T) {
	recorder := &progressRecorder{}
	ss := NewSessionService(recorder.save)

	session, _ := ss.StartSession(sessionTestScenario(), "kid@example.com", "", "")

	ss.SelectEmotion(session.ID, "Anger")
	ss.Advance(session.ID)
	ss.Advance(session.ID)

	time.Sleep(50 * time.Millisecond)
	calls, _, _ := recorder.snapshot()
	if calls != 0 {
		t.Errorf("Expected no progress saves without a patient id, got %d", calls)
	}
}

func TestSessionRestartRejectedMidPlay(t *testing.T) {
	ss := NewSessionService((&progressRecorder{}).save)

	session, _ := ss.StartSession(sessionTestScenario(), "kid@example.com", "patient-1", "Sam")
	if _, err := ss.Restart(session.ID); !errors.Is(err, story.ErrNotComplete) {
		t.Errorf("Expected ErrNotComplete, got %v", err)
	}
}

func TestUnknownSessionOperations(t *testing.T) {
	ss := NewSessionService((&progressRecorder{}).save)

	if _, _, err := ss.SelectEmotion("missing", "Anger"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if _, _, _, err := ss.Advance("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}
