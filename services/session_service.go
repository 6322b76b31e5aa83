package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"emotale/models"
	"emotale/story"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// sessionTTL is how long an idle play-through is kept before the janitor
// discards it.
const sessionTTL = 2 * time.Hour

// SaveProgressFunc is the progress-store write the session service calls off
// the request path.
type SaveProgressFunc func(ctx context.Context, patientID, scenarioID, scenarioTitle string, score int, completed bool) error

// Session is one user's live play-through plus its bookkeeping.
type Session struct {
	ID          string
	UserEmail   string
	PatientID   string
	PatientName string
	Play        *story.PlayThrough
	LastActive  time.Time

	// progressSaved mirrors the outcome of the latest best-effort write.
	// It only informs the UI; a failed save never blocks the player.
	progressSaved bool
	saveErr       error
}

// SessionService owns the in-memory play-through registry. Each session
// belongs to one interactive caller; the registry mutex only guards the map
// and per-session bookkeeping, turn-by-turn operations are serialized per
// session by the single-user access pattern.
type SessionService struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
	save     SaveProgressFunc
}

var (
	sessionService *SessionService
	sessionOnce    sync.Once
)

// GetSessionService returns the singleton session service.
func GetSessionService() *SessionService {
	sessionOnce.Do(func() {
		sessionService = NewSessionService(SaveProgress)
		go sessionService.cleanupExpiredSessions()
	})
	return sessionService
}

// NewSessionService builds a session service with the given progress writer.
func NewSessionService(save SaveProgressFunc) *SessionService {
	return &SessionService{
		sessions: make(map[string]*Session),
		save:     save,
	}
}

// StartSession creates a play-through of the scenario and registers it.
func (ss *SessionService) StartSession(scenario *models.Scenario, userEmail, patientID, patientName string) (*Session, error) {
	play, err := story.NewPlayThrough(scenario)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:          uuid.NewString(),
		UserEmail:   userEmail,
		PatientID:   patientID,
		PatientName: patientName,
		Play:        play,
		LastActive:  time.Now(),
	}

	ss.mutex.Lock()
	ss.sessions[session.ID] = session
	ss.mutex.Unlock()
	return session, nil
}

// GetSession looks up a live session by id.
func (ss *SessionService) GetSession(id string) (*Session, error) {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	session, exists := ss.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// EndSession discards an abandoned or finished session.
func (ss *SessionService) EndSession(id string) {
	ss.mutex.Lock()
	delete(ss.sessions, id)
	ss.mutex.Unlock()
}

// SelectEmotion answers the current recognition segment and kicks off a
// best-effort partial progress save.
func (ss *SessionService) SelectEmotion(id, label string) (*Session, story.AnswerResult, error) {
	session, err := ss.GetSession(id)
	if err != nil {
		return nil, story.AnswerResult{}, err
	}

	result, err := session.Play.SelectEmotion(label)
	if err != nil {
		return nil, story.AnswerResult{}, err
	}
	ss.touch(session)
	ss.savePartialProgress(session)
	return session, result, nil
}

// SelectChoice answers the current choice segment and kicks off a
// best-effort partial progress save.
func (ss *SessionService) SelectChoice(id string, choiceIndex int) (*Session, story.AnswerResult, error) {
	session, err := ss.GetSession(id)
	if err != nil {
		return nil, story.AnswerResult{}, err
	}

	result, err := session.Play.SelectChoice(choiceIndex)
	if err != nil {
		return nil, story.AnswerResult{}, err
	}
	ss.touch(session)
	ss.savePartialProgress(session)
	return session, result, nil
}

// Advance moves the play-through forward. Completion triggers the final
// progress save; the state transition itself never waits on it.
func (ss *SessionService) Advance(id string) (*Session, int, bool, error) {
	session, err := ss.GetSession(id)
	if err != nil {
		return nil, 0, false, err
	}

	finalScore, completed, err := session.Play.Advance()
	if err != nil {
		return nil, 0, false, err
	}
	ss.touch(session)
	if completed {
		ss.saveProgressAsync(session, finalScore, true)
	}
	return session, finalScore, completed, nil
}

// Restart resets a completed play-through for another attempt.
func (ss *SessionService) Restart(id string) (*Session, error) {
	session, err := ss.GetSession(id)
	if err != nil {
		return nil, err
	}
	if err := session.Play.Restart(); err != nil {
		return nil, err
	}
	ss.touch(session)
	return session, nil
}

// ProgressSaved reports the outcome of the session's latest progress write.
func (ss *SessionService) ProgressSaved(id string) (bool, error) {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	session, exists := ss.sessions[id]
	if !exists {
		return false, ErrSessionNotFound
	}
	return session.progressSaved, session.saveErr
}

func (ss *SessionService) touch(session *Session) {
	ss.mutex.Lock()
	session.LastActive = time.Now()
	ss.mutex.Unlock()
}

// savePartialProgress writes the running accuracy without marking the
// scenario completed. Skipped for question-less positions.
func (ss *SessionService) savePartialProgress(session *Session) {
	if session.PatientID == "" || session.Play.TotalQuestions() == 0 {
		return
	}
	ss.saveProgressAsync(session, session.Play.Accuracy(), false)
}

// saveProgressAsync runs the progress write off the request path. The player
// stays fully usable when the store is down; score loss is the only
// consequence of a failed write.
func (ss *SessionService) saveProgressAsync(session *Session, score int, completed bool) {
	if session.PatientID == "" {
		return
	}
	scenario := session.Play.Scenario()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := ss.save(ctx, session.PatientID, scenario.ID, scenario.Title, score, completed)

		ss.mutex.Lock()
		session.progressSaved = err == nil
		session.saveErr = err
		ss.mutex.Unlock()
	}()
}

// cleanupExpiredSessions periodically drops idle play-throughs.
func (ss *SessionService) cleanupExpiredSessions() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-sessionTTL)

		ss.mutex.Lock()
		for id, session := range ss.sessions {
			if session.LastActive.Before(cutoff) {
				delete(ss.sessions, id)
			}
		}
		ss.mutex.Unlock()
	}
}
