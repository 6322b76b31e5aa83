package story

import (
	"errors"
	"math"

	"emotale/models"
)

var (
	ErrEmptyScenario    = errors.New("scenario has no segments")
	ErrAlreadyAnswered  = errors.New("segment already answered")
	ErrWrongMode        = errors.New("answer does not match segment interaction mode")
	ErrUnanswered       = errors.New("current segment requires an answer before advancing")
	ErrComplete         = errors.New("play-through is complete")
	ErrNotComplete      = errors.New("play-through is not complete")
	ErrChoiceOutOfRange = errors.New("choice index out of range")
)

// AnswerResult reports the outcome of answering the current segment.
type AnswerResult struct {
	Correct     bool
	Explanation string // recognition: why the label fits; choice: per-choice feedback
	CorrectEmotion string // set for recognition answers so the UI can reveal the label
}

// PlayThrough is one user's traversal of a scenario. It is ephemeral: only
// the derived score outlives it. Not safe for concurrent use; each
// play-through belongs to a single interactive session.
type PlayThrough struct {
	scenario *models.Scenario

	current        int
	answered       bool
	correctAnswers int
	totalQuestions int
	complete       bool
}

// NewPlayThrough starts a play-through at the scenario's first segment.
func NewPlayThrough(scenario *models.Scenario) (*PlayThrough, error) {
	if scenario == nil || len(scenario.Story) == 0 {
		return nil, ErrEmptyScenario
	}
	return &PlayThrough{scenario: scenario}, nil
}

// Scenario returns the scenario being played.
func (p *PlayThrough) Scenario() *models.Scenario { return p.scenario }

// CurrentIndex returns the zero-based index of the current segment.
func (p *PlayThrough) CurrentIndex() int { return p.current }

// CurrentSegment returns the segment the play-through is positioned on.
func (p *PlayThrough) CurrentSegment() models.Segment {
	return p.scenario.Story[p.current]
}

// Answered reports whether the current segment has been answered.
func (p *PlayThrough) Answered() bool { return p.answered }

// Completed reports whether the play-through reached the terminal state.
func (p *PlayThrough) Completed() bool { return p.complete }

// CorrectAnswers returns the running count of correct answers.
func (p *PlayThrough) CorrectAnswers() int { return p.correctAnswers }

// TotalQuestions returns the running count of answered questions.
func (p *PlayThrough) TotalQuestions() int { return p.totalQuestions }

// Accuracy returns the running accuracy percentage, half-up rounded. A
// play-through with no answered questions reports 0, matching the scoring
// rule applied at completion.
func (p *PlayThrough) Accuracy() int {
	if p.totalQuestions == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.correctAnswers) / float64(p.totalQuestions)))
}

// SelectEmotion answers the current recognition segment with an emotion
// label. It counts the answer and reports correctness plus the explanation.
func (p *PlayThrough) SelectEmotion(label string) (AnswerResult, error) {
	if p.complete {
		return AnswerResult{}, ErrComplete
	}
	seg := p.CurrentSegment()
	if ResolveMode(seg) != ModeRecognition {
		return AnswerResult{}, ErrWrongMode
	}
	if p.answered {
		return AnswerResult{}, ErrAlreadyAnswered
	}

	p.answered = true
	p.totalQuestions++
	correct := label == seg.CorrectEmotion
	if correct {
		p.correctAnswers++
	}
	return AnswerResult{
		Correct:        correct,
		Explanation:    seg.EmotionExplanation,
		CorrectEmotion: seg.CorrectEmotion,
	}, nil
}

// SelectChoice answers the current choice segment with the index of one of
// its response options. Healthy choices score as correct.
func (p *PlayThrough) SelectChoice(index int) (AnswerResult, error) {
	if p.complete {
		return AnswerResult{}, ErrComplete
	}
	seg := p.CurrentSegment()
	if ResolveMode(seg) != ModeChoice {
		return AnswerResult{}, ErrWrongMode
	}
	if p.answered {
		return AnswerResult{}, ErrAlreadyAnswered
	}
	if index < 0 || index >= len(seg.Choices) {
		return AnswerResult{}, ErrChoiceOutOfRange
	}

	p.answered = true
	p.totalQuestions++
	choice := seg.Choices[index]
	if choice.IsHealthy {
		p.correctAnswers++
	}
	return AnswerResult{Correct: choice.IsHealthy, Explanation: choice.Feedback}, nil
}

// Advance moves to the next segment, or to the terminal state when the
// current segment is the last one. It is rejected while the current
// segment's question is unanswered. Advancing past the last segment returns
// the final score.
func (p *PlayThrough) Advance() (finalScore int, completed bool, err error) {
	if p.complete {
		return 0, false, ErrComplete
	}
	if ResolveMode(p.CurrentSegment()) != ModeNarrative && !p.answered {
		return 0, false, ErrUnanswered
	}

	if p.current < len(p.scenario.Story)-1 {
		p.current++
		p.answered = false
		return 0, false, nil
	}

	p.complete = true
	return p.Accuracy(), true, nil
}

// FinalScore returns the completion score. Valid only after Advance has
// reached the terminal state.
func (p *PlayThrough) FinalScore() (int, error) {
	if !p.complete {
		return 0, ErrNotComplete
	}
	return p.Accuracy(), nil
}

// Restart resets the play-through to the first segment with zeroed counters.
// Valid only from the terminal state; an in-flight play-through is abandoned
// by discarding it.
func (p *PlayThrough) Restart() error {
	if !p.complete {
		return ErrNotComplete
	}
	p.current = 0
	p.answered = false
	p.correctAnswers = 0
	p.totalQuestions = 0
	p.complete = false
	return nil
}
