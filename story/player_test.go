package story

import (
	"testing"

	"emotale/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScenario() *models.Scenario {
	return &models.Scenario{
		ID:    "test-scenario",
		Title: "Test Scenario",
		Story: []models.Segment{
			{
				ID:                         1,
				Narrative:                  "Your friend looks upset.",
				EmotionRecognitionQuestion: "What is your friend feeling?",
				EmotionOptions:             []string{"Sadness", "Joy", "Anger"},
				CorrectEmotion:             "Sadness",
				EmotionExplanation:         "The slumped posture signals sadness.",
			},
			{
				ID:        2,
				Narrative: "You decide how to respond.",
				Choices: []models.Choice{
					{Text: "Ignore them", IsHealthy: false, Feedback: "Ignoring leaves them alone."},
					{Text: "Ask what happened", IsHealthy: true, Feedback: "Checking in shows care."},
				},
			},
			{
				ID:               3,
				Narrative:        "Your friend thanks you.",
				CharacterEmotion: "Relief",
			},
		},
	}
}

func TestNewPlayThroughRejectsEmptyScenario(t *testing.T) {
	_, err := NewPlayThrough(&models.Scenario{ID: "empty"})
	assert.ErrorIs(t, err, ErrEmptyScenario)

	_, err = NewPlayThrough(nil)
	assert.ErrorIs(t, err, ErrEmptyScenario)
}

func TestPerfectPlayThrough(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	result, err := play.SelectEmotion("Sadness")
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, "Sadness", result.CorrectEmotion)
	assert.Equal(t, "The slumped posture signals sadness.", result.Explanation)

	_, completed, err := play.Advance()
	require.NoError(t, err)
	assert.False(t, completed)

	result, err = play.SelectChoice(1)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, "Checking in shows care.", result.Explanation)

	_, completed, err = play.Advance()
	require.NoError(t, err)
	assert.False(t, completed)

	// Closing narrative needs no answer.
	finalScore, completed, err := play.Advance()
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 100, finalScore)

	score, err := play.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestAllWrongPlayThrough(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	result, err := play.SelectEmotion("Joy")
	require.NoError(t, err)
	assert.False(t, result.Correct)

	_, _, err = play.Advance()
	require.NoError(t, err)

	result, err = play.SelectChoice(0)
	require.NoError(t, err)
	assert.False(t, result.Correct)

	_, _, err = play.Advance()
	require.NoError(t, err)

	finalScore, completed, err := play.Advance()
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 0, finalScore)
}

func TestHalfCorrectRoundsUp(t *testing.T) {
	scenario := testScenario()
	// Add a second recognition segment so 2 of 3 answers can be correct.
	scenario.Story = append(scenario.Story, models.Segment{
		ID:                         4,
		Narrative:                  "Another moment.",
		EmotionRecognitionQuestion: "What now?",
		EmotionOptions:             []string{"Fear", "Joy"},
		CorrectEmotion:             "Fear",
	})

	play, err := NewPlayThrough(scenario)
	require.NoError(t, err)

	play.SelectEmotion("Sadness") // correct
	play.Advance()
	play.SelectChoice(0) // wrong
	play.Advance()
	play.Advance() // narrative
	play.SelectEmotion("Fear") // correct

	finalScore, completed, err := play.Advance()
	require.NoError(t, err)
	assert.True(t, completed)
	// 2/3 = 66.67, rounds to 67
	assert.Equal(t, 67, finalScore)
}

func TestNoQuestionScenarioScoresZero(t *testing.T) {
	scenario := &models.Scenario{
		ID: "narrative-only",
		Story: []models.Segment{
			{ID: 1, Narrative: "First."},
			{ID: 2, Narrative: "Second."},
		},
	}

	play, err := NewPlayThrough(scenario)
	require.NoError(t, err)

	_, completed, err := play.Advance()
	require.NoError(t, err)
	assert.False(t, completed)

	finalScore, completed, err := play.Advance()
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 0, finalScore)
}

func TestAdvanceGatedOnUnansweredQuestion(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	_, _, err = play.Advance()
	assert.ErrorIs(t, err, ErrUnanswered)

	_, err = play.SelectEmotion("Sadness")
	require.NoError(t, err)

	_, _, err = play.Advance()
	assert.NoError(t, err)
}

func TestDoubleAnswerRejected(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	_, err = play.SelectEmotion("Sadness")
	require.NoError(t, err)

	_, err = play.SelectEmotion("Joy")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	// The first answer still counts.
	assert.Equal(t, 1, play.CorrectAnswers())
	assert.Equal(t, 1, play.TotalQuestions())
}

func TestWrongModeRejected(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	// First segment is recognition; a choice answer is invalid here.
	_, err = play.SelectChoice(0)
	assert.ErrorIs(t, err, ErrWrongMode)

	play.SelectEmotion("Sadness")
	play.Advance()

	// Second segment is choice; an emotion answer is invalid here.
	_, err = play.SelectEmotion("Sadness")
	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestChoiceIndexBounds(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	play.SelectEmotion("Sadness")
	play.Advance()

	_, err = play.SelectChoice(-1)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)
	_, err = play.SelectChoice(2)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)

	// Out-of-range attempts must not consume the answer.
	_, err = play.SelectChoice(1)
	assert.NoError(t, err)
}

func TestOperationsRejectedAfterCompletion(t *testing.T) {
	play := completedPlayThrough(t)

	_, err := play.SelectEmotion("Sadness")
	assert.ErrorIs(t, err, ErrComplete)
	_, err = play.SelectChoice(0)
	assert.ErrorIs(t, err, ErrComplete)
	_, _, err = play.Advance()
	assert.ErrorIs(t, err, ErrComplete)
}

func TestRestartOnlyFromCompletion(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	assert.ErrorIs(t, play.Restart(), ErrNotComplete)

	play = completedPlayThrough(t)
	require.NoError(t, play.Restart())

	assert.Equal(t, 0, play.CurrentIndex())
	assert.False(t, play.Answered())
	assert.False(t, play.Completed())
	assert.Equal(t, 0, play.CorrectAnswers())
	assert.Equal(t, 0, play.TotalQuestions())

	// A restarted play-through behaves exactly like a fresh one.
	result, err := play.SelectEmotion("Sadness")
	require.NoError(t, err)
	assert.True(t, result.Correct)
}

func TestFinalScoreBeforeCompletion(t *testing.T) {
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)

	_, err = play.FinalScore()
	assert.ErrorIs(t, err, ErrNotComplete)
}

func completedPlayThrough(t *testing.T) *PlayThrough {
	t.Helper()
	play, err := NewPlayThrough(testScenario())
	require.NoError(t, err)
	play.SelectEmotion("Sadness")
	play.Advance()
	play.SelectChoice(1)
	play.Advance()
	_, completed, err := play.Advance()
	require.NoError(t, err)
	require.True(t, completed)
	return play
}
