package story

import (
	"testing"

	"emotale/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name string
		seg  models.Segment
		want Mode
	}{
		{
			name: "plain narrative",
			seg:  models.Segment{Narrative: "Just text."},
			want: ModeNarrative,
		},
		{
			name: "recognition",
			seg: models.Segment{
				EmotionRecognitionQuestion: "What do they feel?",
				EmotionOptions:             []string{"Anger", "Joy"},
				CorrectEmotion:             "Anger",
			},
			want: ModeRecognition,
		},
		{
			name: "choice",
			seg: models.Segment{
				Choices: []models.Choice{{Text: "Respond kindly", IsHealthy: true}},
			},
			want: ModeChoice,
		},
		{
			name: "both modes resolves to recognition",
			seg: models.Segment{
				EmotionRecognitionQuestion: "What do they feel?",
				EmotionOptions:             []string{"Anger", "Joy"},
				CorrectEmotion:             "Anger",
				Choices:                    []models.Choice{{Text: "Respond kindly", IsHealthy: true}},
			},
			want: ModeRecognition,
		},
		{
			name: "recognition without options degrades to narrative",
			seg: models.Segment{
				EmotionRecognitionQuestion: "What do they feel?",
				CorrectEmotion:             "Anger",
			},
			want: ModeNarrative,
		},
		{
			name: "recognition without correct label degrades to narrative",
			seg: models.Segment{
				EmotionRecognitionQuestion: "What do they feel?",
				EmotionOptions:             []string{"Anger", "Joy"},
			},
			want: ModeNarrative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.seg))
		})
	}
}

func TestBothModesCountsOneQuestion(t *testing.T) {
	scenario := &models.Scenario{
		ID: "both-modes",
		Story: []models.Segment{
			{
				ID:                         1,
				EmotionRecognitionQuestion: "What do they feel?",
				EmotionOptions:             []string{"Anger", "Joy"},
				CorrectEmotion:             "Anger",
				Choices:                    []models.Choice{{Text: "Respond kindly", IsHealthy: true}},
			},
		},
	}

	play, err := NewPlayThrough(scenario)
	assert.NoError(t, err)

	// Choices are dead on a both-modes segment.
	_, err = play.SelectChoice(0)
	assert.ErrorIs(t, err, ErrWrongMode)

	_, err = play.SelectEmotion("Anger")
	assert.NoError(t, err)

	finalScore, completed, err := play.Advance()
	assert.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 100, finalScore)
	assert.Equal(t, 1, play.TotalQuestions())
}

func TestMalformed(t *testing.T) {
	assert.True(t, Malformed(models.Segment{
		EmotionRecognitionQuestion: "Q",
		EmotionOptions:             []string{"A"},
		CorrectEmotion:             "A",
		Choices:                    []models.Choice{{Text: "C"}},
	}))
	assert.True(t, Malformed(models.Segment{EmotionRecognitionQuestion: "Q"}))
	assert.False(t, Malformed(models.Segment{Narrative: "Text."}))
	assert.False(t, Malformed(models.Segment{Choices: []models.Choice{{Text: "C"}}}))
}
