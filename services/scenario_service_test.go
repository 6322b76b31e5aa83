package services

import (
	"testing"

	"emotale/models"
)

func TestSanitizeStoryRecognitionWins(t *testing.T) {
	scenario := &models.Scenario{
		ID: "gen-1",
		Story: []models.Segment{
			{
				ID:                         1,
				Narrative:                  "Both interactions on one segment.",
				EmotionRecognitionQuestion: "What is felt?",
				EmotionOptions:             []string{"Anger", "Joy"},
				CorrectEmotion:             "Anger",
				Choices:                    []models.Choice{{Text: "respond", IsHealthy: true}},
			},
		},
	}

	if err := sanitizeStory(scenario); err != nil {
		t.Fatalf("sanitizeStory failed: %v", err)
	}

	seg := scenario.Story[0]
	if seg.EmotionRecognitionQuestion == "" {
		t.Error("Recognition question must survive")
	}
	if len(seg.Choices) != 0 {
		t.Error("Choices must be dropped when recognition is present")
	}
}

func TestSanitizeStoryIncompleteRecognitionDegrades(t *testing.T) {
	scenario := &models.Scenario{
		ID: "gen-2",
		Story: []models.Segment{
			{
				ID:                         1,
				Narrative:                  "Question without options.",
				EmotionRecognitionQuestion: "What is felt?",
			},
		},
	}

	if err := sanitizeStory(scenario); err != nil {
		t.Fatalf("sanitizeStory failed: %v", err)
	}

	seg := scenario.Story[0]
	if seg.EmotionRecognitionQuestion != "" || len(seg.EmotionOptions) != 0 || seg.CorrectEmotion != "" {
		t.Error("Incomplete recognition fields must be stripped to narrative")
	}
	if seg.Narrative == "" {
		t.Error("Narrative must survive degradation")
	}
}

func TestSanitizeStoryRejectsEmptyStory(t *testing.T) {
	if err := sanitizeStory(&models.Scenario{ID: "gen-3"}); err == nil {
		t.Error("Expected error for a scenario with no segments")
	}
}

func TestSanitizeStoryKeepsWellFormedSegments(t *testing.T) {
	scenario := &models.Scenario{
		ID: "gen-4",
		Story: []models.Segment{
			{
				ID:                         1,
				EmotionRecognitionQuestion: "What is felt?",
				EmotionOptions:             []string{"Anger", "Joy"},
				CorrectEmotion:             "Anger",
			},
			{
				ID:      2,
				Choices: []models.Choice{{Text: "respond", IsHealthy: true}},
			},
			{ID: 3, Narrative: "The end."},
		},
	}

	if err := sanitizeStory(scenario); err != nil {
		t.Fatalf("sanitizeStory failed: %v", err)
	}
	if scenario.Story[0].EmotionRecognitionQuestion == "" ||
		len(scenario.Story[1].Choices) != 1 ||
		scenario.Story[2].Narrative == "" {
		t.Error("Well-formed segments must pass through unchanged")
	}
}
