package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"emotale/db"
	"emotale/models"
	"emotale/story"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrScenarioNotFound is returned when a requested scenario id has no
// catalog entry. Recoverable: callers show "not found" and navigate back.
var ErrScenarioNotFound = errors.New("scenario not found")

// ListScenarios returns the catalog in creation order.
func ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	return db.ListScenarios(ctx)
}

// GetScenario fetches one scenario, translating a missing document into
// ErrScenarioNotFound.
func GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	scenario, err := db.GetScenario(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}
	return scenario, nil
}

// GenerateScenario asks Gemini to author a new practice scenario around the
// given theme and stores it in the catalog. Generated content is validated
// at the boundary: segments that violate the one-interaction-mode shape are
// degraded to narrative-only and logged, and a scenario with no usable
// segments is rejected.
func GenerateScenario(ctx context.Context, theme, difficulty string) (*models.Scenario, error) {
	prompt := fmt.Sprintf(
		`Act as a child therapist and author a short branching practice story about "%s" for emotional-skills training, difficulty "%s".
The story must have 3 to 5 segments. Each segment has a "narrative" and at most ONE of:
- an emotion recognition question: "emotionRecognitionQuestion", "emotionOptions" (4-6 labels), "correctEmotion", "emotionExplanation"
- response choices: "choices", each with "text", "emotionalResponse", "isHealthy" (exactly one true), "feedback"
A segment may also have neither (pure narrative with optional "characterEmotion" and "emotionExplanation").

Required Output Format (JSON):
{
  "id": "kebab-case-slug",
  "title": "...",
  "description": "...",
  "difficulty": "%s",
  "emotions": ["...", "..."],
  "story": [ { "id": 1, "narrative": "..." } ]
}

Provide ONLY the JSON output without additional text or markdown formatting.`,
		theme, difficulty, difficulty,
	)

	response, err := generateDefaultModelText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate scenario: %v", err)
	}
	if response == "" {
		return nil, errors.New("no scenario generated")
	}

	var scenario models.Scenario
	if err := json.Unmarshal([]byte(response), &scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario format: %v", err)
	}

	scenario.ID = strings.TrimSpace(scenario.ID)
	if scenario.ID == "" || scenario.Title == "" {
		return nil, errors.New("invalid scenario: missing id or title")
	}
	if err := sanitizeStory(&scenario); err != nil {
		return nil, err
	}

	scenario.Generated = true
	scenario.CreatedAt = time.Now()
	if err := db.InsertScenario(ctx, scenario); err != nil {
		return nil, fmt.Errorf("failed to store generated scenario: %v", err)
	}
	return &scenario, nil
}

// sanitizeStory validates generated segments against the tagged segment
// shape. Malformed segments are kept but stripped down to narrative.
func sanitizeStory(scenario *models.Scenario) error {
	if len(scenario.Story) == 0 {
		return errors.New("invalid scenario: story has no segments")
	}

	for i := range scenario.Story {
		seg := &scenario.Story[i]
		if !story.Malformed(*seg) {
			continue
		}
		log.Printf("Generated scenario %s segment %d violates the segment shape, degrading", scenario.ID, i)
		switch story.ResolveMode(*seg) {
		case story.ModeRecognition:
			// Recognition wins over stray choices.
			seg.Choices = nil
		default:
			// Incomplete recognition question: strip it down to narrative.
			seg.EmotionRecognitionQuestion = ""
			seg.EmotionOptions = nil
			seg.CorrectEmotion = ""
		}
	}
	return nil
}
