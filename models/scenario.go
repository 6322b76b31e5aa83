package models

import (
	"time"
)

// Difficulty levels used by the scenario catalog
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Choice is one response option in a choice segment. Healthy choices count
// toward the play-through score.
type Choice struct {
	Text              string `bson:"text" json:"text"`
	EmotionalResponse string `bson:"emotionalResponse" json:"emotionalResponse"`
	IsHealthy         bool   `bson:"isHealthy" json:"isHealthy"`
	Feedback          string `bson:"feedback" json:"feedback"`
}

// Segment is one step of a scenario's narrative. A segment carries at most
// one interaction: either an emotion-recognition question or a set of
// response choices. Externally-sourced content is not guaranteed to respect
// that; the story package resolves the interaction mode for consumers.
type Segment struct {
	ID                         int      `bson:"id" json:"id"`
	Narrative                  string   `bson:"narrative" json:"narrative"`
	CharacterEmotion           string   `bson:"characterEmotion,omitempty" json:"characterEmotion,omitempty"`
	EmotionRecognitionQuestion string   `bson:"emotionRecognitionQuestion,omitempty" json:"emotionRecognitionQuestion,omitempty"`
	EmotionOptions             []string `bson:"emotionOptions,omitempty" json:"emotionOptions,omitempty"`
	CorrectEmotion             string   `bson:"correctEmotion,omitempty" json:"correctEmotion,omitempty"`
	EmotionExplanation         string   `bson:"emotionExplanation,omitempty" json:"emotionExplanation,omitempty"`
	Choices                    []Choice `bson:"choices,omitempty" json:"choices,omitempty"`
	ImageURL                   string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Scenario is a catalog entry: a named, ordered sequence of narrative
// segments representing one practice exercise. Read-only at runtime.
type Scenario struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Difficulty  string    `bson:"difficulty" json:"difficulty"`
	Emotions    []string  `bson:"emotions" json:"emotions"`
	Story       []Segment `bson:"story" json:"story"`
	Generated   bool      `bson:"generated,omitempty" json:"generated,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
