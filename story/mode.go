// Package story implements the scenario play-through state machine: it walks
// a scenario's segments, scores emotion-recognition and response-choice
// answers, and produces the final accuracy percentage.
package story

import (
	"emotale/models"
)

// Mode is the resolved interaction mode of a segment.
type Mode int

const (
	// ModeNarrative segments carry no question and never gate advancement.
	ModeNarrative Mode = iota
	// ModeRecognition segments ask the user to pick an emotion label.
	ModeRecognition
	// ModeChoice segments ask the user to pick a response option.
	ModeChoice
)

func (m Mode) String() string {
	switch m {
	case ModeRecognition:
		return "recognition"
	case ModeChoice:
		return "choice"
	default:
		return "narrative"
	}
}

// ResolveMode determines a segment's interaction mode. Well-formed segments
// carry at most one interaction, but generated content is not guaranteed to
// respect that: when a segment carries both a recognition question and
// choices, recognition wins and the choices are ignored. A recognition
// question without options or a correct label, or an empty choice list,
// degrades to narrative.
func ResolveMode(seg models.Segment) Mode {
	if seg.EmotionRecognitionQuestion != "" {
		if len(seg.EmotionOptions) == 0 || seg.CorrectEmotion == "" {
			return ModeNarrative
		}
		return ModeRecognition
	}
	if len(seg.Choices) > 0 {
		return ModeChoice
	}
	return ModeNarrative
}

// Malformed reports whether a segment violates the one-interaction-mode
// invariant or is missing fields its declared interaction needs. Callers use
// this to flag anomalies; ResolveMode already degrades them safely.
func Malformed(seg models.Segment) bool {
	if seg.EmotionRecognitionQuestion != "" && len(seg.Choices) > 0 {
		return true
	}
	if seg.EmotionRecognitionQuestion != "" && (len(seg.EmotionOptions) == 0 || seg.CorrectEmotion == "") {
		return true
	}
	return false
}
