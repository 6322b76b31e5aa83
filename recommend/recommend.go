// Package recommend maps free-text conversational context to a scenario id
// by keyword and emotion overlap. It is a pure function of its inputs: no
// randomness, no hidden state, no catalog access of its own.
package recommend

import (
	"strings"

	"emotale/models"
)

// DefaultScenarioID is returned when nothing in the text matches a topic.
const DefaultScenarioID = "family-conflict"

// ContextAnalysis holds the topic flags and emotions detected in free text.
type ContextAnalysis struct {
	HasFamily        bool
	HasWork          bool
	HasFriends       bool
	HasSocialAnxiety bool
	HasRelationship  bool
	HasAcademic      bool
	Emotions         []string
}

// emotionKeywords maps each canonical emotion to its lexical variants.
// Iteration is over the ordered slice below so detection order is stable.
var emotionKeywords = map[string][]string{
	"anger":    {"angry", "mad", "frustrated", "annoyed"},
	"sadness":  {"sad", "depressed", "unhappy", "disappointed"},
	"anxiety":  {"anxious", "nervous", "worried", "stressed"},
	"fear":     {"scared", "afraid", "fearful"},
	"joy":      {"happy", "excited", "joyful"},
	"trust":    {"trust", "betrayed", "loyal"},
	"surprise": {"surprised", "shocked"},
}

var emotionOrder = []string{"anger", "sadness", "anxiety", "fear", "joy", "trust", "surprise"}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// AnalyzeContext scans lower-cased free text for topic and emotion keywords.
func AnalyzeContext(text string) ContextAnalysis {
	lower := strings.ToLower(text)
	return ContextAnalysis{
		HasFamily:        containsAny(lower, "family", "parent"),
		HasWork:          containsAny(lower, "work", "job", "colleague"),
		HasFriends:       containsAny(lower, "friend", "trust", "betray"),
		HasSocialAnxiety: containsAny(lower, "anxious", "social", "crowd"),
		HasRelationship:  containsAny(lower, "relationship", "partner", "romantic"),
		HasAcademic:      containsAny(lower, "study", "exam", "school"),
		Emotions:         extractEmotions(lower),
	}
}

func extractEmotions(lower string) []string {
	var detected []string
	for _, emotion := range emotionOrder {
		if containsAny(lower, emotionKeywords[emotion]...) {
			detected = append(detected, emotion)
		}
	}
	return detected
}

func (a ContextAnalysis) hasEmotion(emotion string) bool {
	for _, e := range a.Emotions {
		if e == emotion {
			return true
		}
	}
	return false
}

// Score computes the match score between an analyzed context and one
// scenario: +3 per topic flag whose keyword appears in the scenario id, +2
// per detected emotion present in the scenario's emotion tags, +1 when
// anxiety or fear was detected and the scenario is Beginner difficulty.
func Score(s models.Scenario, a ContextAnalysis) int {
	score := 0

	topicHits := []struct {
		flag    bool
		keyword string
	}{
		{a.HasFamily, "family"},
		{a.HasWork, "workplace"},
		{a.HasFriends, "friendship"},
		{a.HasSocialAnxiety, "social"},
		{a.HasRelationship, "romantic"},
		{a.HasAcademic, "academic"},
	}
	for _, t := range topicHits {
		if t.flag && strings.Contains(s.ID, t.keyword) {
			score += 3
		}
	}

	for _, tag := range s.Emotions {
		if a.hasEmotion(strings.ToLower(tag)) {
			score += 2
		}
	}

	if (a.hasEmotion("anxiety") || a.hasEmotion("fear")) && s.Difficulty == models.DifficultyBeginner {
		score++
	}

	return score
}

// BestMatch returns the id of the highest-scoring scenario. Ties resolve to
// whichever scenario appears first in catalog order (strict-greater
// comparison, first wins).
func BestMatch(catalog []models.Scenario, a ContextAnalysis) string {
	best := catalog[0].ID
	highest := 0

	for _, s := range catalog {
		if score := Score(s, a); score > highest {
			highest = score
			best = s.ID
		}
	}
	return best
}

// Fallback maps free text straight to a fixed scenario id without a catalog.
// Used when the catalog is empty or unreachable.
func Fallback(text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "family", "parent"):
		return "family-conflict"
	case containsAny(lower, "work", "job"):
		return "workplace-feedback"
	case containsAny(lower, "friend", "trust"):
		return "friendship-betrayal"
	case containsAny(lower, "anxious", "social"):
		return "social-anxiety"
	case containsAny(lower, "relationship", "partner"):
		return "romantic-miscommunication"
	case containsAny(lower, "study", "exam"):
		return "academic-pressure"
	default:
		return DefaultScenarioID
	}
}

// Recommend returns the best scenario id for the given free text. An empty
// catalog falls back to the fixed topic map; the function never errors.
func Recommend(text string, catalog []models.Scenario) string {
	if len(catalog) == 0 {
		return Fallback(text)
	}
	return BestMatch(catalog, AnalyzeContext(text))
}
