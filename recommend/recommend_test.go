package recommend

import (
	"testing"

	"emotale/models"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []models.Scenario {
	return []models.Scenario{
		{ID: "family-conflict", Difficulty: models.DifficultyBeginner, Emotions: []string{"anger", "sadness"}},
		{ID: "workplace-feedback", Difficulty: models.DifficultyIntermediate, Emotions: []string{"anxiety", "anger"}},
		{ID: "friendship-betrayal", Difficulty: models.DifficultyIntermediate, Emotions: []string{"sadness", "trust", "anger"}},
		{ID: "social-anxiety", Difficulty: models.DifficultyBeginner, Emotions: []string{"anxiety", "fear"}},
		{ID: "romantic-miscommunication", Difficulty: models.DifficultyAdvanced, Emotions: []string{"sadness", "fear", "trust"}},
		{ID: "academic-pressure", Difficulty: models.DifficultyBeginner, Emotions: []string{"anxiety", "joy"}},
	}
}

func TestAnalyzeContext(t *testing.T) {
	a := AnalyzeContext("I had a fight with my parents and I'm really angry and sad")
	assert.True(t, a.HasFamily)
	assert.False(t, a.HasWork)
	assert.Equal(t, []string{"anger", "sadness"}, a.Emotions)
}

func TestAnalyzeContextCaseInsensitive(t *testing.T) {
	a := AnalyzeContext("MY FAMILY Makes Me ANGRY")
	assert.True(t, a.HasFamily)
	assert.Equal(t, []string{"anger"}, a.Emotions)
}

func TestScoreTopicAndEmotions(t *testing.T) {
	catalog := testCatalog()
	a := AnalyzeContext("my parents make me angry and sad")

	// family topic +3, anger +2, sadness +2
	assert.Equal(t, 7, Score(catalog[0], a))
	// anger +2 only
	assert.Equal(t, 2, Score(catalog[1], a))
}

func TestScoreBeginnerBonus(t *testing.T) {
	a := AnalyzeContext("I feel so nervous around crowds")

	social := testCatalog()[3]
	assert.True(t, a.HasSocialAnxiety)
	// social topic +3, anxiety +2, beginner bonus +1
	assert.Equal(t, 6, Score(social, a))

	// Same scenario at Advanced difficulty loses the bonus.
	social.Difficulty = models.DifficultyAdvanced
	assert.Equal(t, 5, Score(social, a))
}

func TestRecommendDeterministic(t *testing.T) {
	catalog := testCatalog()
	text := "my friend betrayed my trust and I feel so sad"

	first := Recommend(text, catalog)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Recommend(text, catalog))
	}
	assert.Equal(t, "friendship-betrayal", first)
}

func TestRecommendTieFirstWins(t *testing.T) {
	// Two scenarios with identical emotion tags score the same; the one
	// earlier in catalog order must win.
	catalog := []models.Scenario{
		{ID: "first-option", Emotions: []string{"anger"}},
		{ID: "second-option", Emotions: []string{"anger"}},
	}
	assert.Equal(t, "first-option", Recommend("I am so mad", catalog))
}

func TestRecommendNoMatchReturnsFirst(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, "family-conflict", Recommend("completely unrelated text", catalog))
}

func TestRecommendEmptyCatalogFallsBack(t *testing.T) {
	assert.Equal(t, "workplace-feedback", Recommend("trouble at my job", nil))
	assert.Equal(t, "family-conflict", Recommend("nothing matches here", nil))
}

func TestFallback(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"my parents are upset", "family-conflict"},
		{"issues at work", "workplace-feedback"},
		{"my friend lied to me", "friendship-betrayal"},
		{"I get anxious at parties", "social-anxiety"},
		{"my partner misunderstood me", "romantic-miscommunication"},
		{"the exam is tomorrow", "academic-pressure"},
		{"", DefaultScenarioID},
		{"random words", DefaultScenarioID},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fallback(tt.text), "text: %q", tt.text)
	}
}

func TestFallbackOrderFamilyBeatsWork(t *testing.T) {
	// Topic checks run in a fixed order; family wins when both match.
	assert.Equal(t, "family-conflict", Fallback("my parents hate my job"))
}
