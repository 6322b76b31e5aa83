package services

import (
	"context"
	"strings"
	"testing"

	"emotale/models"
)

func TestShouldOfferPractice(t *testing.T) {
	var history []models.ChatMessage
	if ShouldOfferPractice(history) {
		t.Error("Empty conversation must not offer practice")
	}

	history = append(history,
		models.ChatMessage{Role: "user", Content: "I'm sad"},
		models.ChatMessage{Role: "model", Content: "I'm sorry to hear that"},
		models.ChatMessage{Role: "user", Content: "My friend ignored me"},
	)
	if ShouldOfferPractice(history) {
		t.Error("Three turns must not offer practice yet")
	}

	history = append(history, models.ChatMessage{Role: "model", Content: "That sounds hard"})
	if !ShouldOfferPractice(history) {
		t.Error("Four turns should offer practice")
	}
}

func TestConversationContext(t *testing.T) {
	history := []models.ChatMessage{
		{Role: "user", Content: "my parents are angry at me"},
		{Role: "model", Content: "That sounds tough"},
	}

	text := ConversationContext("fight at home", history)
	if !strings.Contains(text, "Initial problem: fight at home") {
		t.Errorf("Expected initial problem in context, got %q", text)
	}
	if !strings.Contains(text, "user: my parents are angry at me") {
		t.Errorf("Expected user turn in context, got %q", text)
	}
	if !strings.Contains(text, "model: That sounds tough") {
		t.Errorf("Expected model turn in context, got %q", text)
	}

	// No initial problem means no header line.
	text = ConversationContext("", history)
	if strings.Contains(text, "Initial problem") {
		t.Errorf("Expected no initial problem header, got %q", text)
	}
}

func TestCompanionReplyDegradesWithoutClient(t *testing.T) {
	// No Gemini client initialized in tests; the companion must still answer.
	reply := GenerateCompanionReply(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "hello"},
	})
	if reply != companionFallbackReply {
		t.Errorf("Expected fallback reply, got %q", reply)
	}
}

func TestCleanModelOutput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"id\":\"x\"}\n```", "{\"id\":\"x\"}"},
		{"```\n{}\n```", "{}"},
		{"  {}  ", "{}"},
		{"{}", "{}"},
	}
	for _, tt := range tests {
		if got := cleanModelOutput(tt.in); got != tt.want {
			t.Errorf("cleanModelOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
