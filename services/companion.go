package services

import (
	"context"
	"fmt"
	"strings"

	"emotale/models"
)

// companionSystemPrompt frames the model as a gentle emotional-support
// companion for children who struggle with emotional recognition.
const companionSystemPrompt = `You are a gentle, safe, emotionally supportive AI companion designed for children ages 8-12 who struggle with emotional recognition or emotional regulation.

Your responsibilities:
1. Talk kindly with the child using warm, simple, friendly language.
2. Understand their feelings, even if their expression is unclear.
3. Help them recognize and name emotions in kid-friendly ways.
4. Comfort them, validate their feelings, and be patient.
5. Ask gentle questions to understand their situation and emotions.
6. Support emotional awareness without judging or blaming.
7. Gradually guide them into a story-based emotional training scenario.
8. Never lecture or overwhelm the child.
9. Keep responses short, clear, soft, and safe.
10. Avoid complex psychological terms; use simple explanations.

Your goal is to support the child emotionally and softly lead them into story practice when they feel ready.`

// practiceOfferThreshold is the number of conversation turns after which the
// companion starts offering a practice scenario.
const practiceOfferThreshold = 4

const companionFallbackReply = "I'm sorry, I couldn't think of what to say. Would you like to keep talking about your situation?"

// GenerateCompanionReply produces the companion's next message for the given
// conversation history. Model failures degrade to a gentle apology rather
// than an error; the conversation must never break for the child.
func GenerateCompanionReply(ctx context.Context, history []models.ChatMessage) string {
	reply, err := generateChatText(ctx, defaultGeminiModel, companionSystemPrompt, history)
	if err != nil || reply == "" {
		return companionFallbackReply
	}
	return reply
}

// ShouldOfferPractice reports whether enough conversation has accumulated to
// offer a story practice scenario.
func ShouldOfferPractice(history []models.ChatMessage) bool {
	return len(history) >= practiceOfferThreshold
}

// ConversationContext flattens a conversation into the free-text form the
// recommendation heuristic consumes.
func ConversationContext(initialProblem string, history []models.ChatMessage) string {
	var sb strings.Builder
	if initialProblem != "" {
		sb.WriteString(fmt.Sprintf("Initial problem: %s\n", initialProblem))
	}
	for _, msg := range history {
		sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}
	return sb.String()
}
