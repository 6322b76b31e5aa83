package models

// ChatMessage is a single turn in a companion conversation.
type ChatMessage struct {
	Role    string `bson:"role" json:"role"` // "user" or "model"
	Content string `bson:"content" json:"content"`
}
