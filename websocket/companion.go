package websocket

import (
	"context"
	"log"
	"net/http"
	"time"

	"emotale/models"
	"emotale/services"
	"emotale/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is one frame of the live companion conversation.
type Message struct {
	Type                string `json:"type"`
	Content             string `json:"content,omitempty"`
	OfferPractice       bool   `json:"offerPractice,omitempty"`
	SuggestedScenarioID string `json:"suggestedScenarioId,omitempty"`
	Timestamp           int64  `json:"timestamp,omitempty"`
}

// CompanionHandler runs a live chat with the support companion over a
// WebSocket. Each connection owns its own conversation history.
func CompanionHandler(c *gin.Context) {
	// Get token from query parameter
	token := c.Query("token")
	if token == "" {
		log.Println("WebSocket connection failed: missing token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	valid, email, err := utils.ValidateTokenAndFetchEmail(token)
	if err != nil || !valid || email == "" {
		log.Printf("WebSocket connection failed: invalid token - %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("Companion chat started for %s", email)

	initialProblem := c.Query("problem")
	var history []models.ChatMessage

	greeting := Message{
		Type:      "companion",
		Content:   "Hi! I'm here to listen. How are you feeling today?",
		Timestamp: time.Now().Unix(),
	}
	if err := conn.WriteJSON(greeting); err != nil {
		log.Printf("Failed to send greeting: %v", err)
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Companion chat read error for %s: %v", email, err)
			}
			break
		}

		if msg.Type != "message" || msg.Content == "" {
			continue
		}

		history = append(history, models.ChatMessage{Role: "user", Content: msg.Content})

		genCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		reply := services.GenerateCompanionReply(genCtx, history)
		cancel()

		history = append(history, models.ChatMessage{Role: "model", Content: reply})

		response := Message{
			Type:      "companion",
			Content:   reply,
			Timestamp: time.Now().Unix(),
		}
		if services.ShouldOfferPractice(history) {
			response.OfferPractice = true
			dbCtx, cancelDB := context.WithTimeout(context.Background(), 10*time.Second)
			response.SuggestedScenarioID = services.RecommendScenario(
				dbCtx,
				services.ConversationContext(initialProblem, history),
			)
			cancelDB()
		}

		if err := conn.WriteJSON(response); err != nil {
			log.Printf("Companion chat write error for %s: %v", email, err)
			break
		}
	}

	log.Printf("Companion chat ended for %s", email)
}
