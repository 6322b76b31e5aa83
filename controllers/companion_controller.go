package controllers

import (
	"context"
	"net/http"
	"time"

	"emotale/models"
	"emotale/services"

	"github.com/gin-gonic/gin"
)

// CompanionMessage exchanges one turn with the support companion. The reply
// always succeeds from the client's point of view; model trouble degrades to
// a gentle fallback inside the service.
func CompanionMessage(ctx *gin.Context) {
	var request struct {
		InitialProblem string               `json:"initialProblem"`
		History        []models.ChatMessage `json:"history"`
		Message        string               `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	history := append(request.History, models.ChatMessage{Role: "user", Content: request.Message})

	genCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reply := services.GenerateCompanionReply(genCtx, history)
	history = append(history, models.ChatMessage{Role: "model", Content: reply})

	response := gin.H{
		"reply":         reply,
		"offerPractice": services.ShouldOfferPractice(history),
	}

	// Once the conversation is deep enough, suggest a concrete scenario
	// matched to what the child has shared.
	if services.ShouldOfferPractice(history) {
		dbCtx, cancelDB := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelDB()
		response["suggestedScenarioId"] = services.RecommendScenario(
			dbCtx,
			services.ConversationContext(request.InitialProblem, history),
		)
	}

	ctx.JSON(http.StatusOK, response)
}
