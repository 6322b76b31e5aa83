package controllers

import (
	"context"
	"net/http"
	"time"

	"emotale/services"

	"github.com/gin-gonic/gin"
)

// ListScenarios returns the scenario catalog, built-in and generated alike.
func ListScenarios(ctx *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scenarios, err := services.ListScenarios(dbCtx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scenarios", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

// GetScenario returns a single scenario by its slug id.
func GetScenario(ctx *gin.Context) {
	scenarioID := ctx.Param("id")

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scenario, err := services.GetScenario(dbCtx, scenarioID)
	if err != nil {
		if err == services.ErrScenarioNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scenario", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, scenario)
}

// GenerateScenario asks the model for a brand-new scenario and stores it in the catalog.
func GenerateScenario(ctx *gin.Context) {
	var request struct {
		Theme      string `json:"theme" binding:"required"`
		Difficulty string `json:"difficulty"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	genCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	scenario, err := services.GenerateScenario(genCtx, request.Theme, request.Difficulty)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate scenario", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, scenario)
}

// RecommendScenario maps free-text context onto the best-fitting scenario id.
func RecommendScenario(ctx *gin.Context) {
	var request struct {
		Context string `json:"context" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scenarioID := services.RecommendScenario(dbCtx, request.Context)
	ctx.JSON(http.StatusOK, gin.H{"scenarioId": scenarioID})
}
