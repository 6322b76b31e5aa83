package controllers

import (
	"context"
	"net/http"
	"time"

	"emotale/services"

	"github.com/gin-gonic/gin"
)

// GetPatientProgress returns per-scenario progress rows for a patient.
func GetPatientProgress(ctx *gin.Context) {
	patientID := ctx.Param("id")

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	progress, err := services.ListProgress(dbCtx, patientID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"progress": progress})
}

// GetPatientProgressSummary aggregates a patient's progress rows into the
// dashboard numbers.
func GetPatientProgressSummary(ctx *gin.Context) {
	patientID := ctx.Param("id")

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := services.SummarizeProgress(dbCtx, patientID, time.Time{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize progress", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
