package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"emotale/services"
	"emotale/story"

	"github.com/gin-gonic/gin"
)

// StartSession begins a play-through of a scenario for the signed-in user.
func StartSession(ctx *gin.Context) {
	var request struct {
		ScenarioID  string `json:"scenarioId" binding:"required"`
		PatientID   string `json:"patientId"`
		PatientName string `json:"patientName"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scenario, err := services.GetScenario(dbCtx, request.ScenarioID)
	if err != nil {
		if err == services.ErrScenarioNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scenario", "message": err.Error()})
		return
	}

	session, err := services.GetSessionService().StartSession(scenario, ctx.GetString("email"), request.PatientID, request.PatientName)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Scenario has no playable segments", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sessionState(session))
}

// GetSessionState returns the current play-through state.
func GetSessionState(ctx *gin.Context) {
	session, err := services.GetSessionService().GetSession(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, sessionState(session))
}

// SelectEmotion submits an answer to the current emotion recognition question.
func SelectEmotion(ctx *gin.Context) {
	var request struct {
		Emotion string `json:"emotion" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	session, result, err := services.GetSessionService().SelectEmotion(ctx.Param("id"), request.Emotion)
	if err != nil {
		writePlayError(ctx, err)
		return
	}

	state := sessionState(session)
	state["answer"] = gin.H{
		"correct":        result.Correct,
		"correctEmotion": result.CorrectEmotion,
		"explanation":    result.Explanation,
	}
	ctx.JSON(http.StatusOK, state)
}

// SelectChoice submits a response choice for the current segment.
func SelectChoice(ctx *gin.Context) {
	var request struct {
		ChoiceIndex *int `json:"choiceIndex" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	session, result, err := services.GetSessionService().SelectChoice(ctx.Param("id"), *request.ChoiceIndex)
	if err != nil {
		writePlayError(ctx, err)
		return
	}

	state := sessionState(session)
	state["answer"] = gin.H{
		"correct":     result.Correct,
		"explanation": result.Explanation,
	}
	ctx.JSON(http.StatusOK, state)
}

// AdvanceSession moves the play-through to the next segment.
func AdvanceSession(ctx *gin.Context) {
	session, finalScore, completed, err := services.GetSessionService().Advance(ctx.Param("id"))
	if err != nil {
		writePlayError(ctx, err)
		return
	}

	state := sessionState(session)
	if completed {
		state["finalScore"] = finalScore
	}
	ctx.JSON(http.StatusOK, state)
}

// RestartSession replays the same scenario from the first segment.
func RestartSession(ctx *gin.Context) {
	session, err := services.GetSessionService().Restart(ctx.Param("id"))
	if err != nil {
		writePlayError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sessionState(session))
}

// EndSession discards the play-through.
func EndSession(ctx *gin.Context) {
	services.GetSessionService().EndSession(ctx.Param("id"))
	ctx.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}

func sessionState(session *services.Session) gin.H {
	play := session.Play
	state := gin.H{
		"sessionId":      session.ID,
		"scenarioId":     play.Scenario().ID,
		"scenarioTitle":  play.Scenario().Title,
		"segmentIndex":   play.CurrentIndex(),
		"totalSegments":  len(play.Scenario().Story),
		"answered":       play.Answered(),
		"completed":      play.Completed(),
		"correctAnswers": play.CorrectAnswers(),
		"totalQuestions": play.TotalQuestions(),
	}
	if play.Completed() {
		score, _ := play.FinalScore()
		state["score"] = score
	} else {
		segment := play.CurrentSegment()
		state["segment"] = segment
		state["mode"] = story.ResolveMode(segment).String()
	}
	return state
}

func writePlayError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, story.ErrAlreadyAnswered),
		errors.Is(err, story.ErrWrongMode),
		errors.Is(err, story.ErrUnanswered),
		errors.Is(err, story.ErrComplete),
		errors.Is(err, story.ErrNotComplete),
		errors.Is(err, story.ErrChoiceOutOfRange):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
	}
}
