package controllers

import (
	"context"
	"net/http"
	"time"

	"emotale/db"
	"emotale/models"
	"emotale/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile retrieves and returns user profile data together with the
// user's own scenario progress.
func GetProfile(ctx *gin.Context) {
	email := ctx.GetString("email")

	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Avatar URL with DiceBear fallback
	profileAvatarURL := user.AvatarURL
	if profileAvatarURL == "" {
		profileName := user.DisplayName
		if profileName == "" {
			profileName = extractNameFromEmail(email)
		}
		profileAvatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + profileName
	}

	// Solo players store progress under their own user id.
	progress, err := services.ListProgress(dbCtx, user.ID.Hex())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching progress"})
		return
	}

	summary, err := services.SummarizeProgress(dbCtx, user.ID.Hex(), user.CreatedAt)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error summarizing progress"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"displayName": user.DisplayName,
			"email":       user.Email,
			"role":        user.Role,
			"avatarUrl":   profileAvatarURL,
		},
		"progress": progress,
		"summary":  summary,
	})
}

// UpdateProfile modifies user display name and avatar.
func UpdateProfile(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Missing user email in context"})
		return
	}

	var updateData struct {
		DisplayName string `json:"displayName"`
		AvatarURL   string `json:"avatarUrl"`
	}
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{
		"displayName": updateData.DisplayName,
		"avatarUrl":   updateData.AvatarURL,
	}}
	_, err := db.MongoDatabase.Collection("users").UpdateOne(dbCtx, filter, update)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// extractNameFromEmail extracts the name from an email address
func extractNameFromEmail(email string) string {
	for i, char := range email {
		if char == '@' {
			return email[:i]
		}
	}
	return email
}
