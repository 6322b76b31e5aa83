package controllers

import (
	"context"
	"net/http"
	"time"

	"emotale/db"
	"emotale/models"
	"emotale/structs"
	"emotale/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TherapistSignup registers a caregiver account with a locally stored password.
func TherapistSignup(ctx *gin.Context) {
	var request structs.TherapistSignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Therapist
	err := db.MongoDatabase.Collection("therapists").FindOne(dbCtx, bson.M{"email": request.Email}).Decode(&existing)
	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Therapist already exists"})
		return
	}
	if err != mongo.ErrNoDocuments {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password", "message": err.Error()})
		return
	}

	therapist := models.Therapist{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hashedPassword,
		Role:         models.RoleTherapist,
		CreatedAt:    time.Now(),
	}

	result, err := db.MongoDatabase.Collection("therapists").InsertOne(dbCtx, therapist)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create therapist", "message": err.Error()})
		return
	}
	therapist.ID = result.InsertedID.(primitive.ObjectID)

	token, err := utils.GenerateJWTToken(therapist.ID.Hex(), therapist.Email, therapist.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Therapist signup successful",
		"accessToken": token,
		"therapist": gin.H{
			"id":    therapist.ID.Hex(),
			"email": therapist.Email,
			"name":  therapist.Name,
		},
	})
}

// TherapistLogin authenticates a caregiver against the local credential store.
func TherapistLogin(ctx *gin.Context) {
	var request structs.TherapistLoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var therapist models.Therapist
	err := db.MongoDatabase.Collection("therapists").FindOne(dbCtx, bson.M{"email": request.Email}).Decode(&therapist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": err.Error()})
		return
	}

	if !utils.CheckPasswordHash(request.Password, therapist.PasswordHash) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWTToken(therapist.ID.Hex(), therapist.Email, therapist.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Therapist login successful",
		"accessToken": token,
		"therapist": gin.H{
			"id":    therapist.ID.Hex(),
			"email": therapist.Email,
			"name":  therapist.Name,
		},
	})
}
