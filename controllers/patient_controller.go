package controllers

import (
	"context"
	"net/http"
	"time"

	"emotale/db"
	"emotale/models"
	"emotale/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePatient registers a patient under the signed-in therapist.
func CreatePatient(ctx *gin.Context) {
	therapistEmail := ctx.GetString("email")
	if therapistEmail == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		Name   string `json:"name" binding:"required"`
		Age    int    `json:"age"`
		Gender string `json:"gender"`
		Email  string `json:"email"`
		Notes  string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	therapist, err := findTherapistByEmail(dbCtx, therapistEmail)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Therapist not found"})
		return
	}

	now := time.Now()
	patient := models.Patient{
		TherapistID: therapist.ID,
		Name:        request.Name,
		Age:         request.Age,
		Gender:      request.Gender,
		Email:       request.Email,
		Notes:       request.Notes,
		Status:      models.PatientStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := db.MongoDatabase.Collection("patients").InsertOne(dbCtx, patient)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient", "message": err.Error()})
		return
	}
	patient.ID = result.InsertedID.(primitive.ObjectID)

	// Invite email is best effort; patient creation already succeeded.
	if patient.Email != "" {
		cfg := loadConfig(ctx)
		if cfg != nil {
			if err := utils.SendPatientInviteEmail(cfg, patient.Email, patient.Name, therapist.Name); err != nil {
				ctx.JSON(http.StatusOK, gin.H{"patient": patient, "warning": "Invite email could not be sent"})
				return
			}
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"patient": patient})
}

// ListPatients returns the signed-in therapist's patients.
func ListPatients(ctx *gin.Context) {
	therapistEmail := ctx.GetString("email")
	if therapistEmail == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	therapist, err := findTherapistByEmail(dbCtx, therapistEmail)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Therapist not found"})
		return
	}

	filter := bson.M{"therapistId": therapist.ID}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := db.MongoDatabase.Collection("patients").Find(
		dbCtx,
		filter,
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patients", "message": err.Error()})
		return
	}
	defer cursor.Close(dbCtx)

	var patients []models.Patient
	if err := cursor.All(dbCtx, &patients); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode patients", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"patients": patients})
}

// UpdatePatient edits a patient's details or archives the record.
func UpdatePatient(ctx *gin.Context) {
	patientID := ctx.Param("id")
	objID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	var request struct {
		Name   *string `json:"name"`
		Age    *int    `json:"age"`
		Gender *string `json:"gender"`
		Notes  *string `json:"notes"`
		Status *string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if request.Name != nil {
		set["name"] = *request.Name
	}
	if request.Age != nil {
		set["age"] = *request.Age
	}
	if request.Gender != nil {
		set["gender"] = *request.Gender
	}
	if request.Notes != nil {
		set["notes"] = *request.Notes
	}
	if request.Status != nil {
		if *request.Status != models.PatientStatusActive && *request.Status != models.PatientStatusArchived {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		set["status"] = *request.Status
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	therapist, err := findTherapistByEmail(dbCtx, ctx.GetString("email"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Therapist not found"})
		return
	}

	result, err := db.MongoDatabase.Collection("patients").UpdateOne(
		dbCtx,
		bson.M{"_id": objID, "therapistId": therapist.ID},
		bson.M{"$set": set},
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient", "message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

// DeletePatient removes a patient record.
func DeletePatient(ctx *gin.Context) {
	patientID := ctx.Param("id")
	objID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	therapist, err := findTherapistByEmail(dbCtx, ctx.GetString("email"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Therapist not found"})
		return
	}

	result, err := db.MongoDatabase.Collection("patients").DeleteOne(dbCtx, bson.M{"_id": objID, "therapistId": therapist.ID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient", "message": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

func findTherapistByEmail(dbCtx context.Context, email string) (*models.Therapist, error) {
	var therapist models.Therapist
	err := db.MongoDatabase.Collection("therapists").FindOne(dbCtx, bson.M{"email": email}).Decode(&therapist)
	if err != nil {
		return nil, err
	}
	return &therapist, nil
}
