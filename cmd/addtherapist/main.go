package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"emotale/config"
	"emotale/db"
	"emotale/models"
	"emotale/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Parse command line flags
	email := flag.String("email", "", "Therapist email (required)")
	password := flag.String("password", "", "Therapist password (required)")
	name := flag.String("name", "", "Therapist name (required)")
	configPath := flag.String("config", "config/config.prod.yml", "Path to config file")
	flag.Parse()

	// Validate required fields
	if *email == "" || *password == "" || *name == "" {
		fmt.Println("Error: email, password, and name are required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to MongoDB
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.MongoClient.Disconnect(context.Background())

	// Check if therapist already exists
	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Therapist
	err = db.MongoDatabase.Collection("therapists").FindOne(dbCtx, bson.M{"email": *email}).Decode(&existing)
	if err == nil {
		log.Fatalf("Therapist with email %s already exists", *email)
	}
	if err != mongo.ErrNoDocuments {
		log.Fatalf("Database error: %v", err)
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Create new therapist
	therapist := models.Therapist{
		Email:        *email,
		Name:         *name,
		PasswordHash: hashedPassword,
		Role:         models.RoleTherapist,
		CreatedAt:    time.Now(),
	}

	result, err := db.MongoDatabase.Collection("therapists").InsertOne(dbCtx, therapist)
	if err != nil {
		log.Fatalf("Failed to create therapist: %v", err)
	}

	fmt.Printf("Therapist created successfully!\n")
	fmt.Printf("   ID: %s\n", result.InsertedID)
	fmt.Printf("   Email: %s\n", *email)
	fmt.Printf("   Name: %s\n", *name)
}
