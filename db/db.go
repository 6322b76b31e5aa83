package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"emotale/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database
var ScenarioCollection *mongo.Collection
var ProgressCollection *mongo.Collection

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "emotale"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "emotale"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "emotale"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	ScenarioCollection = MongoDatabase.Collection("scenarios")
	ProgressCollection = MongoDatabase.Collection("scenario_progress")
	return nil
}

// ListScenarios returns the full catalog in creation order.
func ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := ScenarioCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scenarios: %w", err)
	}
	defer cursor.Close(ctx)

	var scenarios []models.Scenario
	if err := cursor.All(ctx, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %w", err)
	}
	return scenarios, nil
}

// GetScenario fetches one catalog entry by id.
func GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := ScenarioCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// InsertScenario stores a new catalog entry.
func InsertScenario(ctx context.Context, scenario models.Scenario) error {
	_, err := ScenarioCollection.InsertOne(ctx, scenario)
	if err != nil {
		log.Printf("Error inserting scenario %s: %v", scenario.ID, err)
		return err
	}
	return nil
}

// CountScenarios returns the catalog size.
func CountScenarios(ctx context.Context) (int64, error) {
	return ScenarioCollection.CountDocuments(ctx, bson.M{})
}

// UpsertProgress merges one attempt into the patient's progress record:
// score keeps the max, completed is sticky, attempts increment.
func UpsertProgress(ctx context.Context, patientID, scenarioID, scenarioTitle string, score int, completed bool) error {
	now := time.Now()

	var existing models.ScenarioProgress
	err := ProgressCollection.FindOne(ctx, bson.M{
		"patientId":  patientID,
		"scenarioId": scenarioID,
	}).Decode(&existing)

	if err == mongo.ErrNoDocuments {
		_, err = ProgressCollection.InsertOne(ctx, models.ScenarioProgress{
			PatientID:     patientID,
			ScenarioID:    scenarioID,
			ScenarioTitle: scenarioTitle,
			Score:         score,
			Completed:     completed,
			Attempts:      1,
			LastAttempted: now,
			UpdatedAt:     now,
		})
		return err
	}
	if err != nil {
		return err
	}

	mergedScore := existing.Score
	if score > mergedScore {
		mergedScore = score
	}
	_, err = ProgressCollection.UpdateOne(ctx,
		bson.M{"_id": existing.ID},
		bson.M{"$set": bson.M{
			"score":         mergedScore,
			"completed":     completed || existing.Completed,
			"attempts":      existing.Attempts + 1,
			"lastAttempted": now,
			"updatedAt":     now,
		}},
	)
	return err
}

// ListProgressByPatient returns all progress records for one patient.
func ListProgressByPatient(ctx context.Context, patientID string) ([]models.ScenarioProgress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastAttempted", Value: -1}})
	cursor, err := ProgressCollection.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ScenarioProgress
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
