package services

import (
	"context"
	"log"

	"emotale/db"
	"emotale/recommend"
)

// RecommendScenario returns the best-matching scenario id for free-text
// conversational context. A catalog fetch failure is absorbed by the fixed
// fallback map; this never returns an error and always yields a usable id.
func RecommendScenario(ctx context.Context, freeText string) string {
	catalog, err := db.ListScenarios(ctx)
	if err != nil {
		log.Printf("Error fetching scenarios for recommendation: %v", err)
		return recommend.Fallback(freeText)
	}
	return recommend.Recommend(freeText, catalog)
}
