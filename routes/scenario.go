package routes

import (
	"emotale/controllers"

	"github.com/gin-gonic/gin"
)

func ListScenariosRouteHandler(ctx *gin.Context) {
	controllers.ListScenarios(ctx)
}

func GetScenarioRouteHandler(ctx *gin.Context) {
	controllers.GetScenario(ctx)
}

func GenerateScenarioRouteHandler(ctx *gin.Context) {
	controllers.GenerateScenario(ctx)
}

func RecommendScenarioRouteHandler(ctx *gin.Context) {
	controllers.RecommendScenario(ctx)
}
