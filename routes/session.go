package routes

import (
	"emotale/controllers"

	"github.com/gin-gonic/gin"
)

func StartSessionRouteHandler(ctx *gin.Context) {
	controllers.StartSession(ctx)
}

func GetSessionStateRouteHandler(ctx *gin.Context) {
	controllers.GetSessionState(ctx)
}

func SelectEmotionRouteHandler(ctx *gin.Context) {
	controllers.SelectEmotion(ctx)
}

func SelectChoiceRouteHandler(ctx *gin.Context) {
	controllers.SelectChoice(ctx)
}

func AdvanceSessionRouteHandler(ctx *gin.Context) {
	controllers.AdvanceSession(ctx)
}

func RestartSessionRouteHandler(ctx *gin.Context) {
	controllers.RestartSession(ctx)
}

func EndSessionRouteHandler(ctx *gin.Context) {
	controllers.EndSession(ctx)
}
