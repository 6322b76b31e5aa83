package routes

import (
	"emotale/controllers"

	"github.com/gin-gonic/gin"
)

func CompanionMessageRouteHandler(ctx *gin.Context) {
	controllers.CompanionMessage(ctx)
}
