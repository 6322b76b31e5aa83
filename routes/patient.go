package routes

import (
	"emotale/controllers"

	"github.com/gin-gonic/gin"
)

func CreatePatientRouteHandler(ctx *gin.Context) {
	controllers.CreatePatient(ctx)
}

func ListPatientsRouteHandler(ctx *gin.Context) {
	controllers.ListPatients(ctx)
}

func UpdatePatientRouteHandler(ctx *gin.Context) {
	controllers.UpdatePatient(ctx)
}

func DeletePatientRouteHandler(ctx *gin.Context) {
	controllers.DeletePatient(ctx)
}

func GetPatientProgressRouteHandler(ctx *gin.Context) {
	controllers.GetPatientProgress(ctx)
}

func GetPatientProgressSummaryRouteHandler(ctx *gin.Context) {
	controllers.GetPatientProgressSummary(ctx)
}
