package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runGlasswareRouter(api *echo.Group, ctrl *controllers.GlasswareController) {
	glassware := api.Group("/glassware")

	glassware.GET("", ctrl.GetGlassware)
	glassware.GET("/:id", ctrl.FindGlassware)
	glassware.POST("", ctrl.CreateGlassware)
	glassware.PATCH("/:id", ctrl.UpdateGlassware)
	glassware.DELETE("/:id", ctrl.DeleteGlassware)

	glassware.GET("/:id/calibration-history", ctrl.GetCalibrationHistory)
	glassware.GET("/:id/calibration-history-by-type", ctrl.GetCalibrationHistoryByType)
}
