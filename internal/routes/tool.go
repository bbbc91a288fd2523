package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runToolRouter(api *echo.Group, ctrl *controllers.ToolController) {
	tools := api.Group("/tools")

	tools.GET("", ctrl.GetTools)
	tools.GET("/:id", ctrl.FindTool)
	tools.POST("", ctrl.CreateTool)
	tools.PATCH("/:id", ctrl.UpdateTool)
	tools.DELETE("/:id", ctrl.DeleteTool)

	tools.GET("/:id/calibration-history", ctrl.GetCalibrationHistory)
	tools.GET("/:id/calibration-history-by-name", ctrl.GetCalibrationHistoryByName)
}
