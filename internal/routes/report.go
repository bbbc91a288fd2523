package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runReportRouter(api *echo.Group, ctrl *controllers.ReportController) {
	api.GET("/reports/calibration", ctrl.GetCalibrationReport)
}
