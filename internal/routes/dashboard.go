package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runDashboardRouter(api *echo.Group, ctrl *controllers.DashboardController) {
	api.GET("/dashboard/stats", ctrl.GetStats)
}
