package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runQaTestResultRouter(api *echo.Group, ctrl *controllers.QaTestResultController) {
	results := api.Group("/qa-test-results")

	results.GET("", ctrl.GetQaTestResults)
	results.GET("/:id", ctrl.FindQaTestResult)
	results.POST("", ctrl.CreateQaTestResult)
	results.PATCH("/:id", ctrl.UpdateQaTestResult)
	results.DELETE("/:id", ctrl.DeleteQaTestResult)
}
