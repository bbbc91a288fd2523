package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runQaSampleRouter(api *echo.Group, ctrl *controllers.QaSampleController) {
	samples := api.Group("/qa-samples")

	samples.GET("", ctrl.GetQaSamples)
	samples.GET("/:id", ctrl.FindQaSample)
	samples.POST("", ctrl.CreateQaSample)
	samples.PATCH("/:id", ctrl.UpdateQaSample)
	samples.DELETE("/:id", ctrl.DeleteQaSample)
}
