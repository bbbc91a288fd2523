package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runTrainingRouter(api *echo.Group, ctrl *controllers.TrainingController) {
	trainings := api.Group("/trainings")

	trainings.GET("", ctrl.GetTrainings)
	trainings.GET("/:id", ctrl.FindTraining)
	trainings.POST("", ctrl.CreateTraining)
	trainings.PATCH("/:id", ctrl.UpdateTraining)
	trainings.DELETE("/:id", ctrl.DeleteTraining)
}
