package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runTaskRouter(api *echo.Group, ctrl *controllers.TaskController) {
	tasks := api.Group("/tasks")

	tasks.GET("", ctrl.GetTasks)
	tasks.GET("/:id", ctrl.FindTask)
	tasks.POST("", ctrl.CreateTask)
	tasks.PATCH("/:id", ctrl.UpdateTask)
	tasks.DELETE("/:id", ctrl.DeleteTask)

	tasks.POST("/:id/approve-subtasks", ctrl.ApproveSubtasks)
}
