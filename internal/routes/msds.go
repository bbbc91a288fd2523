package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runMsdsRouter(api *echo.Group, ctrl *controllers.MsdsController) {
	msds := api.Group("/msds")

	msds.GET("", ctrl.GetMsds)
	msds.GET("/:id", ctrl.FindMsds)
	msds.POST("", ctrl.CreateMsds)
	msds.PATCH("/:id", ctrl.UpdateMsds)
	msds.DELETE("/:id", ctrl.DeleteMsds)
}
