package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runChemicalRouter(api *echo.Group, ctrl *controllers.ChemicalController) {
	chemicals := api.Group("/chemicals")

	chemicals.GET("", ctrl.GetChemicals)
	chemicals.GET("/:id", ctrl.FindChemical)
	chemicals.POST("", ctrl.CreateChemical)
	chemicals.PATCH("/:id", ctrl.UpdateChemical)
	chemicals.DELETE("/:id", ctrl.DeleteChemical)
}
