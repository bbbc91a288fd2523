package routes

import (
	"github.com/labstack/echo/v4"

	"lab-system/internal/controllers"
)

func runDocumentRouter(api *echo.Group, ctrl *controllers.DocumentController) {
	documents := api.Group("/documents")

	documents.GET("", ctrl.GetDocuments)
	documents.GET("/:id", ctrl.FindDocument)
	documents.POST("", ctrl.CreateDocument)
	documents.PATCH("/:id", ctrl.UpdateDocument)
	documents.DELETE("/:id", ctrl.DeleteDocument)
}
