package controllers

import (
	"net/http"

	"lab-system/internal/services"
	"lab-system/pkg/utils"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	stats, err := c.dashboardService.GetStats(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, stats, "Successfully", http.StatusOK)
}
