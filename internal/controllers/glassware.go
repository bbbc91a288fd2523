package controllers

import (
	"net/http"
	"strconv"

	"lab-system/internal/dto"
	"lab-system/internal/services"
	apperrors "lab-system/pkg/errors"
	"lab-system/pkg/utils"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
)

type GlasswareController struct {
	glasswareService services.GlasswareServiceInterface
	logger           *zap.Logger
}

func NewGlasswareController(glasswareService services.GlasswareServiceInterface, logger *zap.Logger) *GlasswareController {
	return &GlasswareController{
		glasswareService: glasswareService,
		logger:           logger,
	}
}

func (c *GlasswareController) GetGlassware(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	items, err := c.glasswareService.GetGlassware(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, items, "Successfully", http.StatusOK)
}

func (c *GlasswareController) FindGlassware(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid glassware ID format", err), c.logger)
	}

	res, err := c.glasswareService.FindGlassware(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *GlasswareController) CreateGlassware(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var dto dto.CreateGlasswareDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.glasswareService.CreateGlassware(reqCtx, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *GlasswareController) UpdateGlassware(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid glassware ID format", err), c.logger)
	}

	var dto dto.UpdateGlasswareDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.glasswareService.UpdateGlassware(reqCtx, id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *GlasswareController) DeleteGlassware(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid glassware ID format", err), c.logger)
	}

	if err = c.glasswareService.DeleteGlassware(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Successfully deleted", http.StatusOK)
}

func (c *GlasswareController) GetCalibrationHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid glassware ID format", err), c.logger)
	}

	records, err := c.glasswareService.GetCalibrationHistory(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, records, "Successfully", http.StatusOK)
}

func (c *GlasswareController) GetCalibrationHistoryByType(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid glassware ID format", err), c.logger)
	}

	records, err := c.glasswareService.GetCalibrationHistoryByType(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, records, "Successfully", http.StatusOK)
}
