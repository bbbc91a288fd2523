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

type QaSampleController struct {
	qaSampleService services.QaSampleServiceInterface
	logger          *zap.Logger
}

func NewQaSampleController(qaSampleService services.QaSampleServiceInterface, logger *zap.Logger) *QaSampleController {
	return &QaSampleController{
		qaSampleService: qaSampleService,
		logger:          logger,
	}
}

func (c *QaSampleController) GetQaSamples(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	samples, err := c.qaSampleService.GetQaSamples(reqCtx, ctx.QueryParam("status"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, samples, "Successfully", http.StatusOK)
}

func (c *QaSampleController) FindQaSample(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid sample ID format", err), c.logger)
	}

	res, err := c.qaSampleService.FindQaSample(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *QaSampleController) CreateQaSample(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var dto dto.CreateQaSampleDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.qaSampleService.CreateQaSample(reqCtx, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *QaSampleController) UpdateQaSample(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid sample ID format", err), c.logger)
	}

	var dto dto.UpdateQaSampleDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.qaSampleService.UpdateQaSample(reqCtx, id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *QaSampleController) DeleteQaSample(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid sample ID format", err), c.logger)
	}

	if err = c.qaSampleService.DeleteQaSample(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Successfully deleted", http.StatusOK)
}
