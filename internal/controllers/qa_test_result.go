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

type QaTestResultController struct {
	qaTestResultService services.QaTestResultServiceInterface
	logger              *zap.Logger
}

func NewQaTestResultController(qaTestResultService services.QaTestResultServiceInterface, logger *zap.Logger) *QaTestResultController {
	return &QaTestResultController{
		qaTestResultService: qaTestResultService,
		logger:              logger,
	}
}

func (c *QaTestResultController) GetQaTestResults(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	results, err := c.qaTestResultService.GetQaTestResults(reqCtx, ctx.QueryParam("requestNo"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, results, "Successfully", http.StatusOK)
}

func (c *QaTestResultController) FindQaTestResult(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid test result ID format", err), c.logger)
	}

	res, err := c.qaTestResultService.FindQaTestResult(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *QaTestResultController) CreateQaTestResult(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var dto dto.CreateQaTestResultDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.qaTestResultService.CreateQaTestResult(reqCtx, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *QaTestResultController) UpdateQaTestResult(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid test result ID format", err), c.logger)
	}

	var dto dto.UpdateQaTestResultDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.qaTestResultService.UpdateQaTestResult(reqCtx, id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *QaTestResultController) DeleteQaTestResult(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid test result ID format", err), c.logger)
	}

	if err = c.qaTestResultService.DeleteQaTestResult(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Successfully deleted", http.StatusOK)
}
