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

type MsdsController struct {
	msdsService services.MsdsServiceInterface
	logger      *zap.Logger
}

func NewMsdsController(msdsService services.MsdsServiceInterface, logger *zap.Logger) *MsdsController {
	return &MsdsController{
		msdsService: msdsService,
		logger:      logger,
	}
}

func (c *MsdsController) GetMsds(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	sheets, err := c.msdsService.GetMsds(reqCtx, ctx.QueryParam("category"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, sheets, "Successfully", http.StatusOK)
}

func (c *MsdsController) FindMsds(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid MSDS ID format", err), c.logger)
	}

	res, err := c.msdsService.FindMsds(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *MsdsController) CreateMsds(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var dto dto.CreateMsdsDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.msdsService.CreateMsds(reqCtx, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *MsdsController) UpdateMsds(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid MSDS ID format", err), c.logger)
	}

	var dto dto.UpdateMsdsDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.msdsService.UpdateMsds(reqCtx, id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *MsdsController) DeleteMsds(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid MSDS ID format", err), c.logger)
	}

	if err = c.msdsService.DeleteMsds(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Successfully deleted", http.StatusOK)
}
