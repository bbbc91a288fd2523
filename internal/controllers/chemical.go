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

type ChemicalController struct {
	chemicalService services.ChemicalServiceInterface
	logger          *zap.Logger
}

func NewChemicalController(chemicalService services.ChemicalServiceInterface, logger *zap.Logger) *ChemicalController {
	return &ChemicalController{
		chemicalService: chemicalService,
		logger:          logger,
	}
}

func (c *ChemicalController) GetChemicals(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	chemicals, err := c.chemicalService.GetChemicals(reqCtx, ctx.QueryParam("category"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, chemicals, "Successfully", http.StatusOK)
}

func (c *ChemicalController) FindChemical(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid chemical ID format", err), c.logger)
	}

	res, err := c.chemicalService.FindChemical(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *ChemicalController) CreateChemical(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var dto dto.CreateChemicalDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.chemicalService.CreateChemical(reqCtx, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *ChemicalController) UpdateChemical(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid chemical ID format", err), c.logger)
	}

	var dto dto.UpdateChemicalDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.chemicalService.UpdateChemical(reqCtx, id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *ChemicalController) DeleteChemical(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid chemical ID format", err), c.logger)
	}

	if err = c.chemicalService.DeleteChemical(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Successfully deleted", http.StatusOK)
}
