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

type DocumentController struct {
	documentService services.DocumentServiceInterface
	logger          *zap.Logger
}

func NewDocumentController(documentService services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		logger:          logger,
	}
}

func (c *DocumentController) GetDocuments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	documents, err := c.documentService.GetDocuments(reqCtx, ctx.QueryParam("category"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, documents, "Successfully", http.StatusOK)
}

func (c *DocumentController) FindDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid document ID format", err), c.logger)
	}

	res, err := c.documentService.FindDocument(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *DocumentController) CreateDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var dto dto.CreateDocumentDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.documentService.CreateDocument(reqCtx, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *DocumentController) UpdateDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid document ID format", err), c.logger)
	}

	var dto dto.UpdateDocumentDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.documentService.UpdateDocument(reqCtx, id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *DocumentController) DeleteDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid document ID format", err), c.logger)
	}

	if err = c.documentService.DeleteDocument(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Successfully deleted", http.StatusOK)
}
