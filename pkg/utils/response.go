package utils

import (
	"errors"
	"net/http"

	apperrors "lab-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

type FieldIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Details),
			)
		}
		return c.JSON(httpErr.Code, map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		issues := make([]FieldIssue, 0, len(validationErrors))
		for _, e := range validationErrors {
			issues = append(issues, FieldIssue{Field: e.Field(), Rule: e.Tag()})
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Validation failed",
			"body":    map[string]interface{}{"issues": issues},
		})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  false,
			"message": apperrors.ErrNotFound.Error(),
		})
	}
	if errors.Is(err, apperrors.ErrCodeTaken) {
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"status":  false,
			"message": apperrors.ErrCodeTaken.Error(),
		})
	}
	if errors.Is(err, apperrors.ErrBadRequest) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": err.Error(),
		})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Internal server error",
	})
}
