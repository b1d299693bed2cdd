package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/SscSPs/currency_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// respondError maps service errors to status codes. Unknown errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var fieldErrs apperrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: fieldErrs})
	case errors.Is(err, apperrors.ErrInvalidThreshold):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: apperrors.ErrInvalidThreshold.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Errors: "Not found."})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Errors: "Refresh token has expired"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Errors: "Invalid credentials"})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Errors: msgInternal})
	}
}

// bindJSON decodes the body into req and reports a 400 when it is not valid JSON.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: "Invalid request body"})
		return false
	}
	return true
}

// bindQuery decodes query parameters into params and reports a 400 on type errors.
func bindQuery(c *gin.Context, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: "Invalid query parameters"})
		return false
	}
	return true
}

// requireUserID returns the authenticated caller or writes a 401.
func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Errors: "Authentication credentials were not provided."})
	}
	return userID, ok
}
