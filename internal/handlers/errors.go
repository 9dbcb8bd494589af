package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	var notInit *apperrors.AccountNotInitializedError
	switch {
	case errors.Is(err, apperrors.ErrCommitFailed):
		return http.StatusInternalServerError
	case errors.As(err, &notInit):
		return http.StatusPreconditionFailed
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &appErr):
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError logs err at a level matching its status and writes the body.
// Server faults are reported with fallback instead of the internal message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	body := ErrorResponse{Error: err.Error(), Code: apperrors.CodeOf(err)}

	var coded apperrors.Coded
	if status < http.StatusInternalServerError && errors.As(err, &coded) {
		if _, empty := coded.(*apperrors.EmptyTransactionError); !empty {
			body.Details = coded
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		body.Error = fallback
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg + ": " + err.Error()})
}
