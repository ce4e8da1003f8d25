package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError translates a service error into the matching HTTP status.
// Sentinel errors keep their wrapped message; anything else becomes a 500
// with the given fallback so internal details never leak to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: trimSentinel(err, apperrors.ErrValidation)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: trimSentinel(err, apperrors.ErrNotFound)})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: trimSentinel(err, apperrors.ErrDuplicate)})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: trimSentinel(err, apperrors.ErrUnauthorized)})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: trimSentinel(err, apperrors.ErrForbidden)})
	default:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// trimSentinel strips the sentinel prefix ("validation error: ") from the
// wrapped message so clients see only the human-readable part.
func trimSentinel(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
