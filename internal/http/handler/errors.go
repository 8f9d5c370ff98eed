package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/service"
)

// respondError maps service errors to HTTP responses. Anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	_ = c.Error(err)

	var (
		validation *service.ValidationError
		state      *service.InvalidStateError
		setup      *service.ConfigurationError
		conflict   *service.ConflictError
		notFound   *service.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		body := gin.H{"error": validation.Message, "field": validation.Field}
		if len(validation.IDs) > 0 {
			body["ids"] = validation.IDs
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &state):
		c.JSON(http.StatusConflict, gin.H{"error": state.Message, "code": "invalid_state"})
	case errors.As(err, &setup):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": setup.Message, "code": "payment_setup_required"})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message, "code": "conflict"})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	default:
		slog.ErrorContext(ctx, "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
