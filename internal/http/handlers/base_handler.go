// README: Base handler utilities (JSON helpers, error mapping, request logger).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wasalny/internal/modules/pricing"
)

// LoggerKey is the gin context key the logging middleware stores the
// request-scoped logger under.
const LoggerKey = "logger"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePricingError answers with the customer-facing Arabic message.
func writePricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrRouteNotFound):
		writeError(c, http.StatusNotFound, pricing.Message(err))
	case errors.Is(err, pricing.ErrUnknownVehicle),
		errors.Is(err, pricing.ErrMissingFare),
		errors.Is(err, pricing.ErrInvalidTime):
		writeError(c, http.StatusBadRequest, pricing.Message(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusServiceUnavailable, "request canceled")
	default:
		getLogger(c).Error("quote failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func getLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(LoggerKey); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}
