package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/httputil"
	"github.com/persistorai/degrees/internal/metrics"
	"github.com/persistorai/degrees/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeNotConnected   = "not_connected"
	ErrCodeAmbiguousName  = "ambiguous_name"
	ErrCodeTimeout        = "timeout"
	ErrCodeInternalError  = "internal_error"
	ErrCodeRateLimited    = "rate_limited"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps a service error onto the API's status codes.
func respondServiceError(c *gin.Context, log *logrus.Logger, err error, op string) {
	var ambiguous *models.AmbiguousNameError

	switch {
	case errors.As(err, &ambiguous):
		metrics.ErrorsTotal.WithLabelValues(ErrCodeAmbiguousName).Inc()
		httputil.RespondErrorDetails(c, http.StatusConflict, ErrCodeAmbiguousName, ambiguous.Error(), ambiguous.Candidates)
	case errors.Is(err, models.ErrNotConnected):
		respondError(c, http.StatusNotFound, ErrCodeNotConnected, "not connected")
	case errors.Is(err, models.ErrPersonNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")
	case errors.Is(err, models.ErrMovieNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "movie not found")
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, ErrCodeTimeout, "search timed out")
	default:
		log.WithError(err).Error(op)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
