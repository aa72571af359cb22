// Package httputil provides the JSON error envelope shared by handlers and middleware.
package httputil

import "github.com/gin-gonic/gin"

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// RespondError writes a standardized JSON error response and aborts the request.
func RespondError(c *gin.Context, status int, code, message string) {
	RespondErrorDetails(c, status, code, message, nil)
}

// RespondErrorDetails is RespondError with a machine-readable details payload.
func RespondErrorDetails(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Details:   details,
	})
}
