package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/middleware"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid := middleware.GetRequestID(c); rid != "" {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxIDLength bounds path and query identifiers.
const maxIDLength = 255

// validatePathID checks that a path parameter ID is non-empty and within length limits.
func validatePathID(id string) error {
	if id == "" {
		return fmt.Errorf("id must not be empty")
	}
	if len(id) > maxIDLength {
		return fmt.Errorf("id exceeds maximum length of %d", maxIDLength)
	}
	return nil
}

// validateName checks a person name query parameter.
func validateName(param, name string) error {
	if name == "" {
		return fmt.Errorf("%s is required", param)
	}
	if len(name) > maxIDLength {
		return fmt.Errorf("%s exceeds maximum length of %d", param, maxIDLength)
	}
	return nil
}
