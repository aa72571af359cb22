// Package api provides HTTP handlers for the degrees server.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/db"
	"github.com/persistorai/degrees/internal/models"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dataset   DatasetService
	pinger    Pinger
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. pinger may be nil.
func NewHealthHandler(dataset DatasetService, pinger Pinger, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		dataset:   dataset,
		pinger:    pinger,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string               `json:"status"`
	Version       string               `json:"version"`
	Database      string               `json:"database"`
	SchemaVersion int                  `json:"schema_version,omitempty"`
	Dataset       *models.DatasetStats `json:"dataset,omitempty"`
	UptimeSeconds float64              `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Database:      "not_configured",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.dataset != nil {
		if stats, err := h.dataset.Stats(c.Request.Context()); err == nil {
			resp.Dataset = &stats.Dataset
		}
	}

	// Best-effort database ping (non-fatal for liveness).
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp.Database = "connected"
		resp.SchemaVersion = db.SchemaVersion()

		if err := h.pinger.HealthCheck(ctx); err != nil {
			resp.Database = "disconnected"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. The server is ready once a dataset is
// loaded and, for database sources, the database answers.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{"dataset": "ok"}
	status := "ready"
	statusCode := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if h.dataset == nil {
		checks["dataset"] = "not_loaded"
	} else if _, err := h.dataset.Stats(ctx); err != nil {
		h.log.WithError(err).Error("readiness: dataset stats failed")
		checks["dataset"] = "error"
	}

	if h.pinger != nil {
		checks["database"] = "ok"

		if err := h.pinger.HealthCheck(ctx); err != nil {
			h.log.WithError(err).Error("readiness: database health check failed")
			checks["database"] = "error"
		}
	}

	for _, v := range checks {
		if v != "ok" {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		}
	}

	c.JSON(statusCode, readinessResponse{Status: status, Checks: checks})
}
