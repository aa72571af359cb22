package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves dataset statistics.
type StatsHandler struct {
	svc DatasetService
	log *logrus.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc DatasetService, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: log}
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err, "getting stats")

		return
	}

	c.JSON(http.StatusOK, stats)
}
