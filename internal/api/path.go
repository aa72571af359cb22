package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PathHandler serves shortest-path endpoints.
type PathHandler struct {
	svc PathService
	log *logrus.Logger
}

// NewPathHandler creates a PathHandler.
func NewPathHandler(svc PathService, log *logrus.Logger) *PathHandler {
	return &PathHandler{svc: svc, log: log}
}

// ByID handles GET /api/v1/path/:from/:to.
func (h *PathHandler) ByID(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	if err := validatePathID(from); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid from: "+err.Error())

		return
	}

	if err := validatePathID(to); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid to: "+err.Error())

		return
	}

	result, err := h.svc.ShortestPath(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, h.log, err, "finding shortest path")

		return
	}

	c.JSON(http.StatusOK, result)
}

// ByName handles GET /api/v1/path?from=NAME&to=NAME.
func (h *PathHandler) ByName(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	for _, q := range [][2]string{{"from", from}, {"to", to}} {
		if err := validateName(q[0], q[1]); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}
	}

	result, err := h.svc.ShortestPathByName(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, h.log, err, "finding shortest path by name")

		return
	}

	c.JSON(http.StatusOK, result)
}
