package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MovieHandler serves movie lookups.
type MovieHandler struct {
	svc MovieService
	log *logrus.Logger
}

// NewMovieHandler creates a MovieHandler.
func NewMovieHandler(svc MovieService, log *logrus.Logger) *MovieHandler {
	return &MovieHandler{svc: svc, log: log}
}

// Get handles GET /api/v1/movies/:id.
func (h *MovieHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	movie, err := h.svc.GetMovie(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "getting movie")

		return
	}

	c.JSON(http.StatusOK, movie)
}
