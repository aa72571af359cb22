package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PeopleHandler serves person lookup endpoints.
type PeopleHandler struct {
	svc PeopleService
	log *logrus.Logger
}

// NewPeopleHandler creates a PeopleHandler.
func NewPeopleHandler(svc PeopleService, log *logrus.Logger) *PeopleHandler {
	return &PeopleHandler{svc: svc, log: log}
}

// Search handles GET /api/v1/people?name=.
func (h *PeopleHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if err := validateName("name", name); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	people, err := h.svc.SearchPeople(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, h.log, err, "searching people")

		return
	}

	c.JSON(http.StatusOK, gin.H{"people": people})
}

// Get handles GET /api/v1/people/:id.
func (h *PeopleHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	person, err := h.svc.GetPerson(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "getting person")

		return
	}

	c.JSON(http.StatusOK, person)
}

// Neighbors handles GET /api/v1/people/:id/neighbors.
func (h *PeopleHandler) Neighbors(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.svc.Neighbors(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "getting neighbors")

		return
	}

	c.JSON(http.StatusOK, result)
}
