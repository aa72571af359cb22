package api

import (
	"context"

	"github.com/persistorai/degrees/internal/domain"
	"github.com/persistorai/degrees/internal/models"
)

// Handler dependencies. Each alias names the slice of the domain a handler uses.
type (
	PathService    = domain.PathService
	PeopleService  = domain.PeopleService
	DatasetService = domain.DatasetService
)

// MovieService is the movie lookup used by MovieHandler.
type MovieService interface {
	GetMovie(ctx context.Context, id string) (*models.Movie, error)
}

// Pinger reports database connectivity; nil when the dataset came from CSV.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
