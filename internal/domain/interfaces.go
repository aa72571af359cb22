// Package domain defines the canonical service interfaces shared across API
// layers (REST handlers, CLI). Consumers should depend on these interfaces
// rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/persistorai/degrees/internal/models"
)

// PathService finds shortest co-star chains.
type PathService interface {
	ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	ShortestPathByName(ctx context.Context, fromName, toName string) (*models.PathResult, error)
}

// PeopleService looks up people and movies.
type PeopleService interface {
	Resolve(ctx context.Context, name string) (string, error)
	SearchPeople(ctx context.Context, name string) ([]models.PersonSummary, error)
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	Neighbors(ctx context.Context, id string) (*models.NeighborResult, error)
	GetMovie(ctx context.Context, id string) (*models.Movie, error)
}

// DatasetService reports on the loaded dataset.
type DatasetService interface {
	Stats(ctx context.Context) (*models.StatsResult, error)
}
