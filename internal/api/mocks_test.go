package api_test

import (
	"context"

	"github.com/persistorai/degrees/internal/models"
)

// mockPathService implements api.PathService for testing.
type mockPathService struct {
	byIDFn   func(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	byNameFn func(ctx context.Context, fromName, toName string) (*models.PathResult, error)
}

func (m *mockPathService) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	return m.byIDFn(ctx, fromID, toID)
}

func (m *mockPathService) ShortestPathByName(ctx context.Context, fromName, toName string) (*models.PathResult, error) {
	return m.byNameFn(ctx, fromName, toName)
}

// mockPeopleService implements api.PeopleService and api.MovieService for testing.
type mockPeopleService struct {
	resolveFn   func(ctx context.Context, name string) (string, error)
	searchFn    func(ctx context.Context, name string) ([]models.PersonSummary, error)
	getFn       func(ctx context.Context, id string) (*models.Person, error)
	neighborsFn func(ctx context.Context, id string) (*models.NeighborResult, error)
	movieFn     func(ctx context.Context, id string) (*models.Movie, error)
}

func (m *mockPeopleService) Resolve(ctx context.Context, name string) (string, error) {
	return m.resolveFn(ctx, name)
}

func (m *mockPeopleService) SearchPeople(ctx context.Context, name string) ([]models.PersonSummary, error) {
	return m.searchFn(ctx, name)
}

func (m *mockPeopleService) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	return m.getFn(ctx, id)
}

func (m *mockPeopleService) Neighbors(ctx context.Context, id string) (*models.NeighborResult, error) {
	return m.neighborsFn(ctx, id)
}

func (m *mockPeopleService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	return m.movieFn(ctx, id)
}

// mockDatasetService implements api.DatasetService for testing.
type mockDatasetService struct {
	statsFn func(ctx context.Context) (*models.StatsResult, error)
}

func (m *mockDatasetService) Stats(ctx context.Context) (*models.StatsResult, error) {
	return m.statsFn(ctx)
}

// mockPinger implements api.Pinger for testing.
type mockPinger struct {
	err error
}

func (m *mockPinger) HealthCheck(_ context.Context) error {
	return m.err
}
