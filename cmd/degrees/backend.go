package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/persistorai/degrees/client"
	"github.com/persistorai/degrees/internal/config"
	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/service"
	"github.com/persistorai/degrees/internal/store"
)

// backend answers lookups either from a locally loaded dataset or from a
// degrees server.
type backend interface {
	SearchPeople(ctx context.Context, name string) ([]models.PersonSummary, error)
	ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	Neighbors(ctx context.Context, id string) (*models.NeighborResult, error)
	Close()
}

// openBackend picks the remote backend when --url is set. Progress lines go
// to progress, which may be io.Discard.
func openBackend(ctx context.Context, progress io.Writer) (backend, error) {
	if flagURL != "" {
		return &remoteBackend{c: client.New(flagURL, client.WithUserAgent("degrees-cli/"+config.Version))}, nil
	}

	log := config.NewLogger(os.Stderr, flagLogLevel, "text")

	fmt.Fprintln(progress, "Loading data...")

	loaded, err := store.Load(ctx, store.SourceConfig{
		Kind:        flagSource,
		DataDir:     flagData,
		SQLitePath:  flagSQLite,
		DatabaseURL: flagDatabaseURL,
	}, log)
	if err != nil {
		return nil, err
	}

	engine, err := service.NewEngine(loaded.Dataset, flagMaxDepth, log)
	if err != nil {
		loaded.Close()

		return nil, err
	}

	people := service.NewPeopleService(loaded.Dataset, log)

	fmt.Fprintln(progress, "Data loaded.")

	return &localBackend{
		loaded: loaded,
		people: people,
		path:   service.NewPathService(loaded.Dataset, engine, people, log, 0),
	}, nil
}

type localBackend struct {
	loaded *store.Loaded
	people *service.PeopleService
	path   *service.PathService
}

func (b *localBackend) SearchPeople(ctx context.Context, name string) ([]models.PersonSummary, error) {
	return b.people.SearchPeople(ctx, name)
}

func (b *localBackend) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	return b.path.ShortestPath(ctx, fromID, toID)
}

func (b *localBackend) Neighbors(ctx context.Context, id string) (*models.NeighborResult, error) {
	return b.people.Neighbors(ctx, id)
}

func (b *localBackend) Close() { b.loaded.Close() }

// remoteBackend maps client errors back onto the model sentinels so both
// backends report outcomes the same way.
type remoteBackend struct {
	c *client.Client
}

func (b *remoteBackend) SearchPeople(ctx context.Context, name string) ([]models.PersonSummary, error) {
	found, err := b.c.People.Search(ctx, name)
	if err != nil {
		return nil, remoteErr(err)
	}

	out := make([]models.PersonSummary, 0, len(found))
	for _, p := range found {
		out = append(out, personSummary(p))
	}

	return out, nil
}

func (b *remoteBackend) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	res, err := b.c.Path.Between(ctx, fromID, toID)
	if err != nil {
		return nil, remoteErr(err)
	}

	out := &models.PathResult{
		Source:      personSummary(res.Source),
		Target:      personSummary(res.Target),
		Degrees:     res.Degrees,
		Steps:       make([]models.PathStep, 0, len(res.Steps)),
		Connections: make([]models.Connection, 0, len(res.Connections)),
		Expanded:    res.Expanded,
		Discovered:  res.Discovered,
	}

	for _, s := range res.Steps {
		out.Steps = append(out.Steps, models.PathStep{MovieID: s.MovieID, PersonID: s.PersonID})
	}

	for _, c := range res.Connections {
		out.Connections = append(out.Connections, models.Connection{
			From:  personSummary(c.From),
			To:    personSummary(c.To),
			Movie: movieSummary(c.Movie),
		})
	}

	return out, nil
}

func (b *remoteBackend) Neighbors(ctx context.Context, id string) (*models.NeighborResult, error) {
	res, err := b.c.People.Neighbors(ctx, id)
	if err != nil {
		return nil, remoteErr(err)
	}

	out := &models.NeighborResult{
		Person:    personSummary(res.Person),
		Neighbors: make([]models.Neighbor, 0, len(res.Neighbors)),
	}

	for _, n := range res.Neighbors {
		out.Neighbors = append(out.Neighbors, models.Neighbor{
			Movie:  movieSummary(n.Movie),
			Person: personSummary(n.Person),
		})
	}

	return out, nil
}

func (b *remoteBackend) Close() {}

func remoteErr(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case client.IsNotConnected(err):
		return fmt.Errorf("%w: %w", models.ErrNotConnected, err)
	case client.IsNotFound(err):
		return fmt.Errorf("%w: %w", models.ErrPersonNotFound, err)
	default:
		return err
	}
}

func personSummary(p client.PersonSummary) models.PersonSummary {
	return models.PersonSummary{ID: p.ID, Name: p.Name, Birth: p.Birth}
}

func movieSummary(m client.MovieSummary) models.MovieSummary {
	return models.MovieSummary{ID: m.ID, Title: m.Title, Year: m.Year}
}
