package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/dbpool"
	"github.com/persistorai/degrees/internal/models"
)

// PostgresStore reads and writes the credits tables in PostgreSQL.
type PostgresStore struct {
	Base
	Pool *dbpool.Pool
}

// NewPostgresStore creates a PostgresStore on an open pool. The schema must
// already be migrated (see db.MigrateCredits).
func NewPostgresStore(pool *dbpool.Pool, log *logrus.Logger) *PostgresStore {
	return &PostgresStore{Base: Base{Log: log}, Pool: pool}
}

// HealthCheck verifies database connectivity.
func (s *PostgresStore) HealthCheck(ctx context.Context) error {
	return s.Pool.HealthCheck(ctx)
}

// Load reads every table inside one read-only transaction so the three
// tables come from the same snapshot.
func (s *PostgresStore) Load(ctx context.Context) (*dataset.Store, *models.LoadReport, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, nil, fmt.Errorf("beginning load: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	a := newAssembler("postgres", s.Log)

	peopleRows, err := tx.Query(ctx, `SELECT id, name, birth FROM people`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying people: %w", err)
	}

	var (
		p     models.Person
		birth *int32
	)

	_, err = pgx.ForEachRow(peopleRows, []any{&p.ID, &p.Name, &birth}, func() error {
		person := models.Person{ID: p.ID, Name: p.Name}
		if birth != nil {
			y := int(*birth)
			person.Birth = &y
		}

		a.person(person)

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning people: %w", err)
	}

	movieRows, err := tx.Query(ctx, `SELECT id, title, COALESCE(year, 0) FROM movies`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying movies: %w", err)
	}

	var (
		m    models.Movie
		year int32
	)

	_, err = pgx.ForEachRow(movieRows, []any{&m.ID, &m.Title, &year}, func() error {
		a.movie(models.Movie{ID: m.ID, Title: m.Title, Year: int(year)})

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning movies: %w", err)
	}

	starRows, err := tx.Query(ctx, `SELECT person_id, movie_id FROM stars`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying stars: %w", err)
	}

	var personID, movieID string

	_, err = pgx.ForEachRow(starRows, []any{&personID, &movieID}, func() error {
		a.credit(personID, movieID)

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning stars: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("committing load: %w", err)
	}

	ds, report := a.finish()

	return ds, report, nil
}

// Import replaces the table contents with ds using COPY in one transaction.
func (s *PostgresStore) Import(ctx context.Context, ds *dataset.Store) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if _, err := tx.Exec(ctx, `TRUNCATE stars, movies, people`); err != nil {
		return fmt.Errorf("truncating credits tables: %w", err)
	}

	people := ds.People()
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"people"}, []string{"id", "name", "birth"},
		pgx.CopyFromSlice(len(people), func(i int) ([]any, error) {
			return []any{people[i].ID, people[i].Name, nullableYear(people[i].Birth)}, nil
		}),
	); err != nil {
		return fmt.Errorf("copying people: %w", err)
	}

	movies := ds.Movies()
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"movies"}, []string{"id", "title", "year"},
		pgx.CopyFromSlice(len(movies), func(i int) ([]any, error) {
			return []any{movies[i].ID, movies[i].Title, movieYear(movies[i].Year)}, nil
		}),
	); err != nil {
		return fmt.Errorf("copying movies: %w", err)
	}

	credits := ds.Credits()
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"stars"}, []string{"person_id", "movie_id"},
		pgx.CopyFromSlice(len(credits), func(i int) ([]any, error) {
			return []any{credits[i].PersonID, credits[i].MovieID}, nil
		}),
	); err != nil {
		return fmt.Errorf("copying stars: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	s.Log.WithFields(logrus.Fields{
		"people":  len(people),
		"movies":  len(movies),
		"credits": len(credits),
	}).Info("dataset imported into postgres")

	return nil
}
