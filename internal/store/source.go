package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/db"
	"github.com/persistorai/degrees/internal/dbpool"
	"github.com/persistorai/degrees/internal/models"
)

// Dataset source kinds.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// SourceConfig selects where a dataset lives.
type SourceConfig struct {
	Kind        string
	DataDir     string
	SQLitePath  string
	DatabaseURL string
}

// Loaded is a dataset together with the backend it was read from.
type Loaded struct {
	Dataset *dataset.Store
	Report  *models.LoadReport
	Pinger  Pinger // nil for CSV
	closeFn func()
}

// Close releases the backend, if any.
func (l *Loaded) Close() {
	if l.closeFn != nil {
		l.closeFn()
	}
}

// Load reads the dataset described by src.
func Load(ctx context.Context, src SourceConfig, log *logrus.Logger) (*Loaded, error) {
	switch src.Kind {
	case SourceCSV, "":
		ds, report, err := dataset.LoadCSV(ctx, src.DataDir, log)
		if err != nil {
			return nil, fmt.Errorf("loading csv dataset: %w", err)
		}

		return &Loaded{Dataset: ds, Report: report}, nil

	case SourceSQLite:
		s, err := OpenSQLite(src.SQLitePath, log)
		if err != nil {
			return nil, err
		}

		ds, report, err := s.Load(ctx)
		if err != nil {
			s.Close() //nolint:errcheck // already failing.

			return nil, fmt.Errorf("loading sqlite dataset: %w", err)
		}

		return &Loaded{Dataset: ds, Report: report, Pinger: s, closeFn: func() { _ = s.Close() }}, nil

	case SourcePostgres:
		s, err := openPostgres(ctx, src.DatabaseURL, log)
		if err != nil {
			return nil, err
		}

		ds, report, err := s.Load(ctx)
		if err != nil {
			s.Pool.Close()

			return nil, fmt.Errorf("loading postgres dataset: %w", err)
		}

		return &Loaded{Dataset: ds, Report: report, Pinger: s, closeFn: s.Pool.Close}, nil

	default:
		return nil, fmt.Errorf("unknown dataset source %q", src.Kind)
	}
}

// Import writes ds into the SQLite or Postgres backend described by dst.
func Import(ctx context.Context, dst SourceConfig, ds *dataset.Store, log *logrus.Logger) error {
	switch dst.Kind {
	case SourceSQLite:
		s, err := OpenSQLite(dst.SQLitePath, log)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.Import(ctx, ds)

	case SourcePostgres:
		s, err := openPostgres(ctx, dst.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer s.Pool.Close()

		return s.Import(ctx, ds)

	default:
		return fmt.Errorf("cannot import into dataset source %q", dst.Kind)
	}
}

func openPostgres(ctx context.Context, databaseURL string, log *logrus.Logger) (*PostgresStore, error) {
	pool, err := dbpool.NewPool(ctx, databaseURL, dbpool.DefaultMaxConns)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := db.MigrateCredits(ctx, pool, log); err != nil {
		pool.Close()

		return nil, fmt.Errorf("migrating postgres schema: %w", err)
	}

	return NewPostgresStore(pool, log), nil
}
