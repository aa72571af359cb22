package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // register the sqlite database/sql driver

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/models"
)

const sqliteDriver = "sqlite"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS people (
  id    TEXT PRIMARY KEY,
  name  TEXT NOT NULL,
  birth INTEGER
);
CREATE INDEX IF NOT EXISTS idx_people_name ON people (name COLLATE NOCASE);
CREATE TABLE IF NOT EXISTS movies (
  id    TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  year  INTEGER
);
CREATE TABLE IF NOT EXISTS stars (
  person_id TEXT NOT NULL,
  movie_id  TEXT NOT NULL,
  PRIMARY KEY (person_id, movie_id)
);
CREATE INDEX IF NOT EXISTS idx_stars_movie ON stars (movie_id);
`

// SQLiteStore reads and writes the credits tables in a SQLite file.
type SQLiteStore struct {
	Base
	path string
	db   *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// ensures the credits schema exists.
func OpenSQLite(path string, log *logrus.Logger) (*SQLiteStore, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("sqlite path must not be empty")
	}

	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("sqlite path %q is a directory, expected file", cleanPath)
	}

	if dir := filepath.Dir(cleanPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating sqlite directory %q: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cleanPath)

	db, err := sql.Open(sqliteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", cleanPath, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("pinging sqlite %q: %w", cleanPath, err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("initializing sqlite schema %q: %w", cleanPath, err)
	}

	return &SQLiteStore{Base: Base{Log: log}, path: cleanPath, db: db}, nil
}

// HealthCheck verifies the database file is still readable.
func (s *SQLiteStore) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite health check: %w", err)
	}

	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Load reads every table into a new dataset.Store.
func (s *SQLiteStore) Load(ctx context.Context) (*dataset.Store, *models.LoadReport, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	a := newAssembler("sqlite:"+s.path, s.Log)

	if err := s.scanPeople(ctx, a); err != nil {
		return nil, nil, err
	}

	if err := s.scanMovies(ctx, a); err != nil {
		return nil, nil, err
	}

	if err := s.scanStars(ctx, a); err != nil {
		return nil, nil, err
	}

	ds, report := a.finish()

	return ds, report, nil
}

func (s *SQLiteStore) scanPeople(ctx context.Context, a *assembler) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, birth FROM people`)
	if err != nil {
		return fmt.Errorf("querying people: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p     models.Person
			birth sql.NullInt64
		)

		if err := rows.Scan(&p.ID, &p.Name, &birth); err != nil {
			return fmt.Errorf("scanning person: %w", err)
		}

		if birth.Valid {
			y := int(birth.Int64)
			p.Birth = &y
		}

		a.person(p)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating people: %w", err)
	}

	return nil
}

func (s *SQLiteStore) scanMovies(ctx context.Context, a *assembler) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, year FROM movies`)
	if err != nil {
		return fmt.Errorf("querying movies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m    models.Movie
			year sql.NullInt64
		)

		if err := rows.Scan(&m.ID, &m.Title, &year); err != nil {
			return fmt.Errorf("scanning movie: %w", err)
		}

		m.Year = int(year.Int64)
		a.movie(m)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating movies: %w", err)
	}

	return nil
}

func (s *SQLiteStore) scanStars(ctx context.Context, a *assembler) error {
	rows, err := s.db.QueryContext(ctx, `SELECT person_id, movie_id FROM stars`)
	if err != nil {
		return fmt.Errorf("querying stars: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var personID, movieID string
		if err := rows.Scan(&personID, &movieID); err != nil {
			return fmt.Errorf("scanning star: %w", err)
		}

		a.credit(personID, movieID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating stars: %w", err)
	}

	return nil
}

// Import replaces the database contents with ds in a single transaction.
func (s *SQLiteStore) Import(ctx context.Context, ds *dataset.Store) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}

	defer tx.Rollback() //nolint:errcheck // best-effort rollback after commit.

	for _, table := range []string{"stars", "movies", "people"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := execEach(ctx, tx, `INSERT INTO people (id, name, birth) VALUES (?, ?, ?)`, ds.People(), func(p models.Person) []any {
		return []any{p.ID, p.Name, nullableYear(p.Birth)}
	}); err != nil {
		return fmt.Errorf("inserting people: %w", err)
	}

	if err := execEach(ctx, tx, `INSERT INTO movies (id, title, year) VALUES (?, ?, ?)`, ds.Movies(), func(m models.Movie) []any {
		return []any{m.ID, m.Title, movieYear(m.Year)}
	}); err != nil {
		return fmt.Errorf("inserting movies: %w", err)
	}

	if err := execEach(ctx, tx, `INSERT INTO stars (person_id, movie_id) VALUES (?, ?)`, ds.Credits(), func(c models.Credit) []any {
		return []any{c.PersonID, c.MovieID}
	}); err != nil {
		return fmt.Errorf("inserting stars: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	stats := ds.Stats()
	s.Log.WithFields(logrus.Fields{
		"path":    s.path,
		"people":  stats.People,
		"movies":  stats.Movies,
		"credits": stats.Credits,
	}).Info("dataset imported into sqlite")

	return nil
}

// execEach runs one prepared statement per item.
func execEach[T any](ctx context.Context, tx *sql.Tx, query string, items []T, args func(T) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, args(item)...); err != nil {
			return err
		}
	}

	return nil
}
