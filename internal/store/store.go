// Package store persists the film-credits dataset in SQLite or PostgreSQL and
// reads it back into a dataset.Store.
//
// Every backend exposes the same three tables (people, movies, stars). Reads
// apply the same skip policy as the CSV loader: a cast row that names an
// unknown person or movie is dropped and counted in the load report.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/models"
)

const defaultQueryTimeout = 5 * time.Minute

// Base contains shared dependencies for all stores.
type Base struct {
	Log *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// Pinger reports whether a backing database is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// assembler builds a dataset.Store from streamed rows, tracking skips.
type assembler struct {
	store  *dataset.Store
	report *models.LoadReport
	log    *logrus.Logger
	start  time.Time
}

func newAssembler(source string, log *logrus.Logger) *assembler {
	return &assembler{
		store:  dataset.NewStore(),
		report: &models.LoadReport{Source: source},
		log:    log,
		start:  time.Now(),
	}
}

func (a *assembler) person(p models.Person) {
	if err := a.store.AddPerson(p); err != nil {
		a.log.WithError(err).Debug("skipping person row")
		a.report.SkippedPeople++
	}
}

func (a *assembler) movie(m models.Movie) {
	if err := a.store.AddMovie(m); err != nil {
		a.log.WithError(err).Debug("skipping movie row")
		a.report.SkippedMovies++
	}
}

func (a *assembler) credit(personID, movieID string) {
	if err := a.store.AddCredit(personID, movieID); err != nil {
		a.report.SkippedCredits++
	}
}

func (a *assembler) finish() (*dataset.Store, *models.LoadReport) {
	stats := a.store.Stats()
	a.report.People = stats.People
	a.report.Movies = stats.Movies
	a.report.Credits = stats.Credits
	a.report.Duration = time.Since(a.start)

	a.log.WithFields(logrus.Fields{
		"source":          a.report.Source,
		"people":          a.report.People,
		"movies":          a.report.Movies,
		"credits":         a.report.Credits,
		"skipped_credits": a.report.SkippedCredits,
		"duration":        a.report.Duration.String(),
	}).Info("dataset loaded")

	return a.store, a.report
}

// nullableYear converts an optional year to a database value.
func nullableYear(y *int) any {
	if y == nil {
		return nil
	}

	return *y
}

// movieYear stores an unknown movie year (0) as NULL.
func movieYear(y int) any {
	if y == 0 {
		return nil
	}

	return y
}
