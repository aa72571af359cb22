package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/degrees/internal/models"
)

// CSV file names inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 4096

// csvRow gives access to a record's fields by header name.
type csvRow struct {
	cols   map[string]int
	record []string
}

func (r csvRow) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.record) {
		return ""
	}

	return strings.TrimSpace(r.record[i])
}

// LoadCSV reads people.csv, movies.csv and stars.csv from dir into a new Store.
// People and movies are parsed concurrently; credits are applied once both are
// in place. Cast rows naming an unknown person or movie are skipped and counted.
func LoadCSV(ctx context.Context, dir string, log *logrus.Logger) (*Store, *models.LoadReport, error) {
	start := time.Now()
	report := &models.LoadReport{Source: "csv:" + dir}

	var (
		people []models.Person
		movies []models.Movie
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		people, err = readPeople(gctx, filepath.Join(dir, PeopleFile))

		return err
	})

	g.Go(func() error {
		var err error
		movies, err = readMovies(gctx, filepath.Join(dir, MoviesFile))

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	s := NewStore()

	for _, p := range people {
		if err := s.AddPerson(p); err != nil {
			log.WithError(err).Debug("skipping person row")
			report.SkippedPeople++
		}
	}

	for _, m := range movies {
		if err := s.AddMovie(m); err != nil {
			log.WithError(err).Debug("skipping movie row")
			report.SkippedMovies++
		}
	}

	err := readCSV(ctx, filepath.Join(dir, StarsFile), []string{"person_id", "movie_id"}, func(row csvRow) {
		if err := s.AddCredit(row.get("person_id"), row.get("movie_id")); err != nil {
			report.SkippedCredits++
		}
	})
	if err != nil {
		return nil, nil, err
	}

	stats := s.Stats()
	report.People = stats.People
	report.Movies = stats.Movies
	report.Credits = stats.Credits
	report.Duration = time.Since(start)

	log.WithFields(logrus.Fields{
		"dir":             dir,
		"people":          report.People,
		"movies":          report.Movies,
		"credits":         report.Credits,
		"skipped_credits": report.SkippedCredits,
		"duration":        report.Duration.String(),
	}).Info("dataset loaded")

	return s, report, nil
}

func readPeople(ctx context.Context, path string) ([]models.Person, error) {
	var people []models.Person

	err := readCSV(ctx, path, []string{"id", "name"}, func(row csvRow) {
		people = append(people, models.Person{
			ID:    row.get("id"),
			Name:  row.get("name"),
			Birth: parseYear(row.get("birth")),
		})
	})

	return people, err
}

func readMovies(ctx context.Context, path string) ([]models.Movie, error) {
	var movies []models.Movie

	err := readCSV(ctx, path, []string{"id", "title"}, func(row csvRow) {
		year := 0
		if y := parseYear(row.get("year")); y != nil {
			year = *y
		}

		movies = append(movies, models.Movie{
			ID:    row.get("id"),
			Title: row.get("title"),
			Year:  year,
		})
	})

	return movies, err
}

// readCSV streams path row by row, resolving columns from the header line.
// Every name in required must appear in the header.
func readCSV(ctx context.Context, path string, required []string, fn func(csvRow)) error {
	f, err := os.Open(path) //nolint:gosec // dataset path is operator supplied.
	if err != nil {
		return fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading %s header: %w", filepath.Base(path), err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}

	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("%s: missing column %q", filepath.Base(path), name)
		}
	}

	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
		}

		fn(csvRow{cols: cols, record: record})
	}
}

// parseYear returns nil for an empty or non-numeric year.
func parseYear(s string) *int {
	if s == "" {
		return nil
	}

	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &y
}
