// Package service provides business logic between API handlers and the dataset.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/domain"
	"github.com/persistorai/degrees/internal/metrics"
	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/search"
)

// Dataset is the read side of the loaded credits tables.
type Dataset interface {
	search.Credits
	Person(id string) (*models.Person, error)
	Movie(id string) (*models.Movie, error)
	PersonIDsForName(name string) []string
	Stats() models.DatasetStats
}

// Compile-time check: *DatasetService must satisfy domain.DatasetService.
var _ domain.DatasetService = (*DatasetService)(nil)

// DatasetService reports on the loaded dataset.
type DatasetService struct {
	data   Dataset
	report *models.LoadReport
	log    *logrus.Logger
}

// NewDatasetService creates a DatasetService and publishes the dataset gauges.
// report may be nil.
func NewDatasetService(data Dataset, report *models.LoadReport, log *logrus.Logger) *DatasetService {
	stats := data.Stats()
	metrics.DatasetPeople.Set(float64(stats.People))
	metrics.DatasetMovies.Set(float64(stats.Movies))
	metrics.DatasetCredits.Set(float64(stats.Credits))

	if report != nil {
		metrics.SkippedRows.WithLabelValues("people").Set(float64(report.SkippedPeople))
		metrics.SkippedRows.WithLabelValues("movies").Set(float64(report.SkippedMovies))
		metrics.SkippedRows.WithLabelValues("stars").Set(float64(report.SkippedCredits))

		if report.Skipped() > 0 {
			log.WithFields(logrus.Fields{
				"source":          report.Source,
				"skipped_people":  report.SkippedPeople,
				"skipped_movies":  report.SkippedMovies,
				"skipped_credits": report.SkippedCredits,
			}).Warn("dataset rows skipped during load")
		}
	}

	return &DatasetService{data: data, report: report, log: log}
}

// Stats returns dataset counts and the load report.
func (s *DatasetService) Stats(_ context.Context) (*models.StatsResult, error) {
	return &models.StatsResult{Dataset: s.data.Stats(), Load: s.report}, nil
}

// NewEngine builds a search engine over data that logs every expansion at
// trace level. maxDepth 0 means unlimited.
func NewEngine(data search.Credits, maxDepth int, log *logrus.Logger) (*search.Engine, error) {
	return search.NewEngine(data,
		search.WithMaxDepth(maxDepth),
		search.WithOnExpand(func(personID string, depth, frontierLen int) {
			if !log.IsLevelEnabled(logrus.TraceLevel) {
				return
			}

			log.WithFields(logrus.Fields{
				"person_id": personID,
				"depth":     depth,
				"frontier":  frontierLen,
			}).Trace("search.expand")
		}),
	)
}
