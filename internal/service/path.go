package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/persistorai/degrees/internal/domain"
	"github.com/persistorai/degrees/internal/metrics"
	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/search"
)

// Searcher runs a single shortest-path search. *search.Engine satisfies it.
type Searcher interface {
	ShortestPath(ctx context.Context, sourceID, targetID string) (*search.Result, error)
}

// Compile-time check: *PathService must satisfy domain.PathService.
var _ domain.PathService = (*PathService)(nil)

// PathService runs searches with a deadline, collapses identical in-flight
// requests and hydrates results with names and titles.
type PathService struct {
	data     Dataset
	searcher Searcher
	people   *PeopleService
	log      *logrus.Logger
	timeout  time.Duration
	group    singleflight.Group
}

// NewPathService creates a PathService. A zero timeout disables the deadline.
func NewPathService(data Dataset, searcher Searcher, people *PeopleService, log *logrus.Logger, timeout time.Duration) *PathService {
	return &PathService{data: data, searcher: searcher, people: people, log: log, timeout: timeout}
}

// ShortestPathByName resolves both names, then searches between the ids.
func (s *PathService) ShortestPathByName(ctx context.Context, fromName, toName string) (*models.PathResult, error) {
	fromID, err := s.people.Resolve(ctx, fromName)
	if err != nil {
		return nil, err
	}

	toID, err := s.people.Resolve(ctx, toName)
	if err != nil {
		return nil, err
	}

	return s.ShortestPath(ctx, fromID, toID)
}

// ShortestPath returns the hydrated shortest path between two person ids.
// Concurrent calls for the same pair share one search; each caller still
// stops waiting when its own context ends.
func (s *PathService) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	ch := s.group.DoChan(fromID+"\x00"+toID, func() (any, error) {
		sctx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			sctx, cancel = context.WithTimeout(sctx, s.timeout)
			defer cancel()
		}

		return s.search(sctx, fromID, toID)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("path %s -> %s: %w", fromID, toID, ctx.Err())
	case r := <-ch:
		if r.Shared {
			metrics.SearchesShared.Inc()
		}

		if r.Err != nil {
			return nil, r.Err
		}

		return r.Val.(*models.PathResult), nil
	}
}

func (s *PathService) search(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	start := time.Now()
	res, err := s.searcher.ShortestPath(ctx, fromID, toID)
	elapsed := time.Since(start)

	metrics.SearchDuration.Observe(elapsed.Seconds())

	fields := logrus.Fields{
		"from_id":     fromID,
		"to_id":       toID,
		"duration_ms": elapsed.Milliseconds(),
	}

	if err != nil {
		outcome := searchOutcome(err)
		metrics.SearchesTotal.WithLabelValues(outcome).Inc()

		entry := s.log.WithFields(fields).WithField("outcome", outcome)
		if outcome == metrics.OutcomeError {
			entry.WithError(err).Error("path.shortest_path failed")
		} else {
			entry.Debug("path.shortest_path")
		}

		return nil, err
	}

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeFound).Inc()
	metrics.SearchExpanded.Observe(float64(res.Expanded))

	s.log.WithFields(fields).WithFields(logrus.Fields{
		"degrees":  res.Degrees(),
		"expanded": res.Expanded,
	}).Debug("path.shortest_path")

	return s.hydrate(fromID, toID, res)
}

// hydrate turns search steps into a PathResult naming every person and movie.
func (s *PathService) hydrate(fromID, toID string, res *search.Result) (*models.PathResult, error) {
	source, err := s.data.Person(fromID)
	if err != nil {
		return nil, err
	}

	target, err := s.data.Person(toID)
	if err != nil {
		return nil, err
	}

	out := &models.PathResult{
		Source:      source.Summary(),
		Target:      target.Summary(),
		Degrees:     res.Degrees(),
		Steps:       res.Steps,
		Connections: make([]models.Connection, 0, len(res.Steps)),
		Expanded:    res.Expanded,
		Discovered:  res.Discovered,
	}

	prev := out.Source
	for _, step := range res.Steps {
		to, movie, err := s.people.hydrate(step.PersonID, step.MovieID)
		if err != nil {
			return nil, fmt.Errorf("hydrating step %s/%s: %w", step.MovieID, step.PersonID, err)
		}

		out.Connections = append(out.Connections, models.Connection{From: prev, To: to, Movie: movie})
		prev = to
	}

	return out, nil
}

func searchOutcome(err error) string {
	switch {
	case errors.Is(err, models.ErrNotConnected):
		return metrics.OutcomeNotConnected
	case errors.Is(err, models.ErrPersonNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeError
	}
}
