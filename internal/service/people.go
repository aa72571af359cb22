package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/domain"
	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/search"
)

// Compile-time check: *PeopleService must satisfy domain.PeopleService.
var _ domain.PeopleService = (*PeopleService)(nil)

// PeopleService resolves names and looks up people and movies.
type PeopleService struct {
	data     Dataset
	expander *search.Expander
	log      *logrus.Logger
}

// NewPeopleService creates a PeopleService.
func NewPeopleService(data Dataset, log *logrus.Logger) *PeopleService {
	return &PeopleService{data: data, expander: search.NewExpander(data), log: log}
}

// Resolve maps a display name to exactly one person id. It returns
// models.ErrPersonNotFound when nobody matches and *models.AmbiguousNameError
// when several people share the name.
func (s *PeopleService) Resolve(ctx context.Context, name string) (string, error) {
	candidates, err := s.SearchPeople(ctx, name)
	if err != nil {
		return "", err
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("name %q: %w", name, models.ErrPersonNotFound)
	case 1:
		return candidates[0].ID, nil
	default:
		s.log.WithFields(logrus.Fields{
			"name":       name,
			"candidates": len(candidates),
		}).Debug("people.resolve ambiguous")

		return "", &models.AmbiguousNameError{Name: name, Candidates: candidates}
	}
}

// SearchPeople returns everyone whose name matches case-insensitively, ordered by id.
func (s *PeopleService) SearchPeople(_ context.Context, name string) ([]models.PersonSummary, error) {
	ids := s.data.PersonIDsForName(name)
	out := make([]models.PersonSummary, 0, len(ids))

	for _, id := range ids {
		p, err := s.data.Person(id)
		if err != nil {
			return nil, err
		}

		out = append(out, p.Summary())
	}

	return out, nil
}

// GetPerson returns a person with their movie ids.
func (s *PeopleService) GetPerson(_ context.Context, id string) (*models.Person, error) {
	return s.data.Person(id)
}

// GetMovie returns a movie with its star ids.
func (s *PeopleService) GetMovie(_ context.Context, id string) (*models.Movie, error) {
	return s.data.Movie(id)
}

// Neighbors returns every (movie, co-star) pair of a person. A co-star
// appears once per shared movie.
func (s *PeopleService) Neighbors(_ context.Context, id string) (*models.NeighborResult, error) {
	s.log.WithField("person_id", id).Debug("people.neighbors")

	person, err := s.data.Person(id)
	if err != nil {
		return nil, err
	}

	raw, err := s.expander.Neighbors(id)
	if err != nil {
		return nil, err
	}

	result := &models.NeighborResult{
		Person:    person.Summary(),
		Neighbors: make([]models.Neighbor, 0, len(raw)),
	}

	for _, nb := range raw {
		if nb.PersonID == id {
			continue
		}

		to, movie, err := s.hydrate(nb.PersonID, nb.MovieID)
		if err != nil {
			return nil, err
		}

		result.Neighbors = append(result.Neighbors, models.Neighbor{Movie: movie, Person: to})
	}

	return result, nil
}

func (s *PeopleService) hydrate(personID, movieID string) (models.PersonSummary, models.MovieSummary, error) {
	p, err := s.data.Person(personID)
	if err != nil {
		return models.PersonSummary{}, models.MovieSummary{}, err
	}

	m, err := s.data.Movie(movieID)
	if err != nil {
		return models.PersonSummary{}, models.MovieSummary{}, err
	}

	return p.Summary(), m.Summary(), nil
}
