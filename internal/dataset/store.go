// Package dataset holds the in-memory film-credits tables the path search
// runs against, plus the CSV loader that builds them.
//
// A Store is populated once by a loader and is read-only afterwards, so
// concurrent searches may share it without locking. Credits are kept as
// sorted id slices on both sides of the relation.
package dataset

import (
	"fmt"
	"slices"

	"github.com/persistorai/degrees/internal/models"
)

// Store is the people/movies/credits dataset.
type Store struct {
	people  map[string]*models.Person
	movies  map[string]*models.Movie
	names   map[string][]string // normalized name -> sorted person ids
	credits int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		people: make(map[string]*models.Person),
		movies: make(map[string]*models.Movie),
		names:  make(map[string][]string),
	}
}

// AddPerson inserts a person. Any Movies on p are ignored; credits are added with AddCredit.
func (s *Store) AddPerson(p models.Person) error {
	if p.ID == "" {
		return models.ErrMissingID
	}

	if _, ok := s.people[p.ID]; ok {
		return fmt.Errorf("person %s: %w", p.ID, models.ErrDuplicateKey)
	}

	p.Movies = make([]string, 0, 4)
	s.people[p.ID] = &p

	key := models.NormalizeName(p.Name)
	s.names[key] = insertSorted(s.names[key], p.ID)

	return nil
}

// AddMovie inserts a movie. Any Stars on m are ignored; credits are added with AddCredit.
func (s *Store) AddMovie(m models.Movie) error {
	if m.ID == "" {
		return models.ErrMissingID
	}

	if _, ok := s.movies[m.ID]; ok {
		return fmt.Errorf("movie %s: %w", m.ID, models.ErrDuplicateKey)
	}

	m.Stars = make([]string, 0, 8)
	s.movies[m.ID] = &m

	return nil
}

// AddCredit links personID and movieID in both directions. Both ids must
// already be present. Adding the same credit twice is a no-op.
func (s *Store) AddCredit(personID, movieID string) error {
	p, ok := s.people[personID]
	if !ok {
		return fmt.Errorf("credit %s/%s: %w", personID, movieID, models.ErrPersonNotFound)
	}

	m, ok := s.movies[movieID]
	if !ok {
		return fmt.Errorf("credit %s/%s: %w", personID, movieID, models.ErrMovieNotFound)
	}

	if _, found := slices.BinarySearch(p.Movies, movieID); found {
		return nil
	}

	p.Movies = insertSorted(p.Movies, movieID)
	m.Stars = insertSorted(m.Stars, personID)
	s.credits++

	return nil
}

// HasPerson reports whether id is a known person.
func (s *Store) HasPerson(id string) bool {
	_, ok := s.people[id]
	return ok
}

// MoviesForPerson returns the sorted movie ids personID starred in.
// The returned slice is shared with the store and must not be modified.
func (s *Store) MoviesForPerson(personID string) ([]string, error) {
	p, ok := s.people[personID]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", personID, models.ErrPersonNotFound)
	}

	return p.Movies, nil
}

// StarsForMovie returns the sorted person ids credited on movieID.
// The returned slice is shared with the store and must not be modified.
func (s *Store) StarsForMovie(movieID string) ([]string, error) {
	m, ok := s.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", movieID, models.ErrMovieNotFound)
	}

	return m.Stars, nil
}

// Person returns a copy of the person with the given id.
func (s *Store) Person(id string) (*models.Person, error) {
	p, ok := s.people[id]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", id, models.ErrPersonNotFound)
	}

	out := *p
	out.Movies = slices.Clone(p.Movies)

	return &out, nil
}

// Movie returns a copy of the movie with the given id.
func (s *Store) Movie(id string) (*models.Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", id, models.ErrMovieNotFound)
	}

	out := *m
	out.Stars = slices.Clone(m.Stars)

	return &out, nil
}

// PersonIDsForName returns the sorted ids of everyone whose name matches
// name case-insensitively. The result is empty when nobody matches.
func (s *Store) PersonIDsForName(name string) []string {
	return slices.Clone(s.names[models.NormalizeName(name)])
}

// Stats returns aggregate counts.
func (s *Store) Stats() models.DatasetStats {
	return models.DatasetStats{
		People:  len(s.people),
		Movies:  len(s.movies),
		Credits: s.credits,
	}
}

// People returns copies of every person ordered by id.
func (s *Store) People() []models.Person {
	ids := sortedKeys(s.people)
	out := make([]models.Person, 0, len(ids))

	for _, id := range ids {
		p := *s.people[id]
		p.Movies = slices.Clone(p.Movies)
		out = append(out, p)
	}

	return out
}

// Movies returns copies of every movie ordered by id.
func (s *Store) Movies() []models.Movie {
	ids := sortedKeys(s.movies)
	out := make([]models.Movie, 0, len(ids))

	for _, id := range ids {
		m := *s.movies[id]
		m.Stars = slices.Clone(m.Stars)
		out = append(out, m)
	}

	return out
}

// Credits returns every credit ordered by person id, then movie id.
func (s *Store) Credits() []models.Credit {
	out := make([]models.Credit, 0, s.credits)

	for _, id := range sortedKeys(s.people) {
		for _, movieID := range s.people[id].Movies {
			out = append(out, models.Credit{PersonID: id, MovieID: movieID})
		}
	}

	return out
}

func insertSorted(ids []string, id string) []string {
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}

	return slices.Insert(ids, i, id)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
