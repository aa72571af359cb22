package search

import "fmt"

// Credits is the read-only view of the dataset the search needs.
type Credits interface {
	HasPerson(personID string) bool
	MoviesForPerson(personID string) ([]string, error)
	StarsForMovie(movieID string) ([]string, error)
}

// Neighbor is a co-star reachable from a person through MovieID.
type Neighbor struct {
	MovieID  string
	PersonID string
}

// Expander derives co-star adjacency from the credits tables.
type Expander struct {
	credits Credits
}

// NewExpander creates an Expander over credits.
func NewExpander(credits Credits) *Expander {
	return &Expander{credits: credits}
}

// Neighbors returns every (movie, star) pair for the movies personID starred
// in. The person appears in the result once per movie of their own.
func (e *Expander) Neighbors(personID string) ([]Neighbor, error) {
	movies, err := e.credits.MoviesForPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", personID, err)
	}

	var out []Neighbor

	for _, movieID := range movies {
		stars, err := e.credits.StarsForMovie(movieID)
		if err != nil {
			return nil, fmt.Errorf("expanding %s via %s: %w", personID, movieID, err)
		}

		for _, starID := range stars {
			out = append(out, Neighbor{MovieID: movieID, PersonID: starID})
		}
	}

	return out, nil
}
