package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/models"
)

// cast maps a movie id to the people credited on it.
type cast map[string][]string

// newStore builds a dataset with the given people and cast lists.
func newStore(t *testing.T, people []string, movies cast) *dataset.Store {
	t.Helper()

	s := dataset.NewStore()
	for _, id := range people {
		require.NoError(t, s.AddPerson(models.Person{ID: id, Name: "Person " + id}))
	}

	for movieID, stars := range movies {
		require.NoError(t, s.AddMovie(models.Movie{ID: movieID, Title: "Movie " + movieID}))

		for _, personID := range stars {
			require.NoError(t, s.AddCredit(personID, movieID))
		}
	}

	return s
}
