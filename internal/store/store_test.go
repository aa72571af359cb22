package store_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/models"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func ptr[T any](v T) *T { return &v }

// sampleDataset is A -M1- B -M2- C plus an uncredited D.
func sampleDataset(t *testing.T) *dataset.Store {
	t.Helper()

	s := dataset.NewStore()
	require.NoError(t, s.AddPerson(models.Person{ID: "a", Name: "Alice", Birth: ptr(1970)}))
	require.NoError(t, s.AddPerson(models.Person{ID: "b", Name: "Bob"}))
	require.NoError(t, s.AddPerson(models.Person{ID: "c", Name: "Carol", Birth: ptr(1985)}))
	require.NoError(t, s.AddPerson(models.Person{ID: "d", Name: "Dan"}))
	require.NoError(t, s.AddMovie(models.Movie{ID: "m1", Title: "First", Year: 2001}))
	require.NoError(t, s.AddMovie(models.Movie{ID: "m2", Title: "Second"}))
	require.NoError(t, s.AddCredit("a", "m1"))
	require.NoError(t, s.AddCredit("b", "m1"))
	require.NoError(t, s.AddCredit("b", "m2"))
	require.NoError(t, s.AddCredit("c", "m2"))

	return s
}

// requireSameDataset compares two stores table by table.
func requireSameDataset(t *testing.T, want, got *dataset.Store) {
	t.Helper()

	require.Equal(t, want.Stats(), got.Stats())
	require.Equal(t, want.People(), got.People())
	require.Equal(t, want.Movies(), got.Movies())
	require.Equal(t, want.Credits(), got.Credits())
}
