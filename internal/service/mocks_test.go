package service

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/search"
)

// mockSearcher records calls and returns configured responses.
type mockSearcher struct {
	mu    sync.Mutex
	calls []string

	shortestPath func(ctx context.Context, sourceID, targetID string) (*search.Result, error)
}

func (m *mockSearcher) ShortestPath(ctx context.Context, sourceID, targetID string) (*search.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, sourceID+"->"+targetID)
	m.mu.Unlock()

	return m.shortestPath(ctx, sourceID, targetID)
}

func (m *mockSearcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

func intPtr(v int) *int { return &v }

// testDataset: Kevin Bacon -M1- Tom Cruise -M2- Demi Moore, two people
// named Chris Evans, and an uncredited Lonely Extra.
func testDataset(t *testing.T) *dataset.Store {
	t.Helper()

	s := dataset.NewStore()
	people := []models.Person{
		{ID: "102", Name: "Kevin Bacon", Birth: intPtr(1958)},
		{ID: "129", Name: "Tom Cruise", Birth: intPtr(1962)},
		{ID: "193", Name: "Demi Moore", Birth: intPtr(1962)},
		{ID: "200", Name: "Chris Evans", Birth: intPtr(1981)},
		{ID: "201", Name: "Chris Evans", Birth: intPtr(1966)},
		{ID: "300", Name: "Lonely Extra"},
	}

	for _, p := range people {
		if err := s.AddPerson(p); err != nil {
			t.Fatalf("adding person: %v", err)
		}
	}

	for _, m := range []models.Movie{
		{ID: "M1", Title: "A Few Good Men", Year: 1992},
		{ID: "M2", Title: "Apollo 13", Year: 1995},
	} {
		if err := s.AddMovie(m); err != nil {
			t.Fatalf("adding movie: %v", err)
		}
	}

	for _, c := range [][2]string{{"102", "M1"}, {"129", "M1"}, {"129", "M2"}, {"193", "M2"}} {
		if err := s.AddCredit(c[0], c[1]); err != nil {
			t.Fatalf("adding credit: %v", err)
		}
	}

	return s
}
