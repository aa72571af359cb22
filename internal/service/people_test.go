package service

import (
	"context"
	"errors"
	"testing"

	"github.com/persistorai/degrees/internal/models"
)

func TestPeopleService_Resolve(t *testing.T) {
	svc := NewPeopleService(testDataset(t), quietLogger())

	tests := []struct {
		name      string
		input     string
		wantID    string
		wantErr   error
		ambiguous bool
	}{
		{name: "exact", input: "Kevin Bacon", wantID: "102"},
		{name: "case and space insensitive", input: "  kevin BACON ", wantID: "102"},
		{name: "unknown", input: "Nobody", wantErr: models.ErrPersonNotFound},
		{name: "shared name", input: "Chris Evans", ambiguous: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := svc.Resolve(context.Background(), tc.input)

			switch {
			case tc.ambiguous:
				var ae *models.AmbiguousNameError
				if !errors.As(err, &ae) {
					t.Fatalf("expected AmbiguousNameError, got %v", err)
				}
				if len(ae.Candidates) != 2 || ae.Candidates[0].ID != "200" || ae.Candidates[1].ID != "201" {
					t.Errorf("unexpected candidates: %v", ae.Candidates)
				}
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if id != tc.wantID {
					t.Errorf("expected %s, got %s", tc.wantID, id)
				}
			}
		})
	}
}

func TestPeopleService_SearchPeopleEmpty(t *testing.T) {
	svc := NewPeopleService(testDataset(t), quietLogger())

	got, err := svc.SearchPeople(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestPeopleService_Neighbors(t *testing.T) {
	svc := NewPeopleService(testDataset(t), quietLogger())

	res, err := svc.Neighbors(context.Background(), "129")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Person.Name != "Tom Cruise" {
		t.Errorf("unexpected person: %v", res.Person)
	}

	want := []models.Neighbor{
		{Movie: models.MovieSummary{ID: "M1", Title: "A Few Good Men", Year: 1992}, Person: models.PersonSummary{ID: "102", Name: "Kevin Bacon", Birth: intPtr(1958)}},
		{Movie: models.MovieSummary{ID: "M2", Title: "Apollo 13", Year: 1995}, Person: models.PersonSummary{ID: "193", Name: "Demi Moore", Birth: intPtr(1962)}},
	}

	if len(res.Neighbors) != len(want) {
		t.Fatalf("expected %d neighbors, got %v", len(want), res.Neighbors)
	}

	for i := range want {
		got := res.Neighbors[i]
		if got.Movie != want[i].Movie || got.Person.ID != want[i].Person.ID || *got.Person.Birth != *want[i].Person.Birth {
			t.Errorf("neighbor %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestPeopleService_NeighborsUncredited(t *testing.T) {
	svc := NewPeopleService(testDataset(t), quietLogger())

	res, err := svc.Neighbors(context.Background(), "300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Neighbors) != 0 {
		t.Errorf("expected no neighbors, got %v", res.Neighbors)
	}

	if _, err := svc.Neighbors(context.Background(), "999"); !errors.Is(err, models.ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestPeopleService_GetMovie(t *testing.T) {
	svc := NewPeopleService(testDataset(t), quietLogger())

	m, err := svc.GetMovie(context.Background(), "M2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Apollo 13" || len(m.Stars) != 2 {
		t.Errorf("unexpected movie: %+v", m)
	}

	if _, err := svc.GetMovie(context.Background(), "M9"); !errors.Is(err, models.ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}
