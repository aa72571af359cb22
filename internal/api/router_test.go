package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/persistorai/degrees/internal/api"
	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/middleware"
	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/service"
)

// newTestServer wires the real services over a three-person chain:
// Kevin Bacon -M1- Tom Cruise -M2- Demi Moore.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	data := dataset.NewStore()
	for _, p := range []models.Person{
		{ID: "102", Name: "Kevin Bacon"},
		{ID: "129", Name: "Tom Cruise"},
		{ID: "193", Name: "Demi Moore"},
	} {
		if err := data.AddPerson(p); err != nil {
			t.Fatal(err)
		}
	}

	for _, m := range []models.Movie{{ID: "M1", Title: "A Few Good Men"}, {ID: "M2", Title: "Apollo 13"}} {
		if err := data.AddMovie(m); err != nil {
			t.Fatal(err)
		}
	}

	for _, c := range [][2]string{{"102", "M1"}, {"129", "M1"}, {"129", "M2"}, {"193", "M2"}} {
		if err := data.AddCredit(c[0], c[1]); err != nil {
			t.Fatal(err)
		}
	}

	log := testLogger()

	engine, err := service.NewEngine(data, 0, log)
	if err != nil {
		t.Fatal(err)
	}

	people := service.NewPeopleService(data, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Path:        service.NewPathService(data, engine, people, log, time.Second),
		People:      people,
		Movies:      people,
		Dataset:     service.NewDatasetService(data, &models.LoadReport{Source: "test"}, log),
		CORSOrigins: []string{"http://localhost:3000"},
		Version:     "test",
		RateLimit:   1000,
		RateBurst:   1000,
	})
}

func TestRouter_PathByName(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, http.MethodGet, "/api/v1/path?from=kevin+bacon&to=Demi+Moore", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["degrees"] != float64(2) {
		t.Errorf("expected 2 degrees, got %v", body["degrees"])
	}

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/v1/health", http.StatusOK},
		{"/api/v1/ready", http.StatusOK},
		{"/api/v1/stats", http.StatusOK},
		{"/api/v1/people?name=Tom+Cruise", http.StatusOK},
		{"/api/v1/people/129", http.StatusOK},
		{"/api/v1/people/129/neighbors", http.StatusOK},
		{"/api/v1/movies/M2", http.StatusOK},
		{"/api/v1/path/102/193", http.StatusOK},
		{"/api/v1/path/102/102", http.StatusOK},
		{"/api/v1/path/102/999", http.StatusNotFound},
		{"/api/v1/nodes", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if w := doRequest(srv, http.MethodGet, tc.path, ""); w.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t)

	doRequest(srv, http.MethodGet, "/api/v1/path/102/193", "")

	w := doRequest(srv, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	for _, name := range []string{"degrees_searches_total", "degrees_http_requests_total", "degrees_dataset_people"} {
		if !strings.Contains(w.Body.String(), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
