package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/persistorai/degrees/internal/models"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// writePath prints the degree count followed by one numbered line per movie.
func writePath(w io.Writer, res *models.PathResult) {
	fmt.Fprintf(w, "%d degrees of separation.\n", res.Degrees)

	for i, c := range res.Connections {
		fmt.Fprintf(w, "%d: %s and %s starred in %s\n", i+1, c.From.Name, c.To.Name, c.Movie.Title)
	}
}

func writeCandidates(w io.Writer, people []models.PersonSummary) {
	for _, p := range people {
		fmt.Fprintln(w, p.String())
	}
}

func writeNeighbors(w io.Writer, res *models.NeighborResult) {
	fmt.Fprintf(w, "%s has %d co-star credits.\n", res.Person.Name, len(res.Neighbors))

	for _, n := range res.Neighbors {
		if n.Movie.Year != 0 {
			fmt.Fprintf(w, "%s (%s, %d)\n", n.Person.Name, n.Movie.Title, n.Movie.Year)
			continue
		}

		fmt.Fprintf(w, "%s (%s)\n", n.Person.Name, n.Movie.Title)
	}
}

// pathReport is the JSON form of a path lookup. Path is nil when the two
// people are not connected.
type pathReport struct {
	Connected bool               `json:"connected"`
	Path      *models.PathResult `json:"path,omitempty"`
}
