// Package models defines data types for the film-credits dataset and path results.
package models

import (
	"fmt"
	"strings"
)

// Person is a credited cast member.
type Person struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Birth  *int     `json:"birth,omitempty"`
	Movies []string `json:"movies"`
}

// Summary returns the lightweight form of p used in path results.
func (p *Person) Summary() PersonSummary {
	return PersonSummary{ID: p.ID, Name: p.Name, Birth: p.Birth}
}

// PersonSummary identifies a person without their credits.
type PersonSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Birth *int   `json:"birth,omitempty"`
}

// String renders the summary the way the disambiguation prompt lists candidates.
func (p PersonSummary) String() string {
	birth := ""
	if p.Birth != nil {
		birth = fmt.Sprintf("%d", *p.Birth)
	}

	return fmt.Sprintf("ID: %s, Name: %s, Birth: %s", p.ID, p.Name, birth)
}

// Movie is a film together with its credited stars.
type Movie struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Year  int      `json:"year,omitempty"`
	Stars []string `json:"stars"`
}

// Summary returns the lightweight form of m used in path results.
func (m *Movie) Summary() MovieSummary {
	return MovieSummary{ID: m.ID, Title: m.Title, Year: m.Year}
}

// MovieSummary identifies a movie without its cast.
type MovieSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// Credit links a person to a movie they starred in.
type Credit struct {
	PersonID string `json:"person_id"`
	MovieID  string `json:"movie_id"`
}

// NormalizeName folds a display name into its lookup key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
