package client

import "time"

// PersonSummary identifies a person without their credits.
type PersonSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Birth *int   `json:"birth,omitempty"`
}

// Person is a credited cast member with the ids of their movies.
type Person struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Birth  *int     `json:"birth,omitempty"`
	Movies []string `json:"movies"`
}

// MovieSummary identifies a movie without its cast.
type MovieSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// Movie is a film with the ids of its stars.
type Movie struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Year  int      `json:"year,omitempty"`
	Stars []string `json:"stars"`
}

// PathStep is one hop of a path: the movie linking the previous person to PersonID.
type PathStep struct {
	MovieID  string `json:"movie_id"`
	PersonID string `json:"person_id"`
}

// Connection names both people of a hop and the movie they share.
type Connection struct {
	From  PersonSummary `json:"from"`
	To    PersonSummary `json:"to"`
	Movie MovieSummary  `json:"movie"`
}

// PathResult is a shortest path between two people.
type PathResult struct {
	Source      PersonSummary `json:"source"`
	Target      PersonSummary `json:"target"`
	Degrees     int           `json:"degrees"`
	Steps       []PathStep    `json:"steps"`
	Connections []Connection  `json:"connections"`
	Expanded    int           `json:"expanded"`
	Discovered  int           `json:"discovered"`
}

// Neighbor is a co-star reached through one shared movie.
type Neighbor struct {
	Movie  MovieSummary  `json:"movie"`
	Person PersonSummary `json:"person"`
}

// NeighborResult lists the co-stars of a person.
type NeighborResult struct {
	Person    PersonSummary `json:"person"`
	Neighbors []Neighbor    `json:"neighbors"`
}

// DatasetStats holds aggregate counts.
type DatasetStats struct {
	People  int `json:"people"`
	Movies  int `json:"movies"`
	Credits int `json:"credits"`
}

// LoadReport summarizes how the server loaded its dataset.
type LoadReport struct {
	Source         string        `json:"source"`
	People         int           `json:"people"`
	Movies         int           `json:"movies"`
	Credits        int           `json:"credits"`
	SkippedPeople  int           `json:"skipped_people"`
	SkippedMovies  int           `json:"skipped_movies"`
	SkippedCredits int           `json:"skipped_credits"`
	Duration       time.Duration `json:"duration_ns"`
}

// StatsResponse is returned by GET /api/v1/stats.
type StatsResponse struct {
	Dataset DatasetStats `json:"dataset"`
	Load    *LoadReport  `json:"load,omitempty"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status        string        `json:"status"`
	Version       string        `json:"version"`
	Database      string        `json:"database"`
	SchemaVersion int           `json:"schema_version,omitempty"`
	Dataset       *DatasetStats `json:"dataset,omitempty"`
	UptimeSeconds float64       `json:"uptime_seconds"`
}
