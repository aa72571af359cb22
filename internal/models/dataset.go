package models

import "time"

// DatasetStats holds aggregate counts for a loaded dataset.
type DatasetStats struct {
	People  int `json:"people"`
	Movies  int `json:"movies"`
	Credits int `json:"credits"`
}

// LoadReport summarizes one dataset load. Rows that reference unknown ids or
// fail to parse are skipped and counted rather than aborting the load.
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

// Skipped returns the total number of rows dropped during the load.
func (r *LoadReport) Skipped() int {
	return r.SkippedPeople + r.SkippedMovies + r.SkippedCredits
}

// StatsResult is the dataset overview served by the stats endpoint.
type StatsResult struct {
	Dataset DatasetStats `json:"dataset"`
	Load    *LoadReport  `json:"load,omitempty"`
}
