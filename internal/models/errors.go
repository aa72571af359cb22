package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for entity lookups.
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrMovieNotFound  = errors.New("movie not found")
)

// ErrNotConnected reports that two known people share no chain of movies.
// It is a normal negative search result.
var ErrNotConnected = errors.New("not connected")

// ErrDuplicateKey indicates an id was loaded twice.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrMissingID is returned when a row has no id.
var ErrMissingID = errors.New("id is required")

// AmbiguousNameError is returned when a name matches more than one person.
type AmbiguousNameError struct {
	Name       string
	Candidates []PersonSummary
}

// Error implements the error interface.
func (e *AmbiguousNameError) Error() string {
	ids := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		ids[i] = c.ID
	}

	return fmt.Sprintf("name %q matches %d people: %s", e.Name, len(e.Candidates), strings.Join(ids, ", "))
}

// IsAmbiguous reports whether err is (or wraps) an *AmbiguousNameError.
func IsAmbiguous(err error) bool {
	var ae *AmbiguousNameError
	return errors.As(err, &ae)
}
