// Package search finds the fewest-movies chain between two people.
//
// The co-star graph is never materialized: an Expander derives a person's
// neighbors from the person->movies and movie->stars tables on demand, and
// Engine runs a breadth-first search over it. Each ShortestPath call owns its
// frontier and visited set, so one Engine can serve any number of concurrent
// calls against an immutable dataset.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/persistorai/degrees/internal/models"
)

// Sentinel errors for search execution.
var (
	// ErrEmptyFrontier is returned by Remove on an empty frontier. Seeing it
	// escape ShortestPath indicates a defect in the engine.
	ErrEmptyFrontier = errors.New("search: frontier is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the tunables of an Engine.
type Options struct {
	// MaxDepth, if > 0, bounds the number of degrees searched.
	MaxDepth int

	// OnExpand is called before a node's neighbors are fetched.
	OnExpand func(personID string, depth, frontierLen int)

	err error
}

// DefaultOptions returns unlimited depth and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(string, int, int) {},
	}
}

// WithMaxDepth bounds the search to d degrees. Zero means unlimited;
// a negative value is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}

		o.MaxDepth = d
	}
}

// WithOnExpand registers a hook run before each expansion.
func WithOnExpand(fn func(personID string, depth, frontierLen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	Steps      []models.PathStep
	Expanded   int // nodes whose neighbors were fetched
	Discovered int // distinct people reached, source included
}

// Degrees returns the number of movies linking source to target.
func (r *Result) Degrees() int {
	return len(r.Steps)
}

// Engine runs shortest-path searches over a Credits dataset.
type Engine struct {
	credits  Credits
	expander *Expander
	opts     Options
}

// NewEngine creates an Engine, rejecting invalid options.
func NewEngine(credits Credits, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.err != nil {
		return nil, o.err
	}

	return &Engine{credits: credits, expander: NewExpander(credits), opts: o}, nil
}

// ShortestPath returns the fewest (movie, person) hops leading from sourceID
// to targetID. Among equally short paths, whichever is discovered first wins.
//
// It returns models.ErrPersonNotFound if either id is unknown and
// models.ErrNotConnected when the frontier is exhausted. A search from a
// person to themself succeeds with zero steps.
func (e *Engine) ShortestPath(ctx context.Context, sourceID, targetID string) (*Result, error) {
	for _, id := range []string{sourceID, targetID} {
		if !e.credits.HasPerson(id) {
			return nil, fmt.Errorf("person %s: %w", id, models.ErrPersonNotFound)
		}
	}

	if sourceID == targetID {
		return &Result{Steps: []models.PathStep{}, Discovered: 1}, nil
	}

	res := &Result{}
	visited := map[string]struct{}{sourceID: {}}
	frontier := NewQueueFrontier()
	frontier.Add(newRoot(sourceID))

	for !frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("searching %s -> %s: %w", sourceID, targetID, err)
		}

		node, err := frontier.Remove()
		if err != nil {
			return nil, fmt.Errorf("searching %s -> %s: %w", sourceID, targetID, err)
		}

		if e.opts.MaxDepth > 0 && node.Depth >= e.opts.MaxDepth {
			continue
		}

		e.opts.OnExpand(node.State, node.Depth, frontier.Len())

		neighbors, err := e.expander.Neighbors(node.State)
		if err != nil {
			return nil, err
		}

		res.Expanded++

		for _, nb := range neighbors {
			// A person is listed among the stars of their own movies.
			if nb.PersonID == node.State {
				continue
			}

			if _, seen := visited[nb.PersonID]; seen {
				continue
			}

			visited[nb.PersonID] = struct{}{}
			next := node.child(nb.PersonID, nb.MovieID)

			// Goal test at discovery: every node still queued is at least as deep.
			if next.State == targetID {
				res.Steps = next.Path()
				res.Discovered = len(visited)

				return res, nil
			}

			frontier.Add(next)
		}
	}

	if e.opts.MaxDepth > 0 {
		return nil, fmt.Errorf("%s -> %s within %d degrees: %w", sourceID, targetID, e.opts.MaxDepth, models.ErrNotConnected)
	}

	return nil, fmt.Errorf("%s -> %s: %w", sourceID, targetID, models.ErrNotConnected)
}
