// Package search defines algorithm names, options, results and sentinel
// errors for path search over a maze grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrNilGrid is returned when Solve receives a nil grid.
var ErrNilGrid = errors.New("search: grid is nil")

// ErrMissingEndpoints indicates start or end is unset or outside the grid.
var ErrMissingEndpoints = errors.New("search: start and end must be set")

// ErrInvalidAlgorithm indicates an unrecognized search name.
var ErrInvalidAlgorithm = errors.New("search: unknown algorithm")

// Algorithm names a search strategy.
type Algorithm string

const (
	// BFS expands a FIFO frontier; shortest path in edges.
	BFS Algorithm = "BFS"
	// DFS expands a LIFO frontier; some path, not necessarily shortest.
	DFS Algorithm = "DFS"
	// UCS expands the cheapest accumulated cost first.
	UCS Algorithm = "UCS"
	// AStar orders the frontier by cost plus Manhattan distance to the goal.
	AStar Algorithm = "A*"
	// Bidirectional runs two breadth-first frontiers that meet in the middle.
	Bidirectional Algorithm = "Bidirectional"
)

var algorithms = []Algorithm{BFS, DFS, UCS, AStar, Bidirectional}

// aliases maps normalized alternate spellings to canonical names.
var aliases = map[string]Algorithm{
	"astar":               AStar,
	"bidirectionalsearch": Bidirectional,
}

// Algorithms returns the canonical search names in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ParseAlgorithm resolves a user-supplied name, ignoring case, spaces and
// underscores. "AStar", "A_star" and "Bidirectional_Search" are accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalize(name)
	for _, a := range algorithms {
		if normalize(string(a)) == key {
			return a, nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
}

func isKnown(alg Algorithm) bool {
	for _, a := range algorithms {
		if a == alg {
			return true
		}
	}
	return false
}

// Options configures a search run.
type Options struct {
	// Ctx is checked once per expansion; cancellation aborts the run.
	Ctx    context.Context
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context and a no-op logger.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: zap.NewNop()}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("search: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger sets the logger for per-run debug entries. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// Result holds the outcome and metrics of one search.
//
//	Path:          start..end inclusive; empty when not found.
//	Visited:       discovered cells in discovery order, endpoints excluded.
//	NodesExpanded: frontier pops that were processed.
//	Duration:      wall time of the algorithm body.
type Result struct {
	Algorithm     Algorithm
	Path          []grid.Point
	Visited       []grid.Point
	Found         bool
	NodesExpanded int
	Duration      time.Duration
}

// PathLength is the number of cells on the path, endpoints included.
func (r *Result) PathLength() int {
	return len(r.Path)
}
