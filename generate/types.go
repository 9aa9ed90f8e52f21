// Package generate defines algorithm names, the step-log types, options and
// sentinel errors for maze generation.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrInvalidDimensions indicates width or height is below 5 or even.
var ErrInvalidDimensions = errors.New("generate: dimensions must be odd and at least 5")

// ErrInvalidAlgorithm indicates an unrecognized generator name.
var ErrInvalidAlgorithm = errors.New("generate: unknown algorithm")

// MinSize is the smallest accepted width or height.
const MinSize = 5

// Algorithm names a generation strategy.
type Algorithm string

const (
	// DFS is the randomized depth-first backtracker.
	DFS Algorithm = "DFS"
	// Kruskal merges cells by shuffled wall removal over a union-find forest.
	Kruskal Algorithm = "Kruskal"
	// BinaryTree links every cell either up or left.
	BinaryTree Algorithm = "BinaryTree"
	// Wilson grows the tree with loop-erased random walks.
	Wilson Algorithm = "Wilson"
	// RecursiveDivision starts open and splits regions with walls.
	RecursiveDivision Algorithm = "RecursiveDivision"
)

var algorithms = []Algorithm{DFS, Kruskal, BinaryTree, Wilson, RecursiveDivision}

// Algorithms returns the canonical generator names in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ParseAlgorithm resolves a user-supplied name. Matching ignores case,
// underscores and spaces, so "Binary_Tree" and "recursive division" work.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalize(name)
	for _, a := range algorithms {
		if normalize(string(a)) == key {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
}

// Action is the kind of change recorded in a Step.
type Action uint8

const (
	// MarkPath opens a node cell.
	MarkPath Action = iota
	// BreakWall opens the wall cell between two nodes.
	BreakWall
	// BuildWall closes a cell (Recursive Division only).
	BuildWall
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case MarkPath:
		return "path"
	case BreakWall:
		return "break_wall"
	case BuildWall:
		return "build_wall"
	}
	return "unknown"
}

// Status is the cell status an action leaves behind.
func (a Action) Status() grid.Status {
	if a == BuildWall {
		return grid.Wall
	}
	return grid.Path
}

// Step is one visually meaningful change made during animated generation.
type Step struct {
	X, Y   int
	Action Action
}

// Point returns the step coordinate.
func (s Step) Point() grid.Point {
	return grid.Point{X: s.X, Y: s.Y}
}

// Options holds generation settings. Rand wins over Seed when both are set.
type Options struct {
	Seed   int64
	Rand   *rand.Rand
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns seed 0 (the fixed default stream) and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithSeed selects a deterministic stream. Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithLogger sets the logger used for per-run debug entries. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
