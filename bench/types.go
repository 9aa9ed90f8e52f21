package bench

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/search"
)

// ErrInconsistent indicates two optimal solvers disagreed on path length.
var ErrInconsistent = errors.New("bench: optimal solvers disagree")

// Sample is one solve of one maze.
type Sample struct {
	Repeat        int
	Found         bool
	PathLength    int
	NodesExpanded int
	Visited       int
	Duration      time.Duration
}

// Summary aggregates the samples of one solver within one run.
type Summary struct {
	Solver       search.Algorithm
	Samples      int
	Found        int
	MeanMicros   float64
	MedianMicros float64
	P95Micros    float64
	MaxMicros    float64
	MeanNodes    float64
	MeanPath     float64
}

// RunResult holds everything measured for one config.Run.
type RunResult struct {
	ID        uuid.UUID
	Run       config.Run
	Generator generate.Algorithm
	Solvers   []search.Algorithm
	Samples   map[search.Algorithm][]Sample
	Summaries []Summary
}

// Report is the outcome of a whole plan.
type Report struct {
	Seed    int64
	Repeats int
	Runs    []RunResult
	Elapsed time.Duration
}
