package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/search"
)

// optimal lists the solvers whose path lengths must agree.
var optimal = []search.Algorithm{search.BFS, search.UCS, search.AStar}

// Runner executes a plan. A nil Logger is treated as zap.NewNop().
type Runner struct {
	Plan   config.Plan
	Logger *zap.Logger
}

// NewRunner validates plan and returns a runner for it.
func NewRunner(plan config.Plan, logger *zap.Logger) (*Runner, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Plan: plan, Logger: logger}, nil
}

// Execute runs every plan entry Repeats times. ctx is checked between
// solves and passed into each search.
func (r *Runner) Execute(ctx context.Context) (*Report, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := r.Plan.Validate(); err != nil {
		return nil, err
	}

	began := time.Now()
	rep := &Report{Seed: r.Plan.Seed, Repeats: r.Plan.Repeats}
	for _, run := range r.Plan.Runs {
		res, err := r.executeRun(ctx, log, run)
		if err != nil {
			return rep, err
		}
		rep.Runs = append(rep.Runs, *res)
	}
	rep.Elapsed = time.Since(began)
	log.Info("benchmark finished",
		zap.Int("runs", len(rep.Runs)),
		zap.Int("repeats", rep.Repeats),
		zap.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}

func (r *Runner) executeRun(ctx context.Context, log *zap.Logger, run config.Run) (*RunResult, error) {
	gen, solvers, err := run.Resolve()
	if err != nil {
		return nil, err
	}
	res := &RunResult{
		ID:        uuid.New(),
		Run:       run,
		Generator: gen,
		Solvers:   solvers,
		Samples:   make(map[search.Algorithm][]Sample, len(solvers)),
	}
	log = log.With(zap.String("run_id", res.ID.String()), zap.String("generator", string(gen)))

	for i := 0; i < r.Plan.Repeats; i++ {
		seed := r.Plan.Seed + int64(i)
		g, err := generate.Generate(run.Width, run.Height, gen,
			generate.WithSeed(seed), generate.WithLogger(log))
		if err != nil {
			return nil, err
		}
		start, end := g.FindEndpoints()

		lengths := make(map[search.Algorithm]int, len(solvers))
		for _, alg := range solvers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out, err := search.Solve(g.Clone(), start, end, alg,
				search.WithContext(ctx), search.WithLogger(log))
			if err != nil {
				return nil, err
			}
			res.Samples[alg] = append(res.Samples[alg], Sample{
				Repeat:        i,
				Found:         out.Found,
				PathLength:    out.PathLength(),
				NodesExpanded: out.NodesExpanded,
				Visited:       len(out.Visited),
				Duration:      out.Duration,
			})
			lengths[alg] = out.PathLength()
		}
		if err := checkOptimal(lengths); err != nil {
			return nil, fmt.Errorf("%w: %s seed %d", err, gen, seed)
		}
	}

	for _, alg := range solvers {
		sum, err := summarize(alg, res.Samples[alg])
		if err != nil {
			return nil, err
		}
		res.Summaries = append(res.Summaries, sum)
	}
	log.Debug("run finished", zap.Int("solvers", len(solvers)))
	return res, nil
}

// checkOptimal compares path lengths of the optimal solvers that ran.
func checkOptimal(lengths map[search.Algorithm]int) error {
	want, seen := 0, false
	for _, alg := range optimal {
		got, ok := lengths[alg]
		if !ok {
			continue
		}
		if !seen {
			want, seen = got, true
			continue
		}
		if got != want {
			return fmt.Errorf("%w: %s=%d, expected %d", ErrInconsistent, alg, got, want)
		}
	}
	return nil
}
