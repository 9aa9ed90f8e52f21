// Command mazebench generates mazes, races the search algorithms over them
// and prints timing statistics.
//
//	mazebench -config plan.yaml -repeats 10
//	mazebench -print -animate
//
// Settings come from the plan file (or the built-in default plan), then
// .env / MAZE_* environment variables, then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/bench"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/replay"
	"github.com/katalvlaran/labyrinth/search"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mazebench:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "YAML run plan (default: built-in plan)")
	seed := flag.Int64("seed", 0, "override the plan seed")
	repeats := flag.Int("repeats", 0, "override the plan repeat count")
	render := flag.Bool("print", false, "render the first maze of every run, solved with BFS")
	animate := flag.Bool("animate", false, "replay each first maze from its step log and verify it")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	plan, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if err := plan.ApplyEnv(); err != nil {
		return err
	}
	if *seed != 0 {
		plan.Seed = *seed
	}
	if *repeats != 0 {
		plan.Repeats = *repeats
	}

	log, err := newLogger(plan)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	runner, err := bench.NewRunner(*plan, log)
	if err != nil {
		return err
	}

	if *render || *animate {
		for _, r := range plan.Runs {
			if err := preview(r, plan.Seed, *render, *animate); err != nil {
				return err
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rep, err := runner.Execute(ctx)
	if err != nil {
		return err
	}
	return rep.Write(os.Stdout)
}

// newLogger builds a production JSON logger at the plan's level.
func newLogger(plan *config.Plan) (*zap.Logger, error) {
	lvl, err := plan.Level()
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// preview renders and/or replay-checks the first maze of a run.
func preview(r config.Run, seed int64, render, animate bool) error {
	gen, _, err := r.Resolve()
	if err != nil {
		return err
	}
	g, err := generate.Generate(r.Width, r.Height, gen, generate.WithSeed(seed))
	if err != nil {
		return err
	}

	if animate {
		initial, steps, err := generate.GenerateAnimated(r.Width, r.Height, gen, generate.WithSeed(seed))
		if err != nil {
			return err
		}
		rp := replay.New(initial, steps)
		if _, _, ok := rp.Finish(); !ok || !rp.Grid().Equal(g) {
			return errors.New("replayed maze differs from direct generation: " + string(gen))
		}
		fmt.Printf("%s %dx%d: %d steps replayed\n", gen, r.Width, r.Height, rp.Len())
	}

	if render {
		res, err := search.SolveGrid(g, search.BFS)
		if err != nil {
			return err
		}
		fmt.Printf("%s %dx%d, path %d, expanded %d\n%s",
			gen, r.Width, r.Height, res.PathLength(), res.NodesExpanded, g)
	}
	return nil
}
