package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/grid"
)

// solver holds the mutable state shared by every algorithm body.
type solver struct {
	g          *grid.Grid
	ctx        context.Context
	start, end grid.Point
	res        *Result
}

// Solve finds a path from start to end on g.
//
// Before running, PathFound and MovedPath markings from an earlier solve are
// reverted. While running, every newly discovered cell other than the
// endpoints is marked MovedPath. On success the path cells between the
// endpoints are marked PathFound. Not finding a path is not an error.
//
// Errors: ErrNilGrid, ErrInvalidAlgorithm, ErrMissingEndpoints, or the
// context error when cancelled (the partial Result is returned with it).
func Solve(g *grid.Grid, start, end grid.Point, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !isKnown(alg) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, alg)
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start=%v end=%v", ErrMissingEndpoints, start, end)
	}

	g.ResetAnnotations(start, end)
	s := &solver{
		g:     g,
		ctx:   o.Ctx,
		start: start,
		end:   end,
		res:   &Result{Algorithm: alg},
	}

	began := time.Now()
	var err error
	switch alg {
	case BFS:
		err = s.bfs()
	case DFS:
		err = s.dfs()
	case UCS:
		err = s.ucs()
	case AStar:
		err = s.astar()
	case Bidirectional:
		err = s.bidirectional()
	}
	s.res.Duration = time.Since(began)
	if err != nil {
		return s.res, err
	}

	if s.res.Found {
		for _, p := range s.res.Path {
			if p != start && p != end {
				g.Set(p, grid.PathFound)
			}
		}
	}
	o.Logger.Debug("maze solved",
		zap.String("algorithm", string(alg)),
		zap.Bool("found", s.res.Found),
		zap.Int("path_length", s.res.PathLength()),
		zap.Int("nodes_expanded", s.res.NodesExpanded),
		zap.Int("visited", len(s.res.Visited)),
		zap.Duration("elapsed", s.res.Duration),
	)
	return s.res, nil
}

// SolveGrid locates the Start and End cells on g and calls Solve.
func SolveGrid(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, end := g.FindEndpoints()
	return Solve(g, start, end, alg, opts...)
}

// cancelled reports the context error, if any, without blocking.
func (s *solver) cancelled() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

// discover records a newly reached cell and marks it MovedPath unless it is
// an endpoint.
func (s *solver) discover(p grid.Point) {
	if p != s.start && p != s.end {
		s.g.Set(p, grid.MovedPath)
	}
	s.res.Visited = append(s.res.Visited, p)
}

// finish stores the path and flags success.
func (s *solver) finish(path []grid.Point) {
	s.res.Path = path
	s.res.Found = true
}

// chain follows parent links from p until a node without a parent,
// returning p first.
func chain(parent map[grid.Point]grid.Point, p grid.Point) []grid.Point {
	out := []grid.Point{p}
	for {
		q, ok := parent[p]
		if !ok {
			return out
		}
		out = append(out, q)
		p = q
	}
}

// reversed returns the points in reverse order, in place.
func reversed(ps []grid.Point) []grid.Point {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
	return ps
}
