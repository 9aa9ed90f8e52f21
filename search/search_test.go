package search_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/search"
)

func maze(t *testing.T, w, h int, alg generate.Algorithm, seed int64) *grid.Grid {
	t.Helper()
	g, err := generate.Generate(w, h, alg, generate.WithSeed(seed))
	require.NoError(t, err)
	return g
}

// requireSound checks the path runs start→end over adjacent passable cells.
func requireSound(t *testing.T, g *grid.Grid, res *search.Result, start, end grid.Point) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, end, res.Path[len(res.Path)-1])
	for i := 0; i+1 < len(res.Path); i++ {
		a, b := res.Path[i], res.Path[i+1]
		require.True(t, a.Adjacent(b), "step %d: %v→%v", i, a, b)
		require.True(t, g.Passable(a))
		require.True(t, g.Passable(b))
	}
}

//----------------------------------------------------------------------------//
// Correctness and soundness on generated mazes
//----------------------------------------------------------------------------//

func TestSolve_AllAlgorithms(t *testing.T) {
	for _, gen := range generate.Algorithms() {
		for seed := int64(1); seed <= 3; seed++ {
			base := maze(t, 25, 19, gen, seed)
			start, end := base.FindEndpoints()
			shortest := base.Distances(start)[end.Y][end.X]
			require.Positive(t, shortest)

			for _, alg := range search.Algorithms() {
				name := fmt.Sprintf("%s/%d/%s", gen, seed, alg)
				t.Run(name, func(t *testing.T) {
					g := base.Clone()
					res, err := search.Solve(g, start, end, alg)
					require.NoError(t, err)
					require.True(t, res.Found)
					assert.Equal(t, alg, res.Algorithm)
					requireSound(t, g, res, start, end)
					assert.Positive(t, res.NodesExpanded)

					// Perfect mazes have exactly one simple path, so every
					// algorithm returns the shortest one here.
					assert.Equal(t, shortest+1, res.PathLength())

					assert.Equal(t, grid.Start, g.Status(start))
					assert.Equal(t, grid.End, g.Status(end))
					assert.Equal(t, res.PathLength()-2, g.Count(grid.PathFound))
				})
			}
		}
	}
}

// TestSolve_ShortestOnOpenGrid uses a grid with cycles, where DFS may wander
// but BFS, UCS and A* must still be optimal.
func TestSolve_ShortestOnOpenGrid(t *testing.T) {
	g, err := grid.New(9, 7, grid.Wall)
	require.NoError(t, err)
	g.FillInterior(grid.Path)
	g.Set(grid.Point{X: 4, Y: 2}, grid.Wall)
	g.Set(grid.Point{X: 4, Y: 3}, grid.Wall)
	start, end := grid.Point{X: 1, Y: 1}, grid.Point{X: 7, Y: 5}
	want := g.Distances(start)[end.Y][end.X] + 1

	for _, alg := range search.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			res, err := search.Solve(g, start, end, alg)
			require.NoError(t, err)
			require.True(t, res.Found)
			requireSound(t, g, res, start, end)
			switch alg {
			case search.BFS, search.UCS, search.AStar:
				assert.Equal(t, want, res.PathLength())
			default:
				assert.GreaterOrEqual(t, res.PathLength(), want)
			}
		})
	}
}

// TestSolve_ResetIdempotent solves twice and expects identical results.
func TestSolve_ResetIdempotent(t *testing.T) {
	g := maze(t, 21, 15, generate.Wilson, 11)
	for _, alg := range search.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			first, err := search.SolveGrid(g, alg)
			require.NoError(t, err)
			snapshot := g.Clone()

			second, err := search.SolveGrid(g, alg)
			require.NoError(t, err)
			assert.Equal(t, first.Path, second.Path)
			assert.Equal(t, first.Visited, second.Visited)
			assert.Equal(t, first.NodesExpanded, second.NodesExpanded)
			assert.Equal(t, first.Found, second.Found)
			assert.True(t, snapshot.Equal(g))
		})
	}
}

// TestSolve_Annotations checks MovedPath marks and the Visited log.
func TestSolve_Annotations(t *testing.T) {
	g := maze(t, 15, 15, generate.DFS, 2)
	start, end := g.FindEndpoints()
	res, err := search.Solve(g, start, end, search.BFS)
	require.NoError(t, err)

	assert.NotContains(t, res.Visited, start)
	onPath := make(map[grid.Point]bool)
	for _, p := range res.Path {
		onPath[p] = true
	}
	for _, p := range res.Visited {
		switch {
		case p == end:
			assert.Equal(t, grid.End, g.Status(p))
		case onPath[p]:
			assert.Equal(t, grid.PathFound, g.Status(p))
		default:
			assert.Equal(t, grid.MovedPath, g.Status(p))
		}
	}
}

// TestKruskal5x5_BFS is the four-node scenario solved end to end.
func TestKruskal5x5_BFS(t *testing.T) {
	g := maze(t, 5, 5, generate.Kruskal, 4)
	start, end := grid.Point{X: 1, Y: 1}, grid.Point{X: 3, Y: 3}
	want := g.Distances(start)[end.Y][end.X]

	res, err := search.Solve(g, start, end, search.BFS)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, want+1, res.PathLength())
	assert.Contains(t, []int{5, 7}, res.PathLength())
}

func TestSolve_StartEqualsEnd(t *testing.T) {
	g := maze(t, 7, 7, generate.BinaryTree, 1)
	start, _ := g.FindEndpoints()
	res, err := search.Solve(g, start, start, search.AStar)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []grid.Point{start}, res.Path)
}

//----------------------------------------------------------------------------//
// Not found, errors, cancellation
//----------------------------------------------------------------------------//

func TestSolve_NotFound(t *testing.T) {
	g := maze(t, 11, 11, generate.Kruskal, 6)
	start, end := g.FindEndpoints()
	// Wall off End completely.
	for _, d := range grid.Offsets() {
		g.Set(end.Add(d), grid.Wall)
	}
	for _, alg := range search.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			res, err := search.Solve(g, start, end, alg)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Zero(t, g.Count(grid.PathFound))
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	g := maze(t, 7, 7, generate.DFS, 1)
	start, end := g.FindEndpoints()

	_, err := search.Solve(nil, start, end, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)
	_, err = search.SolveGrid(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.Solve(g, grid.NoPoint, end, search.BFS)
	assert.ErrorIs(t, err, search.ErrMissingEndpoints)
	_, err = search.Solve(g, start, grid.Point{X: 7, Y: 0}, search.BFS)
	assert.ErrorIs(t, err, search.ErrMissingEndpoints)

	_, err = search.Solve(g, start, end, search.Algorithm("Dijkstra"))
	assert.True(t, errors.Is(err, search.ErrInvalidAlgorithm))

	blank, err := grid.New(7, 7, grid.Wall)
	require.NoError(t, err)
	_, err = search.SolveGrid(blank, search.BFS)
	assert.ErrorIs(t, err, search.ErrMissingEndpoints)
}

func TestSolve_Cancelled(t *testing.T) {
	g := maze(t, 21, 21, generate.DFS, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, alg := range search.Algorithms() {
		res, err := search.SolveGrid(g, alg, search.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, alg)
		require.NotNil(t, res)
		assert.False(t, res.Found)
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":                  search.BFS,
		"DFS":                  search.DFS,
		"ucs":                  search.UCS,
		"A*":                   search.AStar,
		"AStar":                search.AStar,
		"A_star":               search.AStar,
		"Bidirectional":        search.Bidirectional,
		"Bidirectional_Search": search.Bidirectional,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("IDA*")
	assert.ErrorIs(t, err, search.ErrInvalidAlgorithm)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { search.WithLogger(nil) })
	//nolint:staticcheck // nil context is the case under test
	assert.Panics(t, func() { search.WithContext(nil) })
}

func TestSolve_LogsRun(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := maze(t, 9, 9, generate.Wilson, 1)
	_, err := search.SolveGrid(g, search.UCS, search.WithLogger(zap.New(core)))
	require.NoError(t, err)
	entries := logs.FilterMessage("maze solved").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["found"])
}
