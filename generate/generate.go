package generate

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/grid"
)

// carver owns the grid being built and the optional step log.
// Every status change goes through mark so that direct and animated
// runs take identical code paths and draw identical random numbers.
type carver struct {
	g      *grid.Grid
	rng    *rand.Rand
	record bool
	steps  []Step
}

// mark sets the cell at (x,y) to a.Status() and logs the step when recording.
func (c *carver) mark(x, y int, a Action) {
	c.g.Set(grid.Point{X: x, Y: y}, a.Status())
	if c.record {
		c.steps = append(c.steps, Step{X: x, Y: y, Action: a})
	}
}

// run dispatches to the algorithm body.
func (c *carver) run(alg Algorithm) {
	switch alg {
	case DFS:
		c.dfs()
	case Kruskal:
		c.kruskal()
	case BinaryTree:
		c.binaryTree()
	case Wilson:
		c.wilson()
	case RecursiveDivision:
		c.recursiveDivision()
	}
}

// Generate builds a perfect maze of the given size and places Start on the
// first Path cell in row-major order and End on the last.
//
// Errors: ErrInvalidDimensions, ErrInvalidAlgorithm.
// Complexity: O(W×H) for every algorithm except Wilson, whose random walks
// have expected cost O(W×H·log(W×H)) on grids.
func Generate(width, height int, alg Algorithm, opts ...Option) (*grid.Grid, error) {
	c, o, err := prepare(width, height, alg, false, opts)
	if err != nil {
		return nil, err
	}
	began := time.Now()
	c.run(alg)
	start, end, _ := c.g.PlaceEndpoints()
	o.Logger.Debug("maze generated",
		zap.String("algorithm", string(alg)),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Duration("elapsed", time.Since(began)),
	)
	return c.g, nil
}

// GenerateAnimated runs alg on a scratch grid, recording a Step for every
// visible change, and returns a grid reset to the algorithm's initial state
// together with the step log. Feeding the log to a replayer and placing
// endpoints reproduces what Generate returns for the same seed.
func GenerateAnimated(width, height int, alg Algorithm, opts ...Option) (*grid.Grid, []Step, error) {
	c, o, err := prepare(width, height, alg, true, opts)
	if err != nil {
		return nil, nil, err
	}
	began := time.Now()
	c.run(alg)

	initial, _ := grid.New(width, height, grid.Wall)
	if alg == RecursiveDivision {
		initial.FillInterior(grid.Path)
	}
	o.Logger.Debug("maze steps recorded",
		zap.String("algorithm", string(alg)),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("steps", len(c.steps)),
		zap.Duration("elapsed", time.Since(began)),
	)
	return initial, c.steps, nil
}

// prepare validates input and builds the carver over an all-Wall grid.
func prepare(width, height int, alg Algorithm, record bool, opts []Option) (*carver, Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(width, height); err != nil {
		return nil, o, err
	}
	if !isKnown(alg) {
		return nil, o, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, alg)
	}
	g, err := grid.New(width, height, grid.Wall)
	if err != nil {
		return nil, o, err
	}
	return &carver{g: g, rng: resolveRNG(o), record: record}, o, nil
}

func validate(width, height int) error {
	if width < MinSize || height < MinSize || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func isKnown(alg Algorithm) bool {
	for _, a := range algorithms {
		if a == alg {
			return true
		}
	}
	return false
}

// nodeNeighbors returns the cells two steps away from p that lie inside the
// interior, in the order down, up, right, left.
func nodeNeighbors(g *grid.Grid, p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, 4)
	for _, d := range grid.Offsets() {
		q := grid.Point{X: p.X + 2*d.X, Y: p.Y + 2*d.Y}
		if q.X >= 1 && q.X < g.Width-1 && q.Y >= 1 && q.Y < g.Height-1 {
			out = append(out, q)
		}
	}
	return out
}

// between returns the wall cell separating two nodes two steps apart.
func between(a, b grid.Point) grid.Point {
	return grid.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// nodes lists every odd-coordinate cell in row-major order.
func nodes(g *grid.Grid) []grid.Point {
	out := make([]grid.Point, 0, (g.Width/2)*(g.Height/2))
	for y := 1; y < g.Height; y += 2 {
		for x := 1; x < g.Width; x += 2 {
			out = append(out, grid.Point{X: x, Y: y})
		}
	}
	return out
}
