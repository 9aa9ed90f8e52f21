package generate

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/labyrinth/grid"
)

// region is a rectangle of interior cells still to be divided.
type region struct {
	x, y, width, height int
}

// recursiveDivision opens the whole interior and then splits regions with
// full-length walls, each punctured by one passage. Regions are kept on an
// explicit work stack so deep subdivisions never grow the call stack.
//
// Orientation: horizontal needs height ≥ 3, vertical needs width ≥ 3; when
// both fit one is chosen at random. A region narrower or shorter than 2 is
// final. Walls land on even coordinates and holes on odd ones, so every
// wall cut keeps both halves connected through exactly one gap.
//
// Steps: build_wall for each wall cell, then break_wall for the hole.
// Complexity: O(W×H) cell writes in total.
func (c *carver) recursiveDivision() {
	c.g.FillInterior(grid.Path)

	work := stack.New[region]()
	work.Push(region{x: 1, y: 1, width: c.g.Width - 2, height: c.g.Height - 2})
	for work.Size() > 0 {
		r := work.Pop()
		if r.width < 2 || r.height < 2 {
			continue
		}

		horizontal, vertical := r.height >= 3, r.width >= 3
		if horizontal && vertical {
			horizontal = c.rng.Intn(2) == 0
		}

		// Sub-regions are pushed second-half first so the first half is
		// carved first, matching depth-first recursion order.
		switch {
		case horizontal:
			wallY := r.y + oddOffset(c, r.height)
			for x := r.x; x < r.x+r.width; x++ {
				c.mark(x, wallY, BuildWall)
			}
			holeX := r.x + evenOffset(c, r.width)
			c.mark(holeX, wallY, BreakWall)

			work.Push(region{x: r.x, y: wallY + 1, width: r.width, height: r.height - (wallY - r.y + 1)})
			work.Push(region{x: r.x, y: r.y, width: r.width, height: wallY - r.y})
		case vertical:
			wallX := r.x + oddOffset(c, r.width)
			for y := r.y; y < r.y+r.height; y++ {
				c.mark(wallX, y, BuildWall)
			}
			holeY := r.y + evenOffset(c, r.height)
			c.mark(wallX, holeY, BreakWall)

			work.Push(region{x: wallX + 1, y: r.y, width: r.width - (wallX - r.x + 1), height: r.height})
			work.Push(region{x: r.x, y: r.y, width: wallX - r.x, height: r.height})
		}
	}
}

// oddOffset returns a random odd value in [1, n). n must be ≥ 2.
func oddOffset(c *carver, n int) int {
	return 1 + 2*c.rng.Intn(n/2)
}

// evenOffset returns a random even value in [0, n). Offsets from an odd
// region origin are odd coordinates, which never hit a perpendicular wall.
func evenOffset(c *carver, n int) int {
	return 2 * c.rng.Intn((n+1)/2)
}
