package generate

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/labyrinth/grid"
)

// dfs is the randomized backtracker: from the top of the stack, move to a
// random unvisited wall node two cells away, opening the wall between, and
// pop when no such node exists.
//
// Steps: path(1,1), then (break_wall, path) per advance.
// Complexity: O(N) pushes and pops for N nodes.
func (c *carver) dfs() {
	origin := grid.Point{X: 1, Y: 1}
	visited := mapset.New[grid.Point]()
	visited.Put(origin)
	c.mark(origin.X, origin.Y, MarkPath)

	frontier := stack.New[grid.Point]()
	frontier.Push(origin)
	candidates := make([]grid.Point, 0, 4)
	for frontier.Size() > 0 {
		cur := frontier.Peek()

		candidates = candidates[:0]
		for _, n := range nodeNeighbors(c.g, cur) {
			if !visited.Has(n) && c.g.Status(n) == grid.Wall {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			frontier.Pop()
			continue
		}

		next := pick(c.rng, candidates)
		visited.Put(next)
		w := between(cur, next)
		c.mark(w.X, w.Y, BreakWall)
		c.mark(next.X, next.Y, MarkPath)
		frontier.Push(next)
	}
}
