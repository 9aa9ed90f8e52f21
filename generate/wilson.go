package generate

import (
	"github.com/katalvlaran/labyrinth/grid"
)

// wilson seeds the tree with one random node, then repeatedly runs a
// loop-erased random walk from a random node outside the tree until the
// walk touches the tree, and carves the walk.
//
// Steps: path for the seed, then (path, break_wall) per carved walk edge.
// Complexity: expected O(N·log N) walk steps on a grid.
func (c *carver) wilson() {
	all := nodes(c.g)
	seed := pick(c.rng, all)
	c.mark(seed.X, seed.Y, MarkPath)

	remaining := make([]grid.Point, 0, len(all)-1)
	for _, p := range all {
		if p != seed {
			remaining = append(remaining, p)
		}
	}

	for len(remaining) > 0 {
		cur := pick(c.rng, remaining)
		walk := []grid.Point{cur}
		index := map[grid.Point]int{cur: 0}

		for c.g.Status(cur) != grid.Path {
			next := pick(c.rng, nodeNeighbors(c.g, cur))
			if i, ok := index[next]; ok {
				for _, dropped := range walk[i+1:] {
					delete(index, dropped)
				}
				walk = walk[:i+1]
			} else {
				index[next] = len(walk)
				walk = append(walk, next)
			}
			cur = next
		}

		for i := 0; i+1 < len(walk); i++ {
			a, b := walk[i], walk[i+1]
			c.mark(a.X, a.Y, MarkPath)
			w := between(a, b)
			c.mark(w.X, w.Y, BreakWall)
		}

		kept := remaining[:0]
		for _, p := range remaining {
			if c.g.Status(p) != grid.Path {
				kept = append(kept, p)
			}
		}
		remaining = kept
	}
}
