package generate

import (
	"github.com/katalvlaran/labyrinth/grid"
)

// wallEdge joins two nodes that sit two cells apart.
type wallEdge struct {
	a, b grid.Point
}

// forest is a disjoint-set over node coordinates, scoped to one run.
// find halves paths as it walks; union attaches the shallower tree.
type forest struct {
	parent map[grid.Point]grid.Point
	rank   map[grid.Point]int
}

func newForest(size int) *forest {
	return &forest{
		parent: make(map[grid.Point]grid.Point, size),
		rank:   make(map[grid.Point]int, size),
	}
}

func (f *forest) add(p grid.Point) {
	f.parent[p] = p
}

func (f *forest) find(p grid.Point) grid.Point {
	for f.parent[p] != p {
		f.parent[p] = f.parent[f.parent[p]]
		p = f.parent[p]
	}
	return p
}

// union merges the sets of a and b and reports whether they were distinct.
func (f *forest) union(a, b grid.Point) bool {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return false
	}
	switch {
	case f.rank[ra] < f.rank[rb]:
		f.parent[ra] = rb
	case f.rank[ra] > f.rank[rb]:
		f.parent[rb] = ra
	default:
		f.parent[rb] = ra
		f.rank[ra]++
	}
	return true
}

// kruskal opens every node, shuffles the candidate walls, and breaks each
// wall whose endpoints are still in different sets.
//
// Steps: path for each node in row-major order, then break_wall per union.
// Complexity: O(E·α(N)) after an O(E) shuffle, E ≈ 2N.
func (c *carver) kruskal() {
	all := nodes(c.g)
	sets := newForest(len(all))
	walls := make([]wallEdge, 0, 2*len(all))
	for _, p := range all {
		c.mark(p.X, p.Y, MarkPath)
		sets.add(p)
		if p.X+2 < c.g.Width {
			walls = append(walls, wallEdge{a: p, b: grid.Point{X: p.X + 2, Y: p.Y}})
		}
		if p.Y+2 < c.g.Height {
			walls = append(walls, wallEdge{a: p, b: grid.Point{X: p.X, Y: p.Y + 2}})
		}
	}

	shuffle(c.rng, walls)

	for _, e := range walls {
		if !sets.union(e.a, e.b) {
			continue
		}
		w := between(e.a, e.b)
		c.mark(w.X, w.Y, BreakWall)
	}
}
