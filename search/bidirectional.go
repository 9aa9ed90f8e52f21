package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// side is one breadth-first frontier of a bidirectional search.
type side struct {
	queue   []grid.Point
	visited mapset.Set[grid.Point]
	parent  map[grid.Point]grid.Point
}

func newSide(root grid.Point) *side {
	sd := &side{
		queue:   []grid.Point{root},
		visited: mapset.New[grid.Point](),
		parent:  make(map[grid.Point]grid.Point),
	}
	sd.visited.Put(root)
	return sd
}

// bidirectional alternates one expansion from the start side and one from
// the end side. A side that pops a cell already seen by the other side
// stops, and the path is stitched through that meeting cell.
// Complexity: O(W×H).
func (s *solver) bidirectional() error {
	fwd, bwd := newSide(s.start), newSide(s.end)

	for len(fwd.queue) > 0 || len(bwd.queue) > 0 {
		if err := s.cancelled(); err != nil {
			return err
		}
		if meet, ok := s.expand(fwd, bwd); ok {
			s.finish(stitch(fwd, bwd, meet))
			return nil
		}
		if meet, ok := s.expand(bwd, fwd); ok {
			s.finish(stitch(fwd, bwd, meet))
			return nil
		}
	}
	return nil
}

// expand pops one cell from `from`. It returns that cell and true when
// `other` has already seen it; otherwise it enqueues unseen neighbors.
func (s *solver) expand(from, other *side) (grid.Point, bool) {
	if len(from.queue) == 0 {
		return grid.NoPoint, false
	}
	cur := from.queue[0]
	from.queue = from.queue[1:]
	s.res.NodesExpanded++

	if other.visited.Has(cur) {
		return cur, true
	}
	for _, n := range s.g.Neighbors(cur) {
		if from.visited.Has(n) {
			continue
		}
		from.visited.Put(n)
		from.parent[n] = cur
		from.queue = append(from.queue, n)
		s.discover(n)
	}
	return grid.NoPoint, false
}

// stitch joins start→meet with the cells after meet on the way to end.
func stitch(fwd, bwd *side, meet grid.Point) []grid.Point {
	path := reversed(chain(fwd.parent, meet))
	if next, ok := bwd.parent[meet]; ok {
		path = append(path, chain(bwd.parent, next)...)
	}
	return path
}
