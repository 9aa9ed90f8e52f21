package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// bfs expands a FIFO queue; the first dequeue of end yields a shortest path.
// Complexity: O(W×H).
func (s *solver) bfs() error {
	queue := []grid.Point{s.start}
	visited := mapset.New[grid.Point]()
	visited.Put(s.start)
	parent := make(map[grid.Point]grid.Point)

	for len(queue) > 0 {
		if err := s.cancelled(); err != nil {
			return err
		}
		cur := queue[0]
		queue = queue[1:]
		s.res.NodesExpanded++

		if cur == s.end {
			s.finish(reversed(chain(parent, cur)))
			return nil
		}
		for _, n := range s.g.Neighbors(cur) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			parent[n] = cur
			queue = append(queue, n)
			s.discover(n)
		}
	}
	return nil
}
