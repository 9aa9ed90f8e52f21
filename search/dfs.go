package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/labyrinth/grid"
)

// dfs expands a LIFO stack. Cells are marked visited when pushed, so each
// is pushed at most once. The path found is valid but rarely shortest.
// Complexity: O(W×H).
func (s *solver) dfs() error {
	frontier := stack.New[grid.Point]()
	frontier.Push(s.start)
	visited := mapset.New[grid.Point]()
	visited.Put(s.start)
	parent := make(map[grid.Point]grid.Point)

	for frontier.Size() > 0 {
		if err := s.cancelled(); err != nil {
			return err
		}
		cur := frontier.Pop()
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
			frontier.Push(n)
			s.discover(n)
		}
	}
	return nil
}
