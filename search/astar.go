package search

import "github.com/katalvlaran/labyrinth/grid"

// astar orders the frontier by cost plus Manhattan distance to end, which
// is admissible for unit-cost 4-connected moves.
func (s *solver) astar() error {
	return s.bestFirst(func(p grid.Point) int { return p.Manhattan(s.end) })
}
