package search

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// frontierItem is a heap entry. Entries are never updated in place: a
// cheaper route pushes a new entry and the stale one is skipped on pop.
type frontierItem struct {
	p    grid.Point
	cost int // accumulated edge count from start
	key  int // priority: cost, plus heuristic for A*
	seq  int // insertion order, breaks key ties
}

func lessItem(a, b frontierItem) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

// bestFirst is the shared body of UCS and A*. h estimates the remaining
// distance to end and must never overestimate it.
// Complexity: O(V log V) with V = W×H.
func (s *solver) bestFirst(h func(grid.Point) int) error {
	pq := heap.New[frontierItem](lessItem)
	seq := 0
	push := func(p grid.Point, cost int) {
		pq.Push(frontierItem{p: p, cost: cost, key: cost + h(p), seq: seq})
		seq++
	}

	closed := mapset.New[grid.Point]()
	best := map[grid.Point]int{s.start: 0}
	parent := make(map[grid.Point]grid.Point)
	push(s.start, 0)

	for pq.Size() > 0 {
		if err := s.cancelled(); err != nil {
			return err
		}
		cur, _ := pq.Pop()
		if closed.Has(cur.p) {
			continue
		}
		closed.Put(cur.p)
		s.res.NodesExpanded++

		if cur.p == s.end {
			s.finish(reversed(chain(parent, cur.p)))
			return nil
		}
		for _, n := range s.g.Neighbors(cur.p) {
			cost := cur.cost + 1
			if closed.Has(n) {
				continue
			}
			if known, ok := best[n]; ok && cost >= known {
				continue
			}
			best[n] = cost
			parent[n] = cur.p
			push(n, cost)
			s.discover(n)
		}
	}
	return nil
}

// ucs orders the frontier by accumulated cost alone.
func (s *solver) ucs() error {
	return s.bestFirst(func(grid.Point) int { return 0 })
}
