// Package search finds a route between the Start and End cells of a maze
// grid with five classic strategies and leaves a visual trace on the grid.
//
// What:
//
//   - BFS:           FIFO frontier, shortest path in edges.
//   - DFS:           LIFO frontier, some path.
//   - UCS:           binary heap keyed by cost, stale entries skipped lazily.
//   - A*:            binary heap keyed by cost + Manhattan distance.
//   - Bidirectional: two BFS frontiers taking turns, joined where they meet.
//
// Neighbors are the four axis-adjacent cells whose status is not Wall, probed
// down, up, right, left. Every move costs 1.
//
// Side effects on the grid:
//
//  1. Reset: PathFound/MovedPath cells from an earlier solve revert to
//     Start, End or Path, so solving twice gives the same Result.
//  2. Discovery: each newly reached cell other than the endpoints becomes
//     MovedPath and is appended to Result.Visited.
//  3. Success: path cells between the endpoints become PathFound.
//
// Heap ties are broken by insertion order, so runs are reproducible.
//
// Errors:
//
//   - ErrNilGrid:          grid is nil.
//   - ErrMissingEndpoints: start or end is NoPoint or outside the grid.
//   - ErrInvalidAlgorithm: unknown name.
//   - context errors:      WithContext was cancelled mid-run.
//
// A search that exhausts its frontier returns Found=false and a nil error.
package search
