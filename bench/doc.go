// Package bench races the search algorithms over freshly generated mazes and
// summarizes their cost.
//
// For every run in a config.Plan and every repeat, Runner generates a maze
// (seed = plan seed + repeat index), clones it once per solver and solves
// the clone. Each solve becomes a Sample. Summaries give mean, median, 95th
// percentile and max solve time in microseconds together with mean nodes
// expanded and path length.
//
// Each repeat is also cross-checked: BFS, UCS and A* are all optimal, so
// when more than one of them ran their path lengths must agree. A mismatch
// aborts the session with ErrInconsistent.
package bench
