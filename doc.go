// Package labyrinth generates perfect mazes and solves them, leaving a
// visual trace a renderer can draw.
//
// What is inside?
//
//	grid/      status-tagged cell grid, flood fill, endpoint placement, ASCII view
//	generate/  DFS, Kruskal, Binary Tree, Wilson and Recursive Division
//	            generators, with an animated mode that records a step log
//	replay/    cursor over a step log, applied a few steps per frame
//	search/    BFS, DFS, UCS, A* and bidirectional search with metrics
//	config/    YAML run plans with .env and MAZE_* overrides
//	bench/     repeated generate+solve sessions and timing statistics
//	cmd/mazebench  command-line driver for config + bench
//
// Quick start:
//
//	g, _ := generate.Generate(25, 19, generate.Kruskal, generate.WithSeed(7))
//	res, _ := search.SolveGrid(g, search.AStar)
//	fmt.Println(res.Found, res.PathLength())
//	fmt.Print(g)
//
// Every engine call is synchronous and owns the grid it mutates for its
// duration. Randomness is always injected (seed or *rand.Rand), so the same
// seed yields the same maze in direct and animated mode alike.
package labyrinth
