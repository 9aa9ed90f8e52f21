// Package generate builds perfect mazes (spanning trees over the odd-coordinate
// cells of a grid) with five classic algorithms.
//
// What:
//
//   - DFS:               randomized depth-first backtracker (long corridors).
//   - Kruskal:           shuffled wall list merged through a disjoint-set forest.
//   - BinaryTree:        each node links up or left at random (diagonal bias).
//   - Wilson:            loop-erased random walks (uniform spanning tree).
//   - RecursiveDivision: open interior split by walls with one passage each.
//
// Every run finishes with the endpoint post-pass: the first Path cell in
// row-major order becomes Start and the last becomes End.
//
// Geometry:
//
//	Nodes sit on odd (x, y). Walls between nodes sit on the cell halfway
//	between them. Width and height must be odd and at least 5 so the border
//	ring stays Wall.
//
// Animated mode:
//
//	GenerateAnimated runs the same algorithm on a scratch grid and records a
//	Step for each visible change (path, break_wall, build_wall). It returns a
//	grid in the algorithm's initial state (all Wall, or an open interior for
//	RecursiveDivision) and the log. Replaying the log with package replay and
//	placing endpoints reproduces Generate for the same seed, because both
//	modes draw the same random numbers in the same order.
//
// Determinism:
//
//	No global randomness. WithSeed(s) gives a reproducible stream (s == 0 maps
//	to a fixed default); WithRand injects a caller-owned *rand.Rand.
//
// Errors:
//
//   - ErrInvalidDimensions: width/height even or below 5.
//   - ErrInvalidAlgorithm:  unknown Algorithm value or name.
package generate
