// Package grid treats a rectangular maze as a 2D array of status-tagged
// cells and provides the operations shared by maze generation and search.
//
// What:
//
//   - Cell carries (X, Y), a Status tag, a visited flag and A*-style costs.
//   - Grid wraps Cells[y][x] with bounds checks and 4-neighbor lookup.
//   - PlaceEndpoints is the post-pass every generator ends with: the first
//     Path cell in row-major order becomes Start, the last becomes End.
//   - ResetAnnotations reverts PathFound/MovedPath markings before a re-solve.
//   - Reachable, Components and Distances flood-fill passable cells.
//   - Clone makes an explicit deep copy, so a "backup" grid never aliases
//     the live one.
//
// Status values:
//
//	Wall=0  Path=1  Start=2  End=3  PathFound=4  MovedPath=5
//
// Only Wall is impassable. The numeric values are stable and are what a
// renderer uses to pick tile art.
//
// Rendering (String):
//
//	#####
//	#S  #
//	### #
//	#  E#
//	#####
//
// Complexity:
//
//   - New, Clone, Fill, PlaceEndpoints, ResetAnnotations: O(W×H).
//   - Reachable, Components, Distances:                     O(W×H), Memory O(W×H).
//   - InBounds, At, Status, Set, Neighbors:                 O(1).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
package grid
