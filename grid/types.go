// Package grid defines the cell model, coordinates, and sentinel errors
// shared by the generate, replay and search packages.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
)

// Status tags a cell. Only Wall is impassable; every other value is a
// visual refinement of Path layered on top by generation or search.
type Status uint8

const (
	// Wall blocks movement.
	Wall Status = iota
	// Path is an open corridor cell.
	Path
	// Start is the search origin placed by PlaceEndpoints.
	Start
	// End is the search goal placed by PlaceEndpoints.
	End
	// PathFound marks a cell on a solved route.
	PathFound
	// MovedPath marks a cell discovered during a search.
	MovedPath
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case End:
		return "End"
	case PathFound:
		return "PathFound"
	case MovedPath:
		return "MovedPath"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Passable reports whether a cell with this status can be walked through.
func (s Status) Passable() bool {
	return s != Wall
}

// Point is an (X, Y) coordinate; X is the column and Y the row.
type Point struct {
	X, Y int
}

// NoPoint stands for an endpoint that has not been established.
var NoPoint = Point{X: -1, Y: -1}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
// Complexity: O(1).
func (p Point) Manhattan(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent reports whether p and q differ by exactly one axis step.
func (p Point) Adjacent(q Point) bool {
	return p.Manhattan(q) == 1
}

// Cell is one grid position. The cost fields are A*-style bookkeeping
// initialised to +Inf; the cell never updates them itself.
type Cell struct {
	X, Y    int
	Status  Status
	Visited bool
	GCost   float64
	HCost   float64
	FCost   float64
}

// newCell returns a cell at (x,y) with infinite costs.
func newCell(x, y int, s Status) Cell {
	inf := math.Inf(1)
	return Cell{X: x, Y: y, Status: s, GCost: inf, HCost: inf, FCost: inf}
}

// Position returns the cell coordinate.
func (c Cell) Position() Point {
	return Point{X: c.X, Y: c.Y}
}

// Grid is a Width×Height array of cells stored row-major: Cells[y][x].
// A grid is owned by whichever engine call is currently mutating it and
// is not safe for concurrent use.
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}

// offsets lists the four axis moves in probe order: down, up, right, left.
var offsets = [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Offsets returns the four axis-aligned unit moves in probe order.
func Offsets() [4]Point {
	return offsets
}
