package grid

import (
	"fmt"
	"strings"
)

// New constructs a width×height grid with every cell set to fill.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, fill Status) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		for x := 0; x < width; x++ {
			row[x] = newCell(x, y, fill)
		}
		cells[y] = row
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsBorder reports whether p is on the outermost ring.
func (g *Grid) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1
}

// At returns a pointer to the cell at p. p must be in bounds.
func (g *Grid) At(p Point) *Cell {
	return &g.Cells[p.Y][p.X]
}

// Status returns the status at p, or Wall when p is out of bounds.
func (g *Grid) Status(p Point) Status {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Cells[p.Y][p.X].Status
}

// Set overwrites the status at p. Out-of-bounds points are ignored.
func (g *Grid) Set(p Point, s Status) {
	if g.InBounds(p) {
		g.Cells[p.Y][p.X].Status = s
	}
}

// Passable reports whether p is in bounds and not a Wall.
func (g *Grid) Passable(p Point) bool {
	return g.Status(p).Passable()
}

// Fill sets every cell to s.
func (g *Grid) Fill(s Status) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x].Status = s
		}
	}
}

// FillInterior sets the border ring to Wall and every other cell to s.
func (g *Grid) FillInterior(s Status) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.IsBorder(Point{X: x, Y: y}) {
				g.Cells[y][x].Status = Wall
			} else {
				g.Cells[y][x].Status = s
			}
		}
	}
}

// Neighbors returns the passable axis-adjacent cells of p in probe order.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range offsets {
		q := p.Add(d)
		if g.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep copy of g. Mutating the copy never affects g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := 0; y < g.Height; y++ {
		cells[y] = make([]Cell, g.Width)
		copy(cells[y], g.Cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports whether g and other have the same dimensions and statuses.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].Status != other.Cells[y][x].Status {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells carry status s.
func (g *Grid) Count(s Status) int {
	n := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].Status == s {
				n++
			}
		}
	}
	return n
}

// PlaceEndpoints turns the first Path cell in row-major order into Start
// and the last Path cell in reverse row-major order into End.
// ok is false when the grid holds fewer than two Path cells; in that case
// nothing is changed.
// Complexity: O(W×H) worst case.
func (g *Grid) PlaceEndpoints() (start, end Point, ok bool) {
	start, end = NoPoint, NoPoint
scanForward:
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].Status == Path {
				start = Point{X: x, Y: y}
				break scanForward
			}
		}
	}
scanBackward:
	for y := g.Height - 1; y >= 0; y-- {
		for x := g.Width - 1; x >= 0; x-- {
			if g.Cells[y][x].Status == Path {
				end = Point{X: x, Y: y}
				break scanBackward
			}
		}
	}
	if start == NoPoint || end == NoPoint || start == end {
		return NoPoint, NoPoint, false
	}
	g.Set(start, Start)
	g.Set(end, End)
	return start, end, true
}

// FindEndpoints locates the Start and End cells. Missing endpoints are
// reported as NoPoint.
func (g *Grid) FindEndpoints() (start, end Point) {
	start, end = NoPoint, NoPoint
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.Cells[y][x].Status {
			case Start:
				start = Point{X: x, Y: y}
			case End:
				end = Point{X: x, Y: y}
			}
		}
	}
	return start, end
}

// ResetAnnotations reverts search markings: every PathFound or MovedPath
// cell becomes Start or End when it sits on those coordinates, Path
// otherwise. It returns the number of cells restored.
func (g *Grid) ResetAnnotations(start, end Point) int {
	restored := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := &g.Cells[y][x]
			if c.Status != PathFound && c.Status != MovedPath {
				continue
			}
			switch p := (Point{X: x, Y: y}); p {
			case start:
				c.Status = Start
			case end:
				c.Status = End
			default:
				c.Status = Path
			}
			restored++
		}
	}
	return restored
}

// glyphs maps statuses to their ASCII rendering.
var glyphs = map[Status]byte{
	Wall:      '#',
	Path:      ' ',
	Start:     'S',
	End:       'E',
	PathFound: '*',
	MovedPath: '.',
}

// String renders the grid one text row per grid row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			ch, ok := glyphs[g.Cells[y][x].Status]
			if !ok {
				ch = '?'
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
