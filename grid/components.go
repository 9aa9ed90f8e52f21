package grid

// Reachable returns every passable cell connected to from through
// axis-adjacent passable cells, in breadth-first discovery order.
// Returns nil when from is out of bounds or a Wall.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Reachable(from Point) []Point {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, g.Width*g.Height)
	seen[g.index(from)] = true
	queue := []Point{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, q := range g.Neighbors(queue[qi]) {
			i := g.index(q)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}
	return queue
}

// Components finds all contiguous regions of passable cells.
// Components are ordered by their first cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) Components() [][]Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.Passable(p) || seen[g.index(p)] {
				continue
			}
			comp := g.Reachable(p)
			for _, q := range comp {
				seen[g.index(q)] = true
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Distances returns the breadth-first edge count from `from` to every
// reachable cell, or -1 for unreachable cells, indexed as [y][x].
// Complexity: O(W·H).
func (g *Grid) Distances(from Point) [][]int {
	dist := make([][]int, g.Height)
	for y := range dist {
		dist[y] = make([]int, g.Width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	if !g.Passable(from) {
		return dist
	}
	dist[from.Y][from.X] = 0
	queue := []Point{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if dist[v.Y][v.X] < 0 {
				dist[v.Y][v.X] = dist[u.Y][u.X] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
