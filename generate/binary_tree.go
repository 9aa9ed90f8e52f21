package generate

// binaryTree visits nodes row-major and links each one either up or left,
// choosing at random when both are available. The top row becomes a single
// corridor running left and the left column a corridor running up.
//
// Complexity: O(N).
func (c *carver) binaryTree() {
	for _, p := range nodes(c.g) {
		c.mark(p.X, p.Y, MarkPath)

		up, left := p.Y > 1, p.X > 1
		switch {
		case up && left:
			if c.rng.Intn(2) == 0 {
				c.mark(p.X, p.Y-1, BreakWall)
			} else {
				c.mark(p.X-1, p.Y, BreakWall)
			}
		case up:
			c.mark(p.X, p.Y-1, BreakWall)
		case left:
			c.mark(p.X-1, p.Y, BreakWall)
		}
	}
}
