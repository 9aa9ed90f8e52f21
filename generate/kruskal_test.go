package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/grid"
)

func TestForest(t *testing.T) {
	a, b, c, d := grid.Point{X: 1, Y: 1}, grid.Point{X: 3, Y: 1}, grid.Point{X: 1, Y: 3}, grid.Point{X: 3, Y: 3}
	f := newForest(4)
	for _, p := range []grid.Point{a, b, c, d} {
		f.add(p)
	}
	assert.True(t, f.union(a, b))
	assert.True(t, f.union(c, d))
	assert.False(t, f.union(b, a))
	assert.NotEqual(t, f.find(a), f.find(d))
	assert.True(t, f.union(b, d))
	assert.Equal(t, f.find(a), f.find(c))
	assert.False(t, f.union(a, d))
}

func TestNodeNeighbors_StayInterior(t *testing.T) {
	g, _ := grid.New(7, 5, grid.Wall)
	assert.Equal(t, []grid.Point{{X: 1, Y: 3}, {X: 3, Y: 1}}, nodeNeighbors(g, grid.Point{X: 1, Y: 1}))
	assert.Equal(t, []grid.Point{{X: 5, Y: 1}, {X: 3, Y: 3}}, nodeNeighbors(g, grid.Point{X: 5, Y: 3}))
}

func TestOffsets_Parity(t *testing.T) {
	c := &carver{rng: rngFromSeed(5)}
	for i := 0; i < 200; i++ {
		n := 3 + 2*(i%6)
		o := oddOffset(c, n)
		assert.True(t, o%2 == 1 && o >= 1 && o < n, "odd offset %d for %d", o, n)
		e := evenOffset(c, n)
		assert.True(t, e%2 == 0 && e >= 0 && e < n, "even offset %d for %d", e, n)
	}
}
