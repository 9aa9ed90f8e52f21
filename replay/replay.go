package replay

import (
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
)

// Replayer walks a cursor over a step log, mutating its target grid.
// It is not safe for concurrent use.
type Replayer struct {
	target *grid.Grid
	steps  []generate.Step
	cursor int
}

// New returns a replayer positioned at the first step. The replayer owns
// target for its lifetime; steps are not copied.
func New(target *grid.Grid, steps []generate.Step) *Replayer {
	return &Replayer{target: target, steps: steps}
}

// ApplyNext applies the step at the cursor, advances, and reports whether
// more steps remain. Past the end it does nothing and returns false.
// Steps outside the grid advance the cursor without touching any cell.
func (r *Replayer) ApplyNext() bool {
	if r.cursor >= len(r.steps) {
		return false
	}
	st := r.steps[r.cursor]
	r.target.Set(st.Point(), st.Action.Status())
	r.cursor++
	return r.cursor < len(r.steps)
}

// ApplyN applies up to n steps and returns how many were applied.
func (r *Replayer) ApplyN(n int) int {
	applied := 0
	for applied < n && r.cursor < len(r.steps) {
		r.ApplyNext()
		applied++
	}
	return applied
}

// Finish applies every remaining step, then places Start and End.
// ok is false when the finished grid has fewer than two Path cells.
func (r *Replayer) Finish() (start, end grid.Point, ok bool) {
	r.ApplyN(len(r.steps) - r.cursor)
	return r.target.PlaceEndpoints()
}

// Cursor is the index of the next step to apply.
func (r *Replayer) Cursor() int { return r.cursor }

// Len is the total number of steps.
func (r *Replayer) Len() int { return len(r.steps) }

// Remaining is the number of steps not yet applied.
func (r *Replayer) Remaining() int { return len(r.steps) - r.cursor }

// Done reports whether every step has been applied.
func (r *Replayer) Done() bool { return r.cursor >= len(r.steps) }

// Grid returns the target grid.
func (r *Replayer) Grid() *grid.Grid { return r.target }
