// Package collision resolves actor movement against the maze grid one cell at
// a time, separating the X and Z axes so actors slide along walls.
package collision

import (
	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/world"
)

// ExitCrossing is raised when a move carries the actor's edge over the
// boundary of the exit cell.
type ExitCrossing struct {
	From world.Cell
	Exit world.Cell
}

// Result is the corrected movement for one step.
type Result struct {
	Delta    mgl32.Vec3
	Crossing *ExitCrossing
}

// Resolver checks movement of a round actor against a grid.
type Resolver struct {
	grid   *world.Grid
	radius float32
}

// NewResolver creates a resolver for actors of world.ActorRadius.
func NewResolver(grid *world.Grid) *Resolver {
	return &Resolver{grid: grid, radius: world.ActorRadius}
}

// Grid returns the grid the resolver queries
func (r *Resolver) Grid() *world.Grid {
	return r.grid
}

// Resolve corrects delta so the actor at pos never pushes its edge into a
// closed cell. Each component of delta must stay below CellSize/2 - radius.
//
// The Z axis is checked first. Before the X axis, if both axes are about to
// cross a boundary, the diagonal cell is checked and the axis with the larger
// attempted movement is dropped when it is closed. On equal magnitudes Z is
// dropped and X kept.
func (r *Resolver) Resolve(pos, delta mgl32.Vec3) Result {
	res := Result{Delta: delta}
	cell, lx, lz := r.grid.Local(pos)
	rad := r.radius / world.CellSize
	dx := delta.X() / world.CellSize
	dz := delta.Z() / world.CellSize

	stepZ := edgeStep(lz, dz, rad)
	if stepZ != 0 {
		n := cell.Offset(0, stepZ)
		if !r.grid.IsOpen(n) {
			res.Delta[2] = 0
			stepZ = 0
		} else if r.grid.IsExit(n) && !beyond(lz, stepZ, rad) {
			res.Crossing = &ExitCrossing{From: cell, Exit: n}
		}
	}

	stepX := edgeStep(lx, dx, rad)
	if stepX != 0 && stepZ != 0 {
		n := cell.Offset(stepX, stepZ)
		if !r.grid.IsOpen(n) {
			if abs(dx) > abs(dz) {
				res.Delta[0] = 0
				stepX = 0
			} else {
				res.Delta[2] = 0
				res.Crossing = nil
			}
		} else if r.grid.IsExit(n) && !(beyond(lx, stepX, rad) && beyond(lz, stepZ, rad)) {
			res.Crossing = &ExitCrossing{From: cell, Exit: n}
		}
	}

	if stepX != 0 {
		n := cell.Offset(stepX, 0)
		if !r.grid.IsOpen(n) {
			res.Delta[0] = 0
		} else if r.grid.IsExit(n) && !beyond(lx, stepX, rad) {
			res.Crossing = &ExitCrossing{From: cell, Exit: n}
		}
	}
	return res
}

// edgeStep returns the direction (-1, 0 or 1) in which the actor's edge
// leaves its cell after moving by d from local offset l.
func edgeStep(l, d, rad float32) int {
	switch {
	case d > 0 && l+d+rad > 0.5:
		return 1
	case d < 0 && l+d-rad < -0.5:
		return -1
	default:
		return 0
	}
}

// beyond reports whether the edge already overlapped the neighbour before moving.
func beyond(l float32, step int, rad float32) bool {
	if step > 0 {
		return l+rad > 0.5
	}
	return l-rad < -0.5
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
