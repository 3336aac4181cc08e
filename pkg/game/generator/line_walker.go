package generator

import (
	"mazeparts/pkg/engine/world"
)

// LineWalkerGenerator generates mazes by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// lineWalkerMinGrid leaves at least a 3x3 playable area
const lineWalkerMinGrid = 5

// Generate creates a new grid of corridors walked out from the centre
func (g *LineWalkerGenerator) Generate(opts Options) (*world.Grid, error) {
	if err := opts.check(lineWalkerMinGrid); err != nil {
		return nil, err
	}
	cv := newCanvas(opts)

	// Start in the center (which is always in playable area)
	start := world.Cell{Col: opts.Width / 2, Row: opts.Height / 2}
	cv.carve(start)

	// Larger mazes get longer corridors and more branches
	size := min(opts.Width, opts.Height)
	branchProb := float32(0.25) + float32(size)*0.01
	if branchProb > 0.65 {
		branchProb = 0.65
	}
	minDist := 2 + size/8
	maxDist := 4 + size/4

	// Build main corridors in all four directions
	for _, dir := range world.AllDirections() {
		g.buildLine(cv, start, dir, branchProb, minDist, maxDist)
	}

	// Extra corridors from near the centre, scaled with the area
	extra := opts.Width * opts.Height / 100
	for i := 0; i < extra; i++ {
		c := start.Offset(cv.rng.Intn(5)-2, cv.rng.Intn(5)-2)
		if cv.isOpen(c) {
			g.buildLine(cv, c, g.randomDirection(cv), branchProb, minDist, maxDist)
		}
	}

	return cv.finish(start, opts.Parts)
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection(cv *canvas) world.Direction {
	return world.Direction(cv.rng.Intn(4))
}

// buildLine opens a line of cells starting from c in the given direction,
// branching at random. Cells are only opened inside the perimeter walls.
func (g *LineWalkerGenerator) buildLine(cv *canvas, c world.Cell, dir world.Direction, branchProbability float32, minDist, maxDist int) world.Cell {
	if !dir.IsValid() {
		dir = g.randomDirection(cv)
	}

	distance := minDist + cv.rng.Intn(maxDist-minDist+1)

	for segment := 0; segment < distance; segment++ {
		cv.carve(c)

		// If the next cell would be outside playable area, stop here
		next := c.Neighbor(dir)
		if !cv.playable(next) {
			return c
		}

		if cv.rng.Float32() < branchProbability {
			g.buildLine(cv, c, g.randomDirection(cv), branchProbability-.1, minDist, maxDist)
		}
		c = next
	}

	cv.carve(c)
	return c
}
