// Package generator builds random mazes for levels that ask for one instead
// of shipping a bitmap.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/world"
)

var (
	ErrBadOptions = errors.New("generator: bad options")
	ErrTooSmall   = errors.New("generator: maze too small for the requested parts")
	ErrUnknown    = errors.New("generator: unknown algorithm")
)

// Options controls maze generation. The same options always produce the same maze.
type Options struct {
	Width  int
	Height int
	// Parts is the number of spawn points to place.
	Parts int
	Seed  int64
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(opts Options) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
	BSP        = &BSPGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = BSP

// ByName returns the generator for a descriptor algorithm name; "" means the default.
func ByName(name string) (GridGenerator, error) {
	switch name {
	case "":
		return DefaultGenerator, nil
	case "bsp":
		return BSP, nil
	case "line_walker":
		return LineWalker, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

func (o Options) check(minSize int) error {
	if o.Width < minSize || o.Height < minSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBadOptions, o.Width, o.Height, minSize, minSize)
	}
	if o.Parts < 1 {
		return fmt.Errorf("%w: %d parts", ErrBadOptions, o.Parts)
	}
	return nil
}

// canvas is the open mask a generator carves into. The outer ring stays closed.
type canvas struct {
	width, height int
	open          []bool
	rng           *rand.Rand
}

func newCanvas(opts Options) *canvas {
	return &canvas{
		width:  opts.Width,
		height: opts.Height,
		open:   make([]bool, opts.Width*opts.Height),
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
}

// playable reports whether c is inside the perimeter walls
func (cv *canvas) playable(c world.Cell) bool {
	return c.Col >= 1 && c.Col < cv.width-1 && c.Row >= 1 && c.Row < cv.height-1
}

func (cv *canvas) carve(c world.Cell) {
	if cv.playable(c) {
		cv.open[c.Row*cv.width+c.Col] = true
	}
}

func (cv *canvas) isOpen(c world.Cell) bool {
	return cv.playable(c) && cv.open[c.Row*cv.width+c.Col]
}

// reachable returns the open cells reachable from start in breadth-first order,
// so the last cell is one of the furthest by path length.
func (cv *canvas) reachable(start world.Cell) []world.Cell {
	if !cv.isOpen(start) {
		return nil
	}
	seen := map[world.Cell]bool{start: true}
	order := []world.Cell{start}
	for i := 0; i < len(order); i++ {
		for _, dir := range world.AllDirections() {
			n := order[i].Neighbor(dir)
			if cv.isOpen(n) && !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
	}
	return order
}

// onRing reports whether c is one of the perimeter cells around the playable area
func (cv *canvas) onRing(c world.Cell) bool {
	inBounds := c.Col >= 0 && c.Col < cv.width && c.Row >= 0 && c.Row < cv.height
	return inBounds && !cv.playable(c)
}

// nearestSide returns the direction of the perimeter side closest to c
func (cv *canvas) nearestSide(c world.Cell) world.Direction {
	best, dist := world.North, c.Row
	if d := cv.width - 1 - c.Col; d < dist {
		best, dist = world.East, d
	}
	if d := cv.height - 1 - c.Row; d < dist {
		best, dist = world.South, d
	}
	if c.Col < dist {
		best = world.West
	}
	return best
}

// exitFor picks the perimeter cell for the exit: next to the furthest
// reachable cell that borders the perimeter. When no reachable cell does, a
// straight corridor is dug from the furthest cell to its nearest side and
// returned with the exit.
func (cv *canvas) exitFor(order []world.Cell) (world.Cell, []world.Cell) {
	for i := len(order) - 1; i >= 0; i-- {
		for _, dir := range world.AllDirections() {
			if n := order[i].Neighbor(dir); cv.onRing(n) {
				return n, nil
			}
		}
	}

	far := order[len(order)-1]
	dir := cv.nearestSide(far)
	var corridor []world.Cell
	c := far.Neighbor(dir)
	for !cv.onRing(c) {
		corridor = append(corridor, c)
		c = c.Neighbor(dir)
	}
	return c, corridor
}

// finish places the spawns and the exit and builds the grid. Part 1 spawns at
// start, the exit goes on the perimeter as far along the path order as
// possible, and the other parts are spread evenly along the path order.
func (cv *canvas) finish(start world.Cell, parts int) (*world.Grid, error) {
	order := cv.reachable(start)
	if len(order) <= parts {
		return nil, fmt.Errorf("%w: %d reachable cells for %d parts", ErrTooSmall, len(order), parts)
	}

	exit, corridor := cv.exitFor(order)
	spawns := make([]mgl32.Vec2, parts)
	for i := range spawns {
		c := order[i*(len(order)-1)/parts]
		spawns[i] = mgl32.Vec2{float32(c.Col), float32(c.Row)}
	}

	// Cells outside the reachable set are closed again so every floor cell can
	// be walked to. The exit stays a wall pixel; the grid opens it.
	open := make([]bool, len(cv.open))
	for _, c := range order {
		open[c.Row*cv.width+c.Col] = true
	}
	for _, c := range corridor {
		open[c.Row*cv.width+c.Col] = true
	}
	return world.NewGrid(cv.width, cv.height, open, exit, spawns)
}
