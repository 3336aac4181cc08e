package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World-unit constants shared by collision, raycasting and mesh generation.
// Changing any of them changes both what is drawn and what blocks movement.
const (
	CellSize    float32 = 1.0
	ActorRadius float32 = 0.125
	// ActorHeight is the Y coordinate of every character and of the free-look rig.
	ActorHeight float32 = 0.25
	WallHeight  float32 = 1.0
)

var (
	ErrBadDimensions    = errors.New("world: grid dimensions must be positive")
	ErrBadBitmap        = errors.New("world: bitmap size does not match dimensions")
	ErrExitOutOfBounds  = errors.New("world: exit cell out of bounds")
	ErrNoSpawns         = errors.New("world: level has no spawn points")
	ErrSpawnOutOfBounds = errors.New("world: spawn point out of bounds")
)

// Grid is the immutable traversability field of a maze level.
type Grid struct {
	width  int
	height int
	open   []bool

	exit   Cell
	spawns []mgl32.Vec2
}

// NewGrid builds a grid from a row-major open mask. The exit is given in cells,
// spawns in grid-relative coordinates (1.0 = one cell, cell centres on integers).
func NewGrid(width, height int, open []bool, exit Cell, spawns []mgl32.Vec2) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if len(open) != width*height {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrBadBitmap, len(open), width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		open:   append([]bool(nil), open...),
		exit:   exit,
		spawns: append([]mgl32.Vec2(nil), spawns...),
	}

	if !g.InBounds(exit) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrExitOutOfBounds, exit, width, height)
	}
	if len(spawns) == 0 {
		return nil, ErrNoSpawns
	}
	for i, s := range spawns {
		if s.X() < -0.5 || s.Y() < -0.5 || s.X() >= float32(width)-0.5 || s.Y() >= float32(height)-0.5 {
			return nil, fmt.Errorf("%w: spawn %d at %v", ErrSpawnOutOfBounds, i, s)
		}
	}
	return g, nil
}

// FromBitmap builds a grid from a maze bitmap: pixels above WallThreshold are walls.
func FromBitmap(b Bitmap, exit Cell, spawns []mgl32.Vec2) (*Grid, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return nil, ErrBadDimensions
	}
	if len(b.Pix) != b.Width*b.Height {
		return nil, fmt.Errorf("%w: got %d pixels for %dx%d", ErrBadBitmap, len(b.Pix), b.Width, b.Height)
	}
	open := make([]bool, len(b.Pix))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			open[y*b.Width+x] = b.At(x, y) <= WallThreshold
		}
	}
	return NewGrid(b.Width, b.Height, open, exit, spawns)
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Exit returns the exit cell
func (g *Grid) Exit() Cell {
	return g.exit
}

// Spawns returns a copy of the grid-relative spawn points, in spawn order
func (g *Grid) Spawns() []mgl32.Vec2 {
	return append([]mgl32.Vec2(nil), g.spawns...)
}

// InBounds checks if a cell is inside the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// IsExit reports whether c is the exit cell
func (g *Grid) IsExit(c Cell) bool {
	return c == g.exit
}

// IsOpen reports whether a cell can be walked on. Cells outside the grid are
// closed and the exit cell is always open, whatever its bitmap pixel says.
func (g *Grid) IsOpen(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	if c == g.exit {
		return true
	}
	return g.open[c.Row*g.width+c.Col]
}

// IsMarkedOpen returns the raw bitmap value for a cell, ignoring the exit override.
func (g *Grid) IsMarkedOpen(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.open[c.Row*g.width+c.Col]
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Cell)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(Cell{Col: col, Row: row})
		}
	}
}

// gridCoords converts a world position into continuous grid coordinates
// where cell centres sit on integers.
func (g *Grid) gridCoords(p mgl32.Vec3) (gx, gz float64) {
	gx = float64(p.X()/CellSize) + float64(g.width-1)/2
	gz = float64(p.Z()/CellSize) + float64(g.height-1)/2
	return gx, gz
}

// ToCell maps a world position to the nearest grid cell.
func (g *Grid) ToCell(p mgl32.Vec3) Cell {
	c, _, _ := g.Local(p)
	return c
}

// Local returns the cell containing p together with p's offset from that
// cell's centre, in cell units. Offsets lie in [-0.5, 0.5].
func (g *Grid) Local(p mgl32.Vec3) (c Cell, lx, lz float32) {
	gx, gz := g.gridCoords(p)
	col := math.Round(gx)
	row := math.Round(gz)
	return Cell{Col: int(col), Row: int(row)}, float32(gx - col), float32(gz - row)
}

// GridToWorld converts grid-relative coordinates into a world position at actor height.
func (g *Grid) GridToWorld(v mgl32.Vec2) mgl32.Vec3 {
	x := (v.X() - float32(g.width-1)/2) * CellSize
	z := (v.Y() - float32(g.height-1)/2) * CellSize
	return mgl32.Vec3{x, ActorHeight, z}
}

// CellCenter returns the world position of a cell's centre at floor level.
func (g *Grid) CellCenter(c Cell) mgl32.Vec3 {
	p := g.GridToWorld(mgl32.Vec2{float32(c.Col), float32(c.Row)})
	return mgl32.Vec3{p.X(), 0, p.Z()}
}

// SpawnPosition returns the world position of spawn i.
func (g *Grid) SpawnPosition(i int) mgl32.Vec3 {
	return g.GridToWorld(g.spawns[i])
}
