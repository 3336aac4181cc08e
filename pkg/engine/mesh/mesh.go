// Package mesh turns a maze grid into static floor and wall quads.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/world"
)

// Material selects the surface a quad is drawn with.
type Material int

const (
	MaterialFloor Material = iota
	MaterialExitFloor
	MaterialWall
)

// String returns the material name
func (m Material) String() string {
	switch m {
	case MaterialFloor:
		return "floor"
	case MaterialExitFloor:
		return "exit_floor"
	case MaterialWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Kind tells floors, blocking walls and doorway lintels apart.
type Kind int

const (
	KindFloor Kind = iota
	KindWall
	// KindLintel is the half-height wall hung above a doorway into the exit.
	// It does not block movement.
	KindLintel
)

// Quad is one rectangle of the level mesh.
type Quad struct {
	Kind     Kind
	Material Material
	// Cell owns the quad; walls face into it.
	Cell world.Cell
	// Side is the face of Cell a wall sits on. Unused for floors.
	Side   world.Direction
	Center mgl32.Vec3
	Normal mgl32.Vec3
	Width  float32
	Height float32
}

// Blocking reports whether the quad stops movement.
func (q Quad) Blocking() bool {
	return q.Kind == KindWall
}

// Corners returns the quad's corners in counter-clockwise order seen from
// the side its normal points to.
func (q Quad) Corners() [4]mgl32.Vec3 {
	var u, v mgl32.Vec3
	if q.Kind == KindFloor {
		u = mgl32.Vec3{q.Width / 2, 0, 0}
		v = mgl32.Vec3{0, 0, -q.Height / 2}
	} else {
		up := mgl32.Vec3{0, 1, 0}
		u = up.Cross(q.Normal).Mul(q.Width / 2)
		v = up.Mul(q.Height / 2)
	}
	c := q.Center
	return [4]mgl32.Vec3{
		c.Sub(u).Sub(v),
		c.Add(u).Sub(v),
		c.Add(u).Add(v),
		c.Sub(u).Add(v),
	}
}

type faceKey struct {
	cell world.Cell
	side world.Direction
}

// Mesh is the static geometry of one level.
type Mesh struct {
	Quads []Quad
	walls map[faceKey]int
}

// Wall returns the wall or lintel on the given face of a cell.
func (m *Mesh) Wall(c world.Cell, side world.Direction) (Quad, bool) {
	i, ok := m.walls[faceKey{c, side}]
	if !ok {
		return Quad{}, false
	}
	return m.Quads[i], true
}

// Count returns the number of quads of a kind
func (m *Mesh) Count(kind Kind) int {
	n := 0
	for _, q := range m.Quads {
		if q.Kind == kind {
			n++
		}
	}
	return n
}

// Vertices returns a flat position buffer, four vertices per quad.
func (m *Mesh) Vertices() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, len(m.Quads)*4)
	for _, q := range m.Quads {
		corners := q.Corners()
		out = append(out, corners[:]...)
	}
	return out
}

// Indices returns two triangles per quad into the Vertices buffer.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Quads)*6)
	for i := range m.Quads {
		base := uint32(i * 4)
		out = append(out, base, base+1, base+2, base, base+2, base+3)
	}
	return out
}

func (m *Mesh) add(q Quad) {
	if q.Kind != KindFloor {
		m.walls[faceKey{q.Cell, q.Side}] = len(m.Quads)
	}
	m.Quads = append(m.Quads, q)
}

// Build emits a floor for every walkable cell and a wall on every face between
// a walkable cell and a closed one. Faces between a walkable cell and the exit
// get a lintel instead, from both sides.
func Build(grid *world.Grid) *Mesh {
	m := &Mesh{walls: make(map[faceKey]int)}

	grid.ForEachCell(func(c world.Cell) {
		exit := grid.IsExit(c)
		if !exit && !grid.IsOpen(c) {
			return
		}

		floor := MaterialFloor
		if exit {
			floor = MaterialExitFloor
		}
		m.add(Quad{
			Kind:     KindFloor,
			Material: floor,
			Cell:     c,
			Center:   grid.CellCenter(c),
			Normal:   mgl32.Vec3{0, 1, 0},
			Width:    world.CellSize,
			Height:   world.CellSize,
		})

		for _, dir := range world.AllDirections() {
			n := c.Neighbor(dir)
			switch {
			case exit && grid.IsOpen(n), grid.IsExit(n):
				m.add(wallQuad(grid, c, dir, KindLintel))
			case !grid.IsOpen(n):
				m.add(wallQuad(grid, c, dir, KindWall))
			}
		}
	})
	return m
}

func wallQuad(grid *world.Grid, c world.Cell, side world.Direction, kind Kind) Quad {
	height := world.WallHeight
	y := world.WallHeight / 2
	if kind == KindLintel {
		height = world.WallHeight / 2
		y = world.WallHeight * 3 / 4
	}
	out := side.Vec()
	center := grid.CellCenter(c).Add(out.Mul(world.CellSize / 2))
	center[1] = y
	return Quad{
		Kind:     kind,
		Material: MaterialWall,
		Cell:     c,
		Side:     side,
		Center:   center,
		Normal:   out.Mul(-1),
		Width:    world.CellSize,
		Height:   height,
	}
}
