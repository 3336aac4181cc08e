package world

import "github.com/go-gl/mathgl/mgl32"

// raycastStep is the marching distance between samples along a ray.
const raycastStep = CellSize / 64

// Hit describes where a ray meets the maze.
type Hit struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
	Cell   Cell
	Floor  bool
}

// Raycast marches a ray from origin along dir until it meets the floor plane
// or a closed cell, giving up after maxDist. Walls only block below WallHeight.
func Raycast(grid *Grid, origin, dir mgl32.Vec3, maxDist float32) (Hit, bool) {
	if grid == nil || dir.Len() == 0 || maxDist <= 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()
	prev := grid.ToCell(origin)

	for t := raycastStep; t <= maxDist+raycastStep/2; t += raycastStep {
		if t > maxDist {
			t = maxDist
		}
		p := origin.Add(dir.Mul(t))

		if p.Y() <= 0 && dir.Y() < 0 {
			tf := -origin.Y() / dir.Y()
			fp := origin.Add(dir.Mul(tf))
			fp[1] = 0
			cell := grid.ToCell(fp)
			if grid.IsOpen(cell) {
				return Hit{Point: fp, Normal: mgl32.Vec3{0, 1, 0}, Cell: cell, Floor: true}, true
			}
		}
		if p.Y() >= WallHeight {
			return Hit{}, false
		}

		c := grid.ToCell(p)
		if c == prev {
			continue
		}
		if grid.IsOpen(c) {
			prev = c
			continue
		}
		return wallHit(grid, origin, dir, prev, c), true
	}
	return Hit{}, false
}

// wallHit resolves which face of the closed cell the ray entered through and
// projects the ray onto that face.
func wallHit(grid *Grid, origin, dir mgl32.Vec3, from, to Cell) Hit {
	dc := to.Col - from.Col
	dr := to.Row - from.Row

	// A diagonal step means two boundaries were crossed in one sample; pick
	// the X face when the cell beside us on the X axis is already closed.
	useX := dc != 0
	if dc != 0 && dr != 0 {
		useX = !grid.IsOpen(from.Offset(dc, 0))
	}

	center := grid.CellCenter(from)
	var (
		t      float32
		normal mgl32.Vec3
	)
	if useX {
		bx := center.X() + float32(sign(dc))*CellSize/2
		t = (bx - origin.X()) / dir.X()
		normal = mgl32.Vec3{float32(-sign(dc)), 0, 0}
	} else {
		bz := center.Z() + float32(sign(dr))*CellSize/2
		t = (bz - origin.Z()) / dir.Z()
		normal = mgl32.Vec3{0, 0, float32(-sign(dr))}
	}
	if t < 0 {
		t = 0
	}
	return Hit{Point: origin.Add(dir.Mul(t)), Normal: normal, Cell: to}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
