// Package marker paints direction arrows where the controlled character aims.
package marker

import (
	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/world"
)

const (
	// AimDistance limits how far away a marker can be painted.
	AimDistance float32 = 2 * world.CellSize
	// HighlightDistance is how close a placed marker must be to be highlighted.
	HighlightDistance float32 = world.CellSize
	// SurfaceOffset lifts decals off the surface they are painted on.
	SurfaceOffset float32 = 0.005
)

// Material is the texture a decal is drawn with.
type Material int

const (
	MaterialArrowFloor Material = iota
	MaterialArrowWall
)

// String returns the material name
func (m Material) String() string {
	switch m {
	case MaterialArrowFloor:
		return "arrow_floor"
	case MaterialArrowWall:
		return "arrow_wall"
	default:
		return "unknown"
	}
}

// DecalRequest asks the renderer to place an arrow decal.
type DecalRequest struct {
	Position mgl32.Vec3
	// Orientation maps decal space (Y up off the surface, -Z along the
	// arrow) into world space.
	Orientation mgl32.Quat
	Normal      mgl32.Vec3
	Material    Material
}

// Forward returns the direction the arrow points
func (d DecalRequest) Forward() mgl32.Vec3 {
	return d.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Painter tracks the preview decal and every decal placed so far.
type Painter struct {
	preview *DecalRequest
	placed  []DecalRequest
	closest int
}

// NewPainter creates a painter with no decals
func NewPainter() *Painter {
	return &Painter{closest: -1}
}

// Update moves the preview decal to the aim hit, or hides it when there is none.
func (p *Painter) Update(hit *world.Hit, aim mgl32.Vec3) {
	if hit == nil {
		p.preview = nil
		return
	}
	d := decalFor(*hit, aim)
	p.preview = &d
}

// Paint places a decal at the current preview. It returns false when the
// player is not aiming at a surface.
func (p *Painter) Paint() (DecalRequest, bool) {
	if p.preview == nil {
		return DecalRequest{}, false
	}
	d := *p.preview
	p.placed = append(p.placed, d)
	return d, true
}

// Preview returns the decal following the aim, if any
func (p *Painter) Preview() (DecalRequest, bool) {
	if p.preview == nil {
		return DecalRequest{}, false
	}
	return *p.preview, true
}

// Placed returns the decals painted so far.
func (p *Painter) Placed() []DecalRequest {
	return p.placed
}

// Highlight recomputes the placed decal closest to pos within HighlightDistance.
func (p *Painter) Highlight(pos mgl32.Vec3) {
	p.closest = -1
	best := HighlightDistance
	for i, d := range p.placed {
		if dist := d.Position.Sub(pos).Len(); dist <= best {
			best = dist
			p.closest = i
		}
	}
}

// Closest returns the index of the highlighted decal or -1.
func (p *Painter) Closest() int {
	return p.closest
}

// Reset removes every decal.
func (p *Painter) Reset() {
	p.preview = nil
	p.placed = nil
	p.closest = -1
}

func decalFor(hit world.Hit, aim mgl32.Vec3) DecalRequest {
	up := hit.Normal.Normalize()

	// Point the arrow along the aim, flattened onto the surface.
	fwd := aim.Sub(up.Mul(aim.Dot(up)))
	if fwd.Len() < 1e-4 {
		// Aiming straight into the surface: walls point up, floors point north.
		if up.Y() > 0.5 {
			fwd = mgl32.Vec3{0, 0, -1}
		} else {
			fwd = mgl32.Vec3{0, 1, 0}
		}
	}
	fwd = fwd.Normalize()
	right := fwd.Cross(up)

	basis := mgl32.Mat3FromCols(right, up, fwd.Mul(-1))
	material := MaterialArrowWall
	if up.Y() > 0.5 {
		material = MaterialArrowFloor
	}
	return DecalRequest{
		Position:    hit.Point.Add(up.Mul(SurfaceOffset)),
		Orientation: mgl32.Mat4ToQuat(basis.Mat4()).Normalize(),
		Normal:      up,
		Material:    material,
	}
}
