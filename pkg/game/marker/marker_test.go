package marker

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/world"
)

func TestPaint_FloorAndWall(t *testing.T) {
	tests := []struct {
		name         string
		hit          world.Hit
		aim          mgl32.Vec3
		wantMaterial Material
		wantForward  mgl32.Vec3
	}{
		{
			name:         "floor ahead",
			hit:          world.Hit{Point: mgl32.Vec3{0, 0, -1}, Normal: mgl32.Vec3{0, 1, 0}, Floor: true},
			aim:          mgl32.Vec3{0, -0.5, -1},
			wantMaterial: MaterialArrowFloor,
			wantForward:  mgl32.Vec3{0, 0, -1},
		},
		{
			name:         "floor to the right",
			hit:          world.Hit{Point: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 1, 0}, Floor: true},
			aim:          mgl32.Vec3{1, -1, 0},
			wantMaterial: MaterialArrowFloor,
			wantForward:  mgl32.Vec3{1, 0, 0},
		},
		{
			name:         "east wall, aiming up and across",
			hit:          world.Hit{Point: mgl32.Vec3{1.5, 0.5, 0}, Normal: mgl32.Vec3{-1, 0, 0}},
			aim:          mgl32.Vec3{1, 0, 1},
			wantMaterial: MaterialArrowWall,
			wantForward:  mgl32.Vec3{0, 0, 1},
		},
		{
			name:         "straight into a wall points up",
			hit:          world.Hit{Point: mgl32.Vec3{0, 0.5, -1.5}, Normal: mgl32.Vec3{0, 0, 1}},
			aim:          mgl32.Vec3{0, 0, -1},
			wantMaterial: MaterialArrowWall,
			wantForward:  mgl32.Vec3{0, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPainter()
			p.Update(&tt.hit, tt.aim)
			d, ok := p.Paint()
			if !ok {
				t.Fatal("Paint() = false with a hit")
			}
			if d.Material != tt.wantMaterial {
				t.Errorf("Material = %v, want %v", d.Material, tt.wantMaterial)
			}
			if !near(d.Forward(), tt.wantForward, 1e-4) {
				t.Errorf("Forward() = %v, want %v", d.Forward(), tt.wantForward)
			}
			up := d.Orientation.Rotate(mgl32.Vec3{0, 1, 0})
			if !near(up, tt.hit.Normal, 1e-4) {
				t.Errorf("decal up = %v, want surface normal %v", up, tt.hit.Normal)
			}
			want := tt.hit.Point.Add(tt.hit.Normal.Mul(SurfaceOffset))
			if !near(d.Position, want, 1e-5) {
				t.Errorf("Position = %v, want %v", d.Position, want)
			}
			if len(p.Placed()) != 1 {
				t.Errorf("Placed() has %d decals, want 1", len(p.Placed()))
			}
		})
	}
}

func TestPaint_WithoutHit(t *testing.T) {
	p := NewPainter()
	p.Update(&world.Hit{Normal: mgl32.Vec3{0, 1, 0}}, mgl32.Vec3{0, -1, -1})
	p.Update(nil, mgl32.Vec3{0, 0, -1})
	if _, ok := p.Preview(); ok {
		t.Error("Preview() still shown after losing the hit")
	}
	if _, ok := p.Paint(); ok {
		t.Error("Paint() = true without a hit")
	}
	if len(p.Placed()) != 0 {
		t.Errorf("Placed() = %v, want none", p.Placed())
	}
}

func TestHighlight_ClosestWithinDistance(t *testing.T) {
	p := NewPainter()
	for _, x := range []float32{0, 0.6, 3} {
		p.Update(&world.Hit{Point: mgl32.Vec3{x, 0, 0}, Normal: mgl32.Vec3{0, 1, 0}}, mgl32.Vec3{0, -1, -1})
		p.Paint()
	}

	p.Highlight(mgl32.Vec3{0.5, 0, 0})
	if p.Closest() != 1 {
		t.Errorf("Closest() = %d, want 1", p.Closest())
	}
	p.Highlight(mgl32.Vec3{-0.2, 0, 0})
	if p.Closest() != 0 {
		t.Errorf("Closest() = %d, want 0", p.Closest())
	}
	p.Highlight(mgl32.Vec3{10, 0, 0})
	if p.Closest() != -1 {
		t.Errorf("Closest() far away = %d, want -1", p.Closest())
	}

	p.Reset()
	if len(p.Placed()) != 0 || p.Closest() != -1 {
		t.Error("Reset() left decals behind")
	}
}

// near reports whether a and b are within tol of each other.
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}
