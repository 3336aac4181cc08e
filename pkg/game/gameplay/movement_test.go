package gameplay

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/engine/mesh"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/state"
)

var tickLength = 100 * time.Millisecond

// makeGame builds a game on a text maze with the given spawns.
func makeGame(t *testing.T, rows []string, spawns ...mgl32.Vec2) *state.Game {
	t.Helper()
	grid, err := world.FromRows(rows, spawns)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	g, err := BuildGame(grid, state.Settings{
		MoveSpeed:        1,
		TurnSpeed:        2,
		MouseSensitivity: 0.01,
		Debug:            true,
	})
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	return g
}

// room is a 3x3 room with the exit on the west wall of the middle row.
var room = []string{
	"#####",
	"#...#",
	"E...#",
	"#...#",
	"#####",
}

// clock hands out snapshots 100ms apart.
type clock struct {
	now time.Time
}

func (c *clock) next(codes ...string) input.Snapshot {
	c.now = c.now.Add(tickLength)
	s := input.NewSnapshot(c.now, tickLength)
	for _, code := range codes {
		s.Hold(code)
	}
	return s
}

func TestBuildGame_SpawnsAndControlsFirst(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{3, 2}, mgl32.Vec2{2, 2}, mgl32.Vec2{1, 2})

	if g.Characters.Len() != 3 || g.TotalParts != 3 {
		t.Fatalf("characters = %d, parts = %d; want 3", g.Characters.Len(), g.TotalParts)
	}
	c := g.Possession.Controlled()
	if c == nil || !c.Identity.Has(1) {
		t.Fatalf("Controlled() = %v, want part 1", c)
	}
	if g.Rig.Position != (mgl32.Vec3{1, world.ActorHeight, 0}) {
		t.Errorf("rig at %v, want spawn 1", g.Rig.Position)
	}
	if g.Mesh == nil || g.Mesh.Count(mesh.KindFloor) == 0 {
		t.Error("mesh not built")
	}
}

func TestTick_MovesRelativeToYaw(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{2, 2})
	clk := &clock{}

	tests := []struct {
		name string
		yaw  float32
		key  string
		want mgl32.Vec3
	}{
		{"forward facing north", 0, "w", mgl32.Vec3{0, 0, -0.1}},
		{"back facing north", 0, "s", mgl32.Vec3{0, 0, 0.1}},
		{"strafe right facing north", 0, "d", mgl32.Vec3{0.1, 0, 0}},
		{"forward facing east", math.Pi / 2, "w", mgl32.Vec3{0.1, 0, 0}},
		{"strafe left facing east", math.Pi / 2, "a", mgl32.Vec3{0, 0, -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Rig.Position = mgl32.Vec3{0, world.ActorHeight, 0}
			g.Rig.Yaw = tt.yaw
			Tick(g, clk.next(tt.key))
			got := g.Rig.Position.Sub(mgl32.Vec3{0, world.ActorHeight, 0})
			if !near(got, tt.want, 1e-5) {
				t.Errorf("moved %v, want %v", got, tt.want)
			}
			if c := g.Possession.Controlled(); c.Transform.Position != g.Rig.Position {
				t.Errorf("character at %v, rig at %v", c.Transform.Position, g.Rig.Position)
			}
		})
	}
}

func TestTick_WallsStopMovement(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{3, 1})
	clk := &clock{}

	// Walk north-east into the corner of the room for two seconds.
	g.Rig.Yaw = math.Pi / 4
	for i := 0; i < 20; i++ {
		Tick(g, clk.next("w"))
		cell := g.Grid.ToCell(g.Rig.Position)
		if !g.Grid.IsOpen(cell) {
			t.Fatalf("tick %d: rig entered closed cell %v", i, cell)
		}
	}
	// Cell 3:1 is centred at (1, -1); the actor stops a radius short of both walls.
	limit := 1.5 - world.ActorRadius
	if p := g.Rig.Position; p.X() > limit+1e-4 || p.Z() < -limit-1e-4 {
		t.Errorf("rig at %v, beyond the walls", p)
	}
}

func TestTick_LongFramesAreSplit(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{1, 2})
	g.Rig.Yaw = math.Pi / 2

	s := input.NewSnapshot(time.Unix(1, 0), 2*time.Second)
	s.Hold("w")
	Tick(g, s)

	// Two cells east in one frame, through open floor.
	if got := g.Rig.Position.X(); math.Abs(float64(got-1)) > 1e-4 {
		t.Errorf("x = %v, want 1", got)
	}
}

func TestTick_LookWithKeysAndMouse(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{2, 2})
	clk := &clock{}

	Tick(g, clk.next("arrow_right"))
	if math.Abs(float64(g.Rig.Yaw-0.2)) > 1e-5 {
		t.Errorf("yaw = %v after turning right, want 0.2", g.Rig.Yaw)
	}

	s := clk.next()
	s.MouseDX = -20
	s.MouseDY = 10
	Tick(g, s)
	if math.Abs(float64(g.Rig.Yaw)) > 1e-5 {
		t.Errorf("yaw = %v after mouse, want 0", g.Rig.Yaw)
	}
	if math.Abs(float64(g.Rig.Pitch+0.1)) > 1e-5 {
		t.Errorf("pitch = %v, want -0.1", g.Rig.Pitch)
	}
	if g.Rig.Position != (mgl32.Vec3{0, world.ActorHeight, 0}) {
		t.Errorf("looking moved the rig to %v", g.Rig.Position)
	}
}

// near reports whether a and b are within tol of each other.
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}
