package gameplay

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/marker"
	"mazeparts/pkg/game/possession"
	"mazeparts/pkg/game/state"
)

// press adds just-pressed edges to a snapshot.
func press(s input.Snapshot, codes ...string) input.Snapshot {
	for _, code := range codes {
		s.Press(code)
	}
	return s
}

func TestScenario_CombineAllPartsAndLeave(t *testing.T) {
	// Three parts in a row east of the exit; part 1 controlled, facing west.
	g := makeGame(t, room, mgl32.Vec2{3, 2}, mgl32.Vec2{2, 2}, mgl32.Vec2{1, 2})
	g.Rig.Yaw = -math.Pi / 2
	clk := &clock{}

	for i := 0; i < 60 && !g.Won; i++ {
		Tick(g, press(clk.next("w"), "space"))
		if g.Possession.Controlled() == nil {
			t.Fatalf("tick %d: nothing controlled", i)
		}
	}

	if !g.Won {
		t.Fatalf("not won, rig at %v, parts %v", g.Rig.Position, g.Possession.Controlled().Identity)
	}
	if g.Characters.Len() != 1 {
		t.Errorf("%d characters left, want 1", g.Characters.Len())
	}
	if got := g.Possession.Controlled().Identity.String(); got != "1+2+3" {
		t.Errorf("identity = %s, want 1+2+3", got)
	}
	if g.Notification.Text != "You won!" || g.Notification.ExpiresAt != 0 {
		t.Errorf("Notification = %+v, want permanent \"You won!\"", g.Notification)
	}

	// The game is over: nothing moves and the timer stops.
	pos, elapsed := g.Rig.Position, g.Elapsed
	for i := 0; i < 100; i++ {
		Tick(g, clk.next("d"))
	}
	if g.Rig.Position != pos || g.Elapsed != elapsed {
		t.Errorf("game kept running after winning: rig %v, elapsed %v", g.Rig.Position, g.Elapsed)
	}
	if g.Notification.Text != "You won!" {
		t.Errorf("win notification expired: %+v", g.Notification)
	}
}

func TestExit_NeedsAllParts(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{1, 2}, mgl32.Vec2{3, 3})
	g.Rig.Yaw = -math.Pi / 2
	clk := &clock{}

	var crossedAt time.Time
	for i := 0; i < 10 && crossedAt.IsZero(); i++ {
		Tick(g, clk.next("w"))
		if g.Notification.Kind == state.NotifyNeedParts {
			crossedAt = clk.now
		}
	}
	if crossedAt.IsZero() {
		t.Fatalf("no notification after walking into the exit, rig at %v", g.Rig.Position)
	}
	if g.Won {
		t.Error("won with one part of two")
	}
	if g.Notification.Text != "You need to combine all parts before you can leave" {
		t.Errorf("Notification.Text = %q", g.Notification.Text)
	}
	if want := crossedAt.Add(5 * time.Second).UnixMilli(); g.Notification.ExpiresAt != want {
		t.Errorf("ExpiresAt = %d, want %d", g.Notification.ExpiresAt, want)
	}

	for i := 1; i < 50; i++ {
		Tick(g, clk.next())
	}
	if g.Notification.Kind != state.NotifyNeedParts {
		t.Fatalf("notification gone before 5s: %+v", g.Notification)
	}
	Tick(g, clk.next())
	if g.Notification.Kind != state.NotifyNone {
		t.Errorf("notification still up after 5s: %+v", g.Notification)
	}
}

func TestTick_SwitchSlots(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{1, 1}, mgl32.Vec2{3, 3})
	clk := &clock{}

	g.Rig.Yaw = 0.5
	Tick(g, press(clk.next(), "2"))
	c := g.Possession.Controlled()
	if c == nil || !c.Identity.Has(2) {
		t.Fatalf("Controlled() = %v, want part 2", c)
	}
	if g.Rig.Position != (mgl32.Vec3{1, world.ActorHeight, 1}) || g.Rig.Yaw != 0 {
		t.Errorf("rig = %+v, want at part 2 with its saved look", *g.Rig)
	}

	before := g.Possession.State()
	Tick(g, press(clk.next(), "3"))
	if g.Possession.State() != before {
		t.Errorf("selecting an unknown slot changed state to %v", g.Possession.State())
	}

	Tick(g, press(clk.next(), "1"))
	if g.Rig.Yaw != 0.5 || g.Rig.Position != (mgl32.Vec3{-1, world.ActorHeight, -1}) {
		t.Errorf("back on part 1 rig = %+v", *g.Rig)
	}
}

func TestTick_CombinePrompt(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{2, 2}, mgl32.Vec2{2.1, 2})
	clk := &clock{}

	Tick(g, clk.next())
	if g.Notification.Kind != state.NotifyCombine || g.Notification.Text != CombineHint {
		t.Fatalf("Notification = %+v, want combine hint", g.Notification)
	}

	Tick(g, press(clk.next(), "enter"))
	if g.Characters.Len() != 1 {
		t.Errorf("Len() = %d after combining, want 1", g.Characters.Len())
	}
	if g.Notification.Kind != state.NotifyNone {
		t.Errorf("hint not cleared after combining: %+v", g.Notification)
	}
	if len(g.Painter.Placed()) != 0 {
		t.Error("confirm used for combining also painted a marker")
	}
}

func TestTick_PaintsMarker(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{2, 2})
	clk := &clock{}
	g.Rig.Pitch = -0.5

	s := press(clk.next(), "space")
	s.Aim = Aim(g)
	if s.Aim == nil || !s.Aim.Floor {
		t.Fatalf("Aim() = %+v, want a floor hit", s.Aim)
	}
	Tick(g, s)
	if len(g.NewDecals) != 1 {
		t.Fatalf("NewDecals = %d, want 1", len(g.NewDecals))
	}
	if g.NewDecals[0].Material != marker.MaterialArrowFloor {
		t.Errorf("Material = %v, want floor arrow", g.NewDecals[0].Material)
	}
	if g.Painter.Closest() != 0 {
		t.Errorf("Closest() = %d, want the new marker", g.Painter.Closest())
	}

	Tick(g, clk.next())
	if len(g.NewDecals) != 0 || len(g.Painter.Placed()) != 1 {
		t.Errorf("NewDecals = %d, Placed = %d; want 0, 1", len(g.NewDecals), len(g.Painter.Placed()))
	}
}

func TestTick_InvariantViolationPanicsInDebug(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{2, 2})
	id, _ := g.Possession.State().Target()
	g.Characters.Despawn(id)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, possession.ErrInvariant) {
			t.Errorf("recover() = %v, want ErrInvariant", r)
		}
	}()
	Tick(g, (&clock{}).next())
}

func TestResetLevel(t *testing.T) {
	g := makeGame(t, room, mgl32.Vec2{2, 2}, mgl32.Vec2{2.1, 2})
	clk := &clock{}
	Tick(g, press(clk.next("w"), "space"))
	if g.Characters.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after combining", g.Characters.Len())
	}

	painter := g.Painter
	if err := ResetLevel(g); err != nil {
		t.Fatalf("ResetLevel: %v", err)
	}
	if g.Painter != painter || len(g.Painter.Placed()) != 0 || g.Painter.Closest() != -1 {
		t.Errorf("painter not reset in place: placed %d, closest %d", len(g.Painter.Placed()), g.Painter.Closest())
	}
	if g.Characters.Len() != 2 || g.Elapsed != 0 || g.Won {
		t.Errorf("after reset: %d characters, elapsed %v, won %v", g.Characters.Len(), g.Elapsed, g.Won)
	}
	if g.Rig.Position != (mgl32.Vec3{0, world.ActorHeight, 0}) {
		t.Errorf("rig at %v, want spawn 1", g.Rig.Position)
	}
}
