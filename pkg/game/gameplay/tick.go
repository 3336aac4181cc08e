package gameplay

import (
	"log"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/marker"
	"mazeparts/pkg/game/state"
)

// Tick advances the game by one frame. Systems run in a fixed order:
// look, movement and collision, possession sync and switch, merge, marker,
// win, then notification expiry.
func Tick(g *state.Game, in input.Snapshot) {
	g.NewDecals = g.NewDecals[:0]
	if g.Won {
		g.ExpireNotification(in.Now)
		return
	}

	look(g, in)
	crossing := move(g, in)

	g.Possession.Sync()
	mover := controlledID(g)
	if slot, ok := in.SelectedSlot(); ok {
		g.Possession.Switch(slot)
	}

	confirmUsed := combine(g, in)
	mark(g, in, confirmUsed)

	if crossing != nil {
		evaluateExit(g, mover, in)
	}

	checkPossession(g)
	if !g.Won {
		g.Elapsed += in.Delta
	}
	g.ExpireNotification(in.Now)
}

// Aim casts the camera ray into the maze, limited to marker.AimDistance.
// Frontends store the result in the snapshot before calling Tick.
func Aim(g *state.Game) *world.Hit {
	hit, ok := world.Raycast(g.Grid, g.Rig.Position, g.Rig.Direction(), marker.AimDistance)
	if !ok {
		return nil
	}
	return &hit
}

func controlledID(g *state.Game) characters.ID {
	if c := g.Possession.Controlled(); c != nil {
		return c.ID
	}
	return characters.ID{}
}

// mark updates the preview decal and paints a marker on an unused confirm.
func mark(g *state.Game, in input.Snapshot, confirmUsed bool) {
	g.Painter.Update(in.Aim, g.Rig.Direction())
	if in.JustPressed(input.ActionConfirm) && !confirmUsed {
		if d, ok := g.Painter.Paint(); ok {
			g.NewDecals = append(g.NewDecals, d)
		}
	}
	g.Painter.Highlight(g.Rig.Position)
}

func checkPossession(g *state.Game) {
	if err := g.Possession.Check(); err != nil {
		if g.Settings.Debug {
			panic(err)
		}
		log.Printf("possession: %v", err)
	}
}
