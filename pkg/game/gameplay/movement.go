package gameplay

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mazeparts/pkg/engine/collision"
	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/state"
)

// maxStep keeps every resolver call within one cell.
const maxStep = world.CellSize/2 - world.ActorRadius - 0.01

// look turns the rig from turn keys and mouse motion.
func look(g *state.Game, in input.Snapshot) {
	s := g.Settings
	dYaw := in.MouseDX * s.MouseSensitivity
	dPitch := -in.MouseDY * s.MouseSensitivity

	turn := s.TurnSpeed * in.Seconds()
	if in.IsHeld(input.ActionTurnLeft) {
		dYaw -= turn
	}
	if in.IsHeld(input.ActionTurnRight) {
		dYaw += turn
	}
	if dYaw != 0 || dPitch != 0 {
		g.Rig.Turn(dYaw, dPitch)
	}
}

// desiredMove returns the world-space displacement the held keys ask for.
func desiredMove(g *state.Game, in input.Snapshot) mgl32.Vec3 {
	var dir mgl32.Vec3
	if in.IsHeld(input.ActionMoveForward) {
		dir = dir.Add(g.Rig.Forward())
	}
	if in.IsHeld(input.ActionMoveBack) {
		dir = dir.Sub(g.Rig.Forward())
	}
	if in.IsHeld(input.ActionStrafeRight) {
		dir = dir.Add(g.Rig.Right())
	}
	if in.IsHeld(input.ActionStrafeLeft) {
		dir = dir.Sub(g.Rig.Right())
	}
	if dir.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return dir.Normalize().Mul(g.Settings.MoveSpeed * in.Seconds())
}

// move applies the held movement to the rig through the collision resolver.
// Long frames are split into steps the resolver accepts; when several steps
// cross into the exit only the last crossing is kept.
func move(g *state.Game, in input.Snapshot) *collision.ExitCrossing {
	delta := desiredMove(g, in)
	length := delta.Len()
	if length == 0 {
		return nil
	}

	steps := int(math.Ceil(float64(length / maxStep)))
	step := delta.Mul(1 / float32(steps))

	var crossing *collision.ExitCrossing
	for i := 0; i < steps; i++ {
		res := g.Resolver.Resolve(g.Rig.Position, step)
		g.Rig.Position = g.Rig.Position.Add(res.Delta)
		if res.Crossing != nil {
			crossing = res.Crossing
		}
	}
	return crossing
}
