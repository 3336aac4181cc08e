// Package gameplay provides core game logic for movement, possession and the exit.
package gameplay

import (
	"log"

	"mazeparts/pkg/engine/collision"
	"mazeparts/pkg/engine/mesh"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/marker"
	"mazeparts/pkg/game/possession"
	"mazeparts/pkg/game/state"
)

// BuildGame creates a new game on the given grid
func BuildGame(grid *world.Grid, settings state.Settings) (*state.Game, error) {
	g := state.NewGame(settings)
	if err := SetupLevel(g, grid); err != nil {
		return nil, err
	}
	return g, nil
}

// SetupLevel replaces everything level-specific in g: geometry, characters,
// possession, decals, notification and timer. One character is spawned per
// spawn point, holding part number index+1, and the first one is controlled.
func SetupLevel(g *state.Game, grid *world.Grid) error {
	g.Grid = grid
	g.Mesh = mesh.Build(grid)
	g.Resolver = collision.NewResolver(grid)

	g.Characters = characters.NewRegistry()
	g.Rig = &possession.Rig{}
	g.Possession = possession.NewController(g.Characters, g.Rig)
	if g.Painter == nil {
		g.Painter = marker.NewPainter()
	}
	g.Painter.Reset()
	g.NewDecals = nil
	g.Notification = state.Notification{}
	g.Won = false
	g.Elapsed = 0

	spawns := grid.Spawns()
	for i := range spawns {
		g.Characters.Spawn(i+1, grid.SpawnPosition(i))
	}
	g.TotalParts = len(spawns)

	if err := g.Possession.Start(); err != nil {
		return err
	}

	log.Printf("level ready: %dx%d maze, %d parts, exit at %v, %d walls",
		grid.Width(), grid.Height(), g.TotalParts, grid.Exit(), g.Mesh.Count(mesh.KindWall))
	return nil
}

// ResetLevel restarts the current level from its spawn points
func ResetLevel(g *state.Game) error {
	return SetupLevel(g, g.Grid)
}
