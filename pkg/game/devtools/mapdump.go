// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazeparts/pkg/engine/mesh"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/renderer"
	"mazeparts/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// WriteMapDump writes a debug dump of g to w: metadata, legend, the map,
// geometry counts, characters and placed markers.
// Format is human-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}
	exit := g.Grid.Exit()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (maze layout, geometry, characters) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_width: %d\n", g.Grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Grid.Height())
	fmt.Fprintf(w, "coordinate_system: col,row (0-based); world x,z centred on the maze\n")
	fmt.Fprintf(w, "exit_cell: %d,%d\n", exit.Col, exit.Row)
	exitPixel := "wall"
	if g.Grid.IsMarkedOpen(exit) {
		exitPixel = "floor"
	}
	fmt.Fprintf(w, "exit_pixel: %s\n", exitPixel)
	fmt.Fprintf(w, "total_parts: %d\n", g.TotalParts)
	fmt.Fprintf(w, "possession: %s\n", g.Possession.State())
	fmt.Fprintf(w, "rig: x=%.3f z=%.3f yaw=%.3f pitch=%.3f\n", g.Rig.Position.X(), g.Rig.Position.Z(), g.Rig.Yaw, g.Rig.Pitch)
	fmt.Fprintf(w, "elapsed: %s\n", renderer.FormatElapsed(g.Elapsed))
	fmt.Fprintf(w, "won: %v\n", g.Won)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  E = exit  @ = controlled character  1-9 = part number  ^ = marker")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	for _, row := range renderer.MapRows(g) {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w, "")

	// --- Geometry ---
	fmt.Fprintln(w, "--- Geometry ---")
	fmt.Fprintf(w, "floor_quads: %d\n", g.Mesh.Count(mesh.KindFloor))
	fmt.Fprintf(w, "wall_quads: %d\n", g.Mesh.Count(mesh.KindWall))
	fmt.Fprintf(w, "lintel_quads: %d\n", g.Mesh.Count(mesh.KindLintel))
	fmt.Fprintln(w, "")

	// --- Characters ---
	fmt.Fprintln(w, "Characters:")
	g.Characters.Each(func(c *characters.Character) {
		cell := g.Grid.ToCell(c.Transform.Position)
		fmt.Fprintf(w, "  id: %s parts: %s cell: %d,%d x: %.3f z: %.3f yaw: %.3f\n",
			c.ID, c.Identity, cell.Col, cell.Row, c.Transform.Position.X(), c.Transform.Position.Z(), c.Transform.Yaw)
	})
	fmt.Fprintln(w, "")

	// --- Markers ---
	fmt.Fprintln(w, "Markers:")
	for i, d := range g.Painter.Placed() {
		fmt.Fprintf(w, "  index: %d material: %s x: %.3f y: %.3f z: %.3f\n", i, d.Material, d.Position.X(), d.Position.Y(), d.Position.Z())
	}

	// --- Notification ---
	if g.Notification.Kind != state.NotifyNone {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "notification: %q expires_at: %d\n", g.Notification.Text, g.Notification.ExpiresAt)
	}
	return nil
}

// DumpMapToFile writes the debug dump to path, or map.txt when path is empty,
// and returns the absolute path written.
func DumpMapToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
