package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoExit is returned when a text maze has no exit marker.
var ErrNoExit = errors.New("world: maze has no exit marker")

// Text maze legend.
const (
	RuneWall     = '#'
	RuneOpen     = '.'
	RuneExit     = 'E' // exit drawn on a wall pixel
	RuneOpenExit = 'e' // exit drawn on a floor pixel
)

// FromRows builds a grid from a text maze, one string per row.
func FromRows(rows []string, spawns []mgl32.Vec2) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	width := len(rows[0])
	open := make([]bool, 0, width*len(rows))
	exit := Cell{Col: -1, Row: -1}
	found := false

	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadBitmap, r, len(line), width)
		}
		for c, ch := range line {
			switch ch {
			case RuneWall:
				open = append(open, false)
			case RuneOpen:
				open = append(open, true)
			case RuneExit, RuneOpenExit:
				open = append(open, ch == RuneOpenExit)
				exit = Cell{Col: c, Row: r}
				found = true
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %d:%d", ErrBadBitmap, ch, c, r)
			}
		}
	}
	if !found {
		return nil, ErrNoExit
	}
	return NewGrid(width, len(rows), open, exit, spawns)
}
