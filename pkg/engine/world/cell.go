// Package world provides the discretized maze primitives shared by collision,
// mesh generation and rendering.
package world

import "fmt"

// Cell addresses one square of the maze grid.
// Col grows along +X, Row grows along +Z.
type Cell struct {
	Col int
	Row int
}

// Neighbor returns the adjacent cell in the given direction
func (c Cell) Neighbor(dir Direction) Cell {
	dc, dr := dir.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Offset returns the cell shifted by the given column and row steps
func (c Cell) Offset(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// String returns the cell as "col:row"
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Col, c.Row)
}
