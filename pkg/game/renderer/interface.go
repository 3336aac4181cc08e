package renderer

import (
	"mazeparts/pkg/game/state"
)

// ReloadFunc rebuilds the level in g, e.g. after its files changed on disk.
type ReloadFunc func(g *state.Game) error

// Renderer defines the interface for game frontends
// Implementations include TUI (terminal) and Ebiten (window).
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: map, status and notification
	RenderFrame(g *state.Game)

	// Run drives input and ticks until the player quits
	Run(g *state.Game) error

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run runs the game on the current renderer
func Run(g *state.Game) error {
	if Current != nil {
		return Current.Run(g)
	}
	return nil
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30 // sensible defaults
}
