package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"mazeparts/pkg/game/renderer"
	"mazeparts/pkg/game/state"
)

// New creates a new Ebiten renderer
func New(session renderer.Session) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWidth,
		windowHeight: defaultHeight,
		tileSize:     defaultTileSize,
		session:      session,
	}
}

// Init initializes the Ebiten renderer: fonts, window and cursor
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Fatalf("ebiten: %v", err)
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Maze Parts"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

// Clear is a no-op; Ebiten clears the screen before every Draw
func (e *EbitenRenderer) Clear() {}

// RenderFrame sets the game Draw renders
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.gameMutex.Lock()
	e.game = g
	e.gameMutex.Unlock()
}

// GetViewportSize returns the visible area in maze cells (rows, cols)
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return (e.windowHeight - hudHeight) / e.tileSize, e.windowWidth / e.tileSize
}

// Run starts the Ebiten game loop and blocks until the window closes or the player quits
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.RenderFrame(g)
	return ebiten.RunGame(e)
}

// currentGame returns the game being rendered
func (e *EbitenRenderer) currentGame() *state.Game {
	e.gameMutex.RLock()
	defer e.gameMutex.RUnlock()
	return e.game
}
