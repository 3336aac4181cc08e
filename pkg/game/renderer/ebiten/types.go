package ebiten

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"mazeparts/pkg/game/renderer"
	"mazeparts/pkg/game/state"
)

// keyBinding pairs an Ebiten key with the binding code it produces
type keyBinding struct {
	key  ebiten.Key
	code string
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering one maze cell (adjustable with +/-)
	tileSize int

	session renderer.Session

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource
	monoFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedUIFontSize float64
	cachedSansFace   *text.GoTextFace
	cachedMonoFace   *text.GoTextFace

	// Current game state (set by Run, read by Draw)
	game      *state.Game
	gameMutex sync.RWMutex

	// Last frame time, for tick deltas
	lastUpdate time.Time

	// Cursor position at the previous update while captured
	lastCursorX, lastCursorY int
	cursorInitialized        bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
