package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeparts/pkg/engine/input"
	"mazeparts/pkg/game/renderer"
)

// keyBindings lists the keys polled every frame and the codes they produce
var keyBindings = []keyBinding{
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyEscape, "escape"},
}

// Update polls input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleZoom()

	g := e.currentGame()
	if g == nil {
		return nil
	}
	if !renderer.Step(g, e.pollInput(), e.session) {
		return ebiten.Termination
	}
	return nil
}

// pollInput reads keyboard and mouse state into a snapshot for this frame
func (e *EbitenRenderer) pollInput() engineinput.Snapshot {
	now := time.Now()
	delta := time.Second / time.Duration(ebiten.TPS())
	if !e.lastUpdate.IsZero() {
		delta = now.Sub(e.lastUpdate)
	}
	e.lastUpdate = now

	in := engineinput.NewSnapshot(now, delta)
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Hold(b.code)
		}
		if inpututil.IsKeyJustPressed(b.key) {
			in.Press(b.code)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Press("mouse_left")
	}

	x, y := ebiten.CursorPosition()
	if e.cursorInitialized && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		in.MouseDX = float32(x - e.lastCursorX)
		in.MouseDY = float32(y - e.lastCursorY)
	}
	e.lastCursorX, e.lastCursorY = x, y
	e.cursorInitialized = true

	return in
}

// handleZoom handles =/- for tile size adjustment and 0 to reset it
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		e.setTileSize(e.tileSize + tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		e.setTileSize(e.tileSize - tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		e.setTileSize(defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	size = max(minTileSize, min(maxTileSize, size))
	if size != e.tileSize {
		e.tileSize = size
		e.invalidateFontCache()
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
