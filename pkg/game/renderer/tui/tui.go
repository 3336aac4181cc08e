package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/engine/terminal"
	"mazeparts/pkg/game/renderer"
	"mazeparts/pkg/game/state"
)

// StepLength is the game time one key press advances.
const StepLength = 250 * time.Millisecond

// Viewport minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside the map: status, heading, notification, help and prompt
	ViewportTopMargin = 8
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	session renderer.Session

	colorWall       color.Style
	colorFloor      color.Style
	colorExit       color.Style
	colorPlayer     color.Style
	colorPart       color.Style
	colorMarker     color.Style
	colorSubtle     color.Style
	colorNotify     color.Style
	colorNotifyGood color.Style
}

// New creates a new TUI renderer
func New(session renderer.Session) *TUIRenderer {
	return &TUIRenderer{session: session}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgBlue}
	t.colorExit = color.Style{color.FgGreen}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorPart = color.Style{color.FgYellow, color.OpBold}
	t.colorMarker = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorNotify = color.Style{color.FgRed, color.OpBold}
	t.colorNotifyGood = color.Style{color.FgGreen, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	return rows, cols
}

// Run reads one key at a time and advances the game one step per key.
func (t *TUIRenderer) Run(g *state.Game) error {
	last := time.Now()
	for {
		t.Clear()
		t.RenderFrame(g)

		ev, err := input.ReadKey()
		if err != nil {
			return err
		}
		now := ev.Timestamp
		if now.Before(last) {
			now = last
		}
		last = now

		in := input.NewSnapshot(now, StepLength)
		in.Apply(ev)
		if !renderer.Step(g, in, t.session) {
			return nil
		}
	}
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.printMap(g)
	fmt.Println()

	fmt.Println(t.colorSubtle.Sprint(renderer.StatusLine(g)))
	fmt.Println(t.colorSubtle.Sprint(gotext.Get("Facing %s", renderer.Compass(g.Rig.Yaw))))

	t.printNotification(g)
	t.printHelp()
	fmt.Printf("\n> ")
}

// printMap prints the part of the maze that fits the viewport, centred on the controlled character.
func (t *TUIRenderer) printMap(g *state.Game) {
	rows := renderer.MapRows(g)
	viewRows, viewCols := t.GetViewportSize()

	center := g.Grid.ToCell(g.Rig.Position)
	top := clampWindow(center.Row-viewRows/2, len(rows), viewRows)
	bottom := min(top+viewRows, len(rows))

	for _, row := range rows[top:bottom] {
		runes := []rune(row)
		left := clampWindow(center.Col-viewCols/2, len(runes), viewCols)
		right := min(left+viewCols, len(runes))

		var b strings.Builder
		for _, ch := range runes[left:right] {
			b.WriteString(t.glyph(ch))
		}
		fmt.Println(b.String())
	}
}

// clampWindow keeps a window of size n inside [0, total).
func clampWindow(start, total, n int) int {
	if start+n > total {
		start = total - n
	}
	if start < 0 {
		start = 0
	}
	return start
}

func (t *TUIRenderer) glyph(ch rune) string {
	s := string(ch)
	switch ch {
	case renderer.GlyphWall:
		return t.colorWall.Sprint(s)
	case renderer.GlyphFloor:
		return t.colorFloor.Sprint(s)
	case renderer.GlyphExit:
		return t.colorExit.Sprint(s)
	case renderer.GlyphControlled:
		return t.colorPlayer.Sprint(s)
	case renderer.GlyphMarker:
		return t.colorMarker.Sprint(s)
	}
	return t.colorPart.Sprint(s)
}

func (t *TUIRenderer) printNotification(g *state.Game) {
	width := terminal.GetWidth()
	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))

	n := g.Notification
	if !n.Active(time.Now()) {
		fmt.Println()
		return
	}
	if n.Kind == state.NotifyWon {
		fmt.Println("  " + t.colorNotifyGood.Sprint(n.Text))
		return
	}
	fmt.Println("  " + t.colorNotify.Sprint(n.Text))
}

func (t *TUIRenderer) printHelp() {
	fmt.Println(t.colorSubtle.Sprint(gotext.Get("w/s/a/d move, q/e turn, 1-3 switch part, space combine or mark, r reset, esc quit")))
}
