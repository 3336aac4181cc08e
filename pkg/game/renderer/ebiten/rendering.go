package ebiten

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazeparts/pkg/engine/mesh"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/marker"
	"mazeparts/pkg/game/possession"
	"mazeparts/pkg/game/renderer"
	"mazeparts/pkg/game/state"
)

// view maps world XZ coordinates to screen pixels, centred on the camera.
type view struct {
	camX, camZ float32
	originX    float32
	originY    float32
	scale      float32
}

func (v view) project(p mgl32.Vec3) (float32, float32) {
	return v.originX + (p.X()-v.camX)*v.scale, v.originY + (p.Z()-v.camZ)*v.scale
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.currentGame()
	if g == nil || g.Grid == nil {
		return
	}

	mapHeight := e.windowHeight - hudHeight
	v := view{
		camX:    g.Rig.Position.X(),
		camZ:    g.Rig.Position.Z(),
		originX: float32(e.windowWidth) / 2,
		originY: float32(hudHeight) + float32(mapHeight)/2,
		scale:   float32(e.tileSize),
	}

	e.drawMesh(screen, g, v)
	e.drawMarkers(screen, g, v)
	e.drawCharacters(screen, g, v)
	e.drawHUD(screen, g)
}

// drawMesh draws floor quads as filled cells and wall quads as lines along their cell edge
func (e *EbitenRenderer) drawMesh(screen *ebiten.Image, g *state.Game, v view) {
	half := world.CellSize / 2 * v.scale

	// Closed cells first so the floor covers their edges.
	g.Grid.ForEachCell(func(c world.Cell) {
		if g.Grid.IsOpen(c) {
			return
		}
		x, y := v.project(g.Grid.CellCenter(c))
		vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, colorMapBackground, false)
	})

	for _, q := range g.Mesh.Quads {
		switch q.Kind {
		case mesh.KindFloor:
			clr := colorFloor
			if q.Material == mesh.MaterialExitFloor {
				clr = colorExitFloor
			}
			x, y := v.project(q.Center)
			vector.DrawFilledRect(screen, x-half+1, y-half+1, 2*half-2, 2*half-2, clr, false)
		case mesh.KindWall:
			e.drawEdge(screen, q, v, 3, colorWall)
		case mesh.KindLintel:
			e.drawEdge(screen, q, v, 2, colorLintel)
		}
	}
}

// drawEdge draws a vertical quad seen from above: a line across its width
func (e *EbitenRenderer) drawEdge(screen *ebiten.Image, q mesh.Quad, v view, width float32, clr color.Color) {
	tangent := mgl32.Vec3{-q.Normal.Z(), 0, q.Normal.X()}.Mul(q.Width / 2)
	x0, y0 := v.project(q.Center.Sub(tangent))
	x1, y1 := v.project(q.Center.Add(tangent))
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// drawMarkers draws placed arrows, the highlighted one, and the aim preview
func (e *EbitenRenderer) drawMarkers(screen *ebiten.Image, g *state.Game, v view) {
	closest := g.Painter.Closest()
	for i, d := range g.Painter.Placed() {
		clr := colorMarker
		if i == closest {
			clr = colorMarkerHighlight
		}
		e.drawArrow(screen, d, v, clr)
	}
	if d, ok := g.Painter.Preview(); ok {
		e.drawArrow(screen, d, v, colorMarkerPreview)
	}
}

// drawArrow draws a floor arrow pointing along the decal's forward, or a dot for wall arrows
func (e *EbitenRenderer) drawArrow(screen *ebiten.Image, d marker.DecalRequest, v view, clr color.Color) {
	x, y := v.project(d.Position)
	size := v.scale * 0.2
	if d.Material == marker.MaterialArrowWall {
		vector.DrawFilledCircle(screen, x, y, size/2, clr, true)
		return
	}

	fwd := d.Forward()
	fx, fz := fwd.X()*size, fwd.Z()*size
	tipX, tipY := x+fx, y+fz
	vector.StrokeLine(screen, x-fx, y-fz, tipX, tipY, 2, clr, true)
	// Head: two strokes back from the tip, rotated +-45 degrees
	vector.StrokeLine(screen, tipX, tipY, tipX-(fx-fz)*0.5, tipY-(fz+fx)*0.5, 2, clr, true)
	vector.StrokeLine(screen, tipX, tipY, tipX-(fx+fz)*0.5, tipY-(fz-fx)*0.5, 2, clr, true)
}

// drawCharacters draws every character as a disc with its part number, and the
// controlled one with its heading and merge range
func (e *EbitenRenderer) drawCharacters(screen *ebiten.Image, g *state.Game, v view) {
	radius := world.ActorRadius * v.scale
	controlled := g.Possession.Controlled()
	face := e.getMonoFontFace()

	g.Characters.Each(func(c *characters.Character) {
		x, y := v.project(c.Transform.Position)
		if controlled != nil && c.ID == controlled.ID {
			return
		}
		vector.DrawFilledCircle(screen, x, y, radius, colorPart, true)
		e.drawLabel(screen, string(renderer.PartGlyph(c)), x, y, face, colorBackground)
	})

	if controlled == nil {
		return
	}
	x, y := v.project(g.Rig.Position)
	vector.StrokeCircle(screen, x, y, possession.MergeDistance*v.scale, 1, colorCombineRange, true)
	vector.DrawFilledCircle(screen, x, y, radius, colorPlayer, true)
	hx, hy := v.project(g.Rig.Position.Add(g.Rig.Forward().Mul(world.ActorRadius * 3)))
	vector.StrokeLine(screen, x, y, hx, hy, 2, colorPlayer, true)
}

// drawLabel draws str centred on (x, y)
func (e *EbitenRenderer) drawLabel(screen *ebiten.Image, str string, x, y float32, face *text.GoTextFace, clr color.Color) {
	w, h := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)-w/2, float64(y)-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawHUD draws the status bar and the current notification
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), hudHeight, colorPanelBackground, false)

	face := e.getSansFontFace()
	e.drawText(screen, renderer.StatusLine(g), 12, 8, face, colorText)
	e.drawText(screen, renderer.Compass(g.Rig.Yaw), 12, 8+int(face.Size)+6, face, colorSubtle)

	n := g.Notification
	if !n.Active(time.Now()) {
		return
	}
	clr := colorDenied
	switch n.Kind {
	case state.NotifyWon:
		clr = colorSuccess
	case state.NotifyCombine:
		clr = colorText
	}
	w, _ := text.Measure(n.Text, face, 0)
	e.drawText(screen, n.Text, int(float64(e.windowWidth)/2-w/2), 8+int(face.Size)+6, face, clr)
}

// drawText draws str with its top-left corner at (x, y)
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, face *text.GoTextFace, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
