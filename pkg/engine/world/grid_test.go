package world

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var oneSpawn = []mgl32.Vec2{{1, 1}}

// makeRoomGrid returns a 5x5 maze with a 3x3 open interior and the exit on
// the west border, drawn on a wall pixel.
func makeRoomGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := FromRows([]string{
		"#####",
		"#...#",
		"E...#",
		"#...#",
		"#####",
	}, oneSpawn)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func TestIsOpen_OutOfRangeIsClosed(t *testing.T) {
	g := makeRoomGrid(t)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {5, 2}, {2, 5}, {-100, -100}, {100, 100}} {
		if g.IsOpen(c) {
			t.Errorf("IsOpen(%v) = true, want false", c)
		}
	}
}

func TestIsOpen_EveryCellMatchesBitmap(t *testing.T) {
	g := makeRoomGrid(t)
	g.ForEachCell(func(c Cell) {
		want := c.Col >= 1 && c.Col <= 3 && c.Row >= 1 && c.Row <= 3
		if c == g.Exit() {
			want = true
		}
		if got := g.IsOpen(c); got != want {
			t.Errorf("IsOpen(%v) = %v, want %v", c, got, want)
		}
	})
}

func TestIsOpen_ExitOverridesWallPixel(t *testing.T) {
	g := makeRoomGrid(t)
	exit := g.Exit()
	if exit != (Cell{Col: 0, Row: 2}) {
		t.Fatalf("Exit() = %v, want 0:2", exit)
	}
	if g.IsMarkedOpen(exit) {
		t.Error("IsMarkedOpen(exit) = true, want false (wall pixel)")
	}
	if !g.IsOpen(exit) {
		t.Error("IsOpen(exit) = false, want true")
	}
}

func TestToCell_RoundTripsCellCenters(t *testing.T) {
	for _, dims := range [][2]int{{5, 5}, {4, 6}, {1, 1}, {8, 3}} {
		open := make([]bool, dims[0]*dims[1])
		g, err := NewGrid(dims[0], dims[1], open, Cell{}, oneSpawn[:0:0])
		if !errors.Is(err, ErrNoSpawns) {
			t.Fatalf("NewGrid without spawns err = %v, want ErrNoSpawns", err)
		}
		g, err = NewGrid(dims[0], dims[1], open, Cell{}, []mgl32.Vec2{{0, 0}})
		if err != nil {
			t.Fatalf("NewGrid(%v): %v", dims, err)
		}
		g.ForEachCell(func(c Cell) {
			center := g.CellCenter(c)
			if got := g.ToCell(center); got != c {
				t.Errorf("%v: ToCell(CellCenter(%v)) = %v", dims, c, got)
			}
			_, lx, lz := g.Local(center)
			if lx != 0 || lz != 0 {
				t.Errorf("%v: Local(CellCenter(%v)) offsets = (%v, %v), want 0", dims, c, lx, lz)
			}
		})
	}
}

func TestGrid_IsCenteredOnOrigin(t *testing.T) {
	g := makeRoomGrid(t)
	if got := g.ToCell(mgl32.Vec3{0, 0, 0}); got != (Cell{2, 2}) {
		t.Errorf("ToCell(origin) = %v, want 2:2", got)
	}
	if got := g.ToCell(mgl32.Vec3{0.49, 0, -0.49}); got != (Cell{2, 2}) {
		t.Errorf("ToCell(0.49,-0.49) = %v, want 2:2", got)
	}
	if got := g.ToCell(mgl32.Vec3{0.51, 0, 0}); got != (Cell{3, 2}) {
		t.Errorf("ToCell(0.51,0) = %v, want 3:2", got)
	}
	if got := g.SpawnPosition(0); got != (mgl32.Vec3{-1, ActorHeight, -1}) {
		t.Errorf("SpawnPosition(0) = %v, want (-1, %v, -1)", got, ActorHeight)
	}
}

func TestNewGrid_ConfigurationErrors(t *testing.T) {
	open := make([]bool, 9)
	tests := []struct {
		name   string
		w, h   int
		open   []bool
		exit   Cell
		spawns []mgl32.Vec2
		want   error
	}{
		{"zero width", 0, 3, nil, Cell{}, oneSpawn, ErrBadDimensions},
		{"short mask", 3, 3, open[:5], Cell{}, oneSpawn, ErrBadBitmap},
		{"exit outside", 3, 3, open, Cell{3, 0}, oneSpawn, ErrExitOutOfBounds},
		{"exit negative", 3, 3, open, Cell{0, -1}, oneSpawn, ErrExitOutOfBounds},
		{"no spawns", 3, 3, open, Cell{}, nil, ErrNoSpawns},
		{"spawn outside", 3, 3, open, Cell{}, []mgl32.Vec2{{7, 1}}, ErrSpawnOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.w, tt.h, tt.open, tt.exit, tt.spawns)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGrid() err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromBitmap_Threshold(t *testing.T) {
	b := Bitmap{Width: 4, Height: 1, Pix: []uint8{0, 50, 51, 255}}
	g, err := FromBitmap(b, Cell{0, 0}, []mgl32.Vec2{{1, 0}})
	if err != nil {
		t.Fatalf("FromBitmap: %v", err)
	}
	want := []bool{true, true, false, false}
	for col, w := range want {
		if got := g.IsMarkedOpen(Cell{col, 0}); got != w {
			t.Errorf("pixel %d (%d): open = %v, want %v", col, b.Pix[col], got, w)
		}
	}
}

func TestBitmapFromImage_UsesRedChannelRowMajor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(2, 1, color.RGBA{R: 200, G: 0, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{G: 255, B: 255, A: 255})

	b := BitmapFromImage(img)
	if b.Width != 3 || b.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width, b.Height)
	}
	if b.At(0, 0) != 255 || b.At(2, 1) != 200 || b.At(1, 1) != 0 {
		t.Errorf("pixels = %v, want red channel values", b.Pix)
	}
	if b.At(-1, 0) != 255 || b.At(3, 0) != 255 {
		t.Error("At outside the bitmap should read as wall")
	}
}

func TestFromRows_RequiresExit(t *testing.T) {
	_, err := FromRows([]string{"...", "..."}, oneSpawn)
	if !errors.Is(err, ErrNoExit) {
		t.Errorf("FromRows without exit err = %v, want ErrNoExit", err)
	}
	_, err = FromRows([]string{"..e", ".."}, oneSpawn)
	if !errors.Is(err, ErrBadBitmap) {
		t.Errorf("FromRows ragged err = %v, want ErrBadBitmap", err)
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dc, dr := d.Delta()
		oc, or := d.Opposite().Delta()
		if dc != -oc || dr != -or {
			t.Errorf("%v delta (%d,%d) not opposite of %v (%d,%d)", d, dc, dr, d.Opposite(), oc, or)
		}
		c := Cell{2, 2}
		if c.Neighbor(d).Neighbor(d.Opposite()) != c {
			t.Errorf("Neighbor(%v) then back did not return to %v", d, c)
		}
	}
}
