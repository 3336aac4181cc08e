// Package level loads maze level descriptors and their bitmaps.
package level

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"
	"gopkg.in/yaml.v3"

	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/generator"
)

var ErrMissingMaze = errors.New("level: descriptor has no maze image, rows or generate section")

// Generate asks for a random maze instead of a stored one.
type Generate struct {
	// Algorithm is "bsp" (default) or "line_walker".
	Algorithm string `yaml:"algorithm"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Parts     int    `yaml:"parts"`
	Seed      int64  `yaml:"seed"`
}

// Descriptor is the on-disk description of a level.
type Descriptor struct {
	Name string `yaml:"name"`
	// Maze is a PNG or BMP path, relative to the descriptor.
	Maze string `yaml:"maze"`
	// Rows is an inline text maze used instead of Maze (see world.FromRows).
	Rows []string `yaml:"rows"`
	// Exit is [col, row]. Ignored for inline mazes, which mark the exit in Rows.
	Exit [2]int `yaml:"exit"`
	// Spawns are [x, y] in grid coordinates, cell centres on integers.
	Spawns [][2]float32 `yaml:"spawns"`
	// Generate replaces Maze, Rows, Exit and Spawns with a generated maze.
	Generate *Generate `yaml:"generate"`
}

// Level is a loaded, validated level.
type Level struct {
	Path       string
	Descriptor Descriptor
	Grid       *world.Grid
}

// Load reads a descriptor file and builds its grid.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", path, err)
	}
	grid, err := desc.Build(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", path, err)
	}
	return &Level{Path: path, Descriptor: desc, Grid: grid}, nil
}

// Parse decodes a YAML descriptor.
func Parse(data []byte) (Descriptor, error) {
	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Descriptor{}, fmt.Errorf("unmarshal: %w", err)
	}
	return desc, nil
}

// Build turns the descriptor into a grid. Relative maze paths are resolved
// against dir.
func (d Descriptor) Build(dir string) (*world.Grid, error) {
	if d.Generate != nil {
		gen, err := generator.ByName(d.Generate.Algorithm)
		if err != nil {
			return nil, err
		}
		return gen.Generate(generator.Options{
			Width:  d.Generate.Width,
			Height: d.Generate.Height,
			Parts:  d.Generate.Parts,
			Seed:   d.Generate.Seed,
		})
	}

	spawns := make([]mgl32.Vec2, len(d.Spawns))
	for i, s := range d.Spawns {
		spawns[i] = mgl32.Vec2{s[0], s[1]}
	}

	if len(d.Rows) > 0 {
		return world.FromRows(d.Rows, spawns)
	}
	if d.Maze == "" {
		return nil, ErrMissingMaze
	}

	path := d.Maze
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	bitmap, err := LoadBitmap(path)
	if err != nil {
		return nil, err
	}
	return world.FromBitmap(bitmap, world.Cell{Col: d.Exit[0], Row: d.Exit[1]}, spawns)
}

// LoadBitmap decodes a PNG or BMP maze image.
func LoadBitmap(path string) (world.Bitmap, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return world.Bitmap{}, fmt.Errorf("load maze %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return world.Bitmap{}, fmt.Errorf("decode maze %s: %w", path, err)
	}
	return world.BitmapFromImage(img), nil
}
