// Package ebiten provides an Ebiten-based top-down renderer for the maze.
package ebiten

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for closed cells
	colorFloor           = color.RGBA{60, 60, 80, 255}    // Open floor
	colorExitFloor       = color.RGBA{40, 90, 40, 255}    // Exit floor
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue wall faces
	colorLintel          = color.RGBA{100, 255, 100, 255} // Bright green over the exit
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPart            = colornames.Orange
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorSuccess         = color.RGBA{100, 255, 150, 255} // Green for success
	colorMarker          = colornames.Violet
	colorMarkerPreview   = color.RGBA{238, 130, 238, 110} // Translucent violet
	colorMarkerHighlight = colornames.Yellow
	colorCombineRange    = color.RGBA{255, 220, 100, 120} // Faint yellow ring
)

// Tile size constraints
const (
	minTileSize     = 16
	maxTileSize     = 128
	tileSizeStep    = 8
	defaultTileSize = 48
	baseFontSize    = 16.0
)

// Layout
const (
	hudHeight     = 64
	defaultWidth  = 1024
	defaultHeight = 768
)
