package world

import (
	"image"
)

// WallThreshold is the brightness above which a bitmap pixel is a wall.
const WallThreshold = 50

// Bitmap is a row-major single-channel maze image. Width is the row stride.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// BitmapFromImage extracts the red channel of a decoded image.
func BitmapFromImage(img image.Image) Bitmap {
	bounds := img.Bounds()
	b := Bitmap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			b.Pix[(y-bounds.Min.Y)*b.Width+(x-bounds.Min.X)] = uint8(r >> 8)
		}
	}
	return b
}

// At returns the pixel value at (x, y), or 255 (wall) outside the bitmap.
func (b Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 255
	}
	return b.Pix[y*b.Width+x]
}
