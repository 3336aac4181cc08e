package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts creates the font sources from the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.sansFontSource = sans
	e.monoFontSource = mono
	return nil
}

// getUIFontSize returns the font size for UI text, scaled to the current tile size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / defaultTileSize
	if size < 12 {
		size = 12
	}
	if size > 24 {
		size = 24
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.checkFontSize()
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedSansFace
}

// getMonoFontFace returns a cached monospace font face for part numbers
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.checkFontSize()
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}

// checkFontSize drops the cached faces when the UI font size changed
func (e *EbitenRenderer) checkFontSize() float64 {
	size := e.getUIFontSize()
	if e.cachedUIFontSize != size {
		e.invalidateFontCache()
		e.cachedUIFontSize = size
	}
	return size
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedSansFace = nil
	e.cachedMonoFace = nil
}
