package tui

import (
	"testing"

	"mazeparts/pkg/game/renderer"
)

func TestClampWindow(t *testing.T) {
	tests := []struct {
		name            string
		start, total, n int
		want            int
	}{
		{"inside", 3, 20, 5, 3},
		{"before start", -2, 20, 5, 0},
		{"past end", 18, 20, 5, 15},
		{"window larger than maze", 4, 5, 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampWindow(tt.start, tt.total, tt.n); got != tt.want {
				t.Errorf("clampWindow(%d, %d, %d) = %d, want %d", tt.start, tt.total, tt.n, got, tt.want)
			}
		})
	}
}

func TestGetViewportSize_Minimums(t *testing.T) {
	rows, cols := New(renderer.Session{}).GetViewportSize()
	if rows < ViewportMinRows || cols < ViewportMinCols {
		t.Errorf("GetViewportSize() = %d, %d, below minimum", rows, cols)
	}
}
