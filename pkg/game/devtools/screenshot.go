package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mazeparts/pkg/game/renderer"
	"mazeparts/pkg/game/state"
)

// SaveScreenshotHTML saves the current map view as an HTML file in dir and returns its path
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(filename, []byte(ScreenshotHTML(g)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// ScreenshotHTML renders the whole maze, status and notification as a standalone HTML page
func ScreenshotHTML(g *state.Game) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze Parts - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .exit { color: #00aa00; font-weight: bold; }
        .part { color: #ffa500; font-weight: bold; }
        .marker { color: #ee82ee; }
        .notification { margin-top: 20px; color: #ff6464; }
    </style>
</head>
<body>
`)

	b.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(renderer.StatusLine(g))))

	b.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range renderer.MapRows(g) {
		b.WriteString(`        <div class="map-row">`)
		for _, ch := range row {
			b.WriteString(fmt.Sprintf(`<span class="%s">%c</span>`, glyphClass(ch), ch))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	if g.Notification.Kind != state.NotifyNone {
		b.WriteString(fmt.Sprintf(`    <div class="notification">%s</div>`+"\n", html.EscapeString(g.Notification.Text)))
	}

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

// glyphClass returns the CSS class for a map glyph
func glyphClass(ch rune) string {
	switch ch {
	case renderer.GlyphWall:
		return "wall"
	case renderer.GlyphFloor:
		return "floor"
	case renderer.GlyphExit:
		return "exit"
	case renderer.GlyphControlled:
		return "player"
	case renderer.GlyphMarker:
		return "marker"
	}
	return "part"
}
