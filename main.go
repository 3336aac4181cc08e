package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"mazeparts/pkg/engine/terminal"
	"mazeparts/pkg/game/config"
	"mazeparts/pkg/game/devtools"
	"mazeparts/pkg/game/gameplay"
	"mazeparts/pkg/game/level"
	"mazeparts/pkg/game/renderer"
	ebitenrenderer "mazeparts/pkg/game/renderer/ebiten"
	"mazeparts/pkg/game/renderer/tui"
	"mazeparts/pkg/game/state"
)

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocalesDir, cfg.Locale, "default")
}

// reloader returns a ReloadFunc that rebuilds g from the level file at path
func reloader(path string) renderer.ReloadFunc {
	return func(g *state.Game) error {
		lvl, err := level.Load(path)
		if err != nil {
			return err
		}
		return gameplay.SetupLevel(g, lvl.Grid)
	}
}

// newRenderer picks the frontend by name
func newRenderer(name string, session renderer.Session) renderer.Renderer {
	switch name {
	case "tui":
		if !terminal.IsInteractive() {
			log.Fatalf("the tui renderer needs an interactive terminal")
		}
		return tui.New(session)
	case "ebiten":
		return ebitenrenderer.New(session)
	}
	log.Fatalf("unknown renderer %q (want ebiten or tui)", name)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	levelPath := flag.String("level", cfg.Level, "level descriptor (YAML)")
	rendererName := flag.String("renderer", cfg.Renderer, "frontend: ebiten or tui")
	dumpPath := flag.String("dump", "", "write a map dump of the loaded level to this file and exit")
	screenshotDir := flag.String("screenshot", "", "write an HTML screenshot of the loaded level to this directory and exit")
	flag.Parse()

	initGettext(cfg)

	lvl, err := level.Load(*levelPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	g, err := gameplay.BuildGame(lvl.Grid, cfg.Settings())
	if err != nil {
		log.Fatalf("build game: %v", err)
	}

	if *dumpPath != "" {
		path, err := devtools.DumpMapToFile(g, *dumpPath)
		if err != nil {
			log.Fatalf("map dump: %v", err)
		}
		log.Printf("Map dump written to %s", path)
		return
	}
	if *screenshotDir != "" {
		path, err := devtools.SaveScreenshotHTML(g, *screenshotDir)
		if err != nil {
			log.Fatalf("screenshot: %v", err)
		}
		log.Printf("Screenshot written to %s", path)
		return
	}

	session := renderer.Session{Reload: reloader(*levelPath)}
	if cfg.Watch {
		w, err := level.NewWatcher(filepath.Dir(*levelPath))
		if err != nil {
			log.Fatalf("watch %s: %v", *levelPath, err)
		}
		defer w.Close()
		session.Changes = w
		log.Printf("Watching %s for level changes", filepath.Dir(*levelPath))
	}

	renderer.SetRenderer(newRenderer(*rendererName, session))
	renderer.Init()
	if err := renderer.Run(g); err != nil {
		log.Fatalf("%s renderer: %v", *rendererName, err)
	}
}
