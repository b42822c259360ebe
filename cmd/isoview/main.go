package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/isoview/assets/icon"
	"github.com/depeter/isoview/internal/app"
	"github.com/depeter/isoview/internal/config"
	"github.com/depeter/isoview/internal/constants"
	"github.com/depeter/isoview/internal/scene"
	"github.com/depeter/isoview/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Build the stage
	bp, err := loadScene(cfg.Scene.File)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	stage, err := scene.Build(bp)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	sf := &screenFactory{game: game, stage: stage}
	sf.pushStage()
	game.OnConfig = sf.applyConfig

	// Hot reload is a convenience; run without it if the watch fails.
	if path, err := config.ConfigPath(); err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Printf("Config hot reload disabled: %v", err)
		} else if err := game.WatchConfig(path); err != nil {
			log.Printf("Config hot reload disabled: %v", err)
		}
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("IsoView")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)
	ebiten.SetTPS(constants.TicksPerSecond)

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("Failed to stop config watcher: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
