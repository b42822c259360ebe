package main

import (
	"fmt"
	"os"

	"github.com/depeter/isoview/internal/app"
	"github.com/depeter/isoview/internal/config"
	"github.com/depeter/isoview/internal/scene"
	"github.com/depeter/isoview/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game  *app.Game
	stage *scene.Stage

	stageScreen *ui.StageScreen
}

func (sf *screenFactory) pushStage() {
	cfg := sf.game.Config
	s := ui.NewStageScreen(sf.stage, cfg.Camera.Options(), cfg.UI.Width, cfg.UI.Height)
	sf.stageScreen = s
	sf.applyConfig(cfg)
	sf.game.Screens.Replace(s)
}

// applyConfig pushes tuning into the live screens. Window size and the scene
// file only take effect on restart.
func (sf *screenFactory) applyConfig(cfg *config.Config) {
	if sf.stageScreen == nil {
		return
	}
	sf.stageScreen.SetTuning(cfg.Camera.Options(), cfg.List.Gap, cfg.List.Margin, cfg.List.FocusAnimLength, cfg.Scene.PlayerSpeed)
}

// loadScene reads the configured stage file, or the built-in stage when none
// is set.
func loadScene(path string) (scene.Blueprint, error) {
	if path == "" {
		return scene.DefaultBlueprint(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.Blueprint{}, err
	}
	bp, err := scene.LoadBlueprint(data)
	if err != nil {
		return scene.Blueprint{}, fmt.Errorf("%s: %w", path, err)
	}
	return bp, nil
}
