package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/isoview/internal/config"
	"github.com/depeter/isoview/internal/constants"
	"github.com/depeter/isoview/internal/ui"
)

// Game implements ebiten.Game. Every tick advances the current screen by
// constants.StepPerTick step units.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	Width, Height int

	// OnConfig is called from Update with each hot-reloaded config that
	// passed validation.
	OnConfig func(cfg *config.Config)

	keys    bindings
	watcher *config.Watcher
	notice  ui.Notice
}

// NewGame creates the Game. It fails only on key bindings it cannot resolve.
func NewGame(cfg *config.Config) (*Game, error) {
	keys, err := newBindings(cfg.Keybinds)
	if err != nil {
		return nil, err
	}
	return &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		keys:    keys,
	}, nil
}

// WatchConfig reloads tuning from path whenever it changes.
func (g *Game) WatchConfig(path string) error {
	w, err := config.Watch(path)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.keys.fullscreenPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.applyReloads()
	g.notice.Update(constants.StepPerTick)

	if err := g.Screens.Update(constants.StepPerTick, g.keys.poll()); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

// applyReloads takes any config the watcher has produced since the last tick.
// A config whose key bindings do not resolve is dropped whole.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.reloadFailed(err)
		}
	default:
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if !ok {
			g.watcher = nil
			return
		}
		keys, err := newBindings(cfg.Keybinds)
		if err != nil {
			g.reloadFailed(err)
			return
		}
		g.keys = keys
		g.Config = cfg
		if g.OnConfig != nil {
			g.OnConfig(cfg)
		}
		log.Printf("Config reloaded")
		g.notice.Show("Config reloaded", false)
	default:
	}
}

func (g *Game) reloadFailed(err error) {
	log.Printf("Config reload failed: %v", err)
	g.notice.Show("Config reload failed: "+err.Error(), true)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	g.notice.Draw(screen, g.Width, g.Height)
	ui.DrawDebugOverlay(screen, g.Screens.DebugLines())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
