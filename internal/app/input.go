package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/isoview/internal/config"
	"github.com/depeter/isoview/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"shift":     ebiten.KeyShift,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// bindings is the resolved form of config.KeybindConfig.
type bindings struct {
	rotateLeft  ebiten.Key
	rotateRight ebiten.Key
	toggleList  ebiten.Key
	sel         ebiten.Key
	back        ebiten.Key
	fullscreen  ebiten.Key
}

func newBindings(kb config.KeybindConfig) (bindings, error) {
	var b bindings
	for _, bind := range []struct {
		field string
		name  string
		key   *ebiten.Key
	}{
		{"rotate_left", kb.RotateLeft, &b.rotateLeft},
		{"rotate_right", kb.RotateRight, &b.rotateRight},
		{"toggle_list", kb.ToggleList, &b.toggleList},
		{"select", kb.Select, &b.sel},
		{"back", kb.Back, &b.back},
		{"fullscreen", kb.Fullscreen, &b.fullscreen},
	} {
		k, ok := parseKey(bind.name)
		if !ok {
			return bindings{}, fmt.Errorf("keybinds.%s: unknown key %q", bind.field, bind.name)
		}
		*bind.key = k
	}
	return b, nil
}

// poll reads this frame's keyboard and mouse state. Rotation keys are read as
// held so that keeping one down chains quarter turns; the camera ignores
// requests while a turn is in progress.
func (b bindings) poll() ui.Input {
	in := ui.Input{
		Nav:         ui.PollNav(),
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		RotateLeft:  ebiten.IsKeyPressed(b.rotateLeft),
		RotateRight: ebiten.IsKeyPressed(b.rotateRight),
		ToggleList:  inpututil.IsKeyJustPressed(b.toggleList),
		Back:        inpututil.IsKeyJustPressed(b.back),
	}
	// Alt+Enter is fullscreen, not select.
	in.Enter = inpututil.IsKeyJustPressed(b.sel) && !ebiten.IsKeyPressed(ebiten.KeyAlt)
	in.CursorX, in.CursorY, in.Clicked = ui.MouseJustClicked()
	return in
}

func (b bindings) fullscreenPressed() bool {
	if inpututil.IsKeyJustPressed(b.fullscreen) {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)
}
