package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the screen's state lines and the pressed keys if
// the overlay is visible.
func DrawDebugOverlay(screen *ebiten.Image, stateLines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginL = 20.0
		marginT = 20.0
	)

	var pressedKeys []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressedKeys = append(pressedKeys, k)
		}
	}

	lines := 2 // header + separator
	lines += max(len(stateLines), 1)
	lines += 2 // blank + keys header
	lines += max(len(pressedKeys), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 420.0
	px := marginL
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, fmt.Sprintf("Debug (F12 to close)  %.0f TPS", ebiten.ActualTPS()), x, y, FontSizeSmall, ColorForeground)
	y += lineH

	DrawText(screen, "--- state ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(stateLines) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
	} else {
		for _, line := range stateLines {
			DrawText(screen, line, x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}

	y += lineH * 0.5
	DrawText(screen, "--- keys pressed ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(pressedKeys) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
	} else {
		for _, k := range pressedKeys {
			DrawText(screen, fmt.Sprintf("  %s (%d)", k.String(), int(k)), x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}
}
