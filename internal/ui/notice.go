package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/isoview/internal/constants"
	"github.com/depeter/isoview/internal/interp"
)

const (
	NoticeDuration = 3 * constants.StepsPerSecond
	noticeFade     = constants.StepsPerSecond / 2
	noticeHeight   = 32.0
)

// Notice is a one-line banner at the bottom of the screen that fades out on
// its own. Showing a new message replaces the old one.
type Notice struct {
	text      string
	isErr     bool
	remaining int
}

func (n *Notice) Show(text string, isErr bool) {
	n.text = text
	n.isErr = isErr
	n.remaining = NoticeDuration
}

func (n *Notice) Update(step int) {
	n.remaining = max(n.remaining-step, 0)
}

func (n *Notice) Visible() bool { return n.remaining > 0 && n.text != "" }

func (n *Notice) Text() string { return n.text }

// Opacity is 1 until the last half second, then eases to 0.
func (n *Notice) Opacity() float64 {
	if !n.Visible() {
		return 0
	}
	if n.remaining >= noticeFade {
		return 1
	}
	t := float64(n.remaining) / noticeFade
	return interp.Must(interp.SineInterpolateDefault(0, 1, t))
}

func (n *Notice) Draw(dst *ebiten.Image, width, height int) {
	if !n.Visible() {
		return
	}
	a := n.Opacity()
	clr := ColorSuccess
	if n.isErr {
		clr = ColorError
	}

	tw, _ := MeasureText(n.text, FontSizeSmall)
	w := tw + 2*ListTextPadX
	x := (float64(width) - w) / 2
	y := float64(height) - noticeHeight - PanelMargin

	bg := interp.Must(interp.WithAlphaRatio(ColorOverlay, a*float64(ColorOverlay.A)/0xFF))
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), noticeHeight, bg, false)
	DrawText(dst, n.text, x+ListTextPadX, y+8, FontSizeSmall, interp.Must(interp.WithAlphaRatio(clr, a)))
}
