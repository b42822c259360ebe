package ui

import (
	"fmt"
	"image"
	"image/color"
)

// recordingSurface logs every call so tests can assert draw order and clip
// handling.
type recordingSurface struct {
	clip    image.Rectangle
	calls   []string
	fills   []fillCall
	strokes []strokeCall
}

type fillCall struct {
	x, y, w, h float64
	clr        color.Color
}

type strokeCall struct {
	x, y, w, h, width float64
	clr               color.Color
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{clip: image.Rect(0, 0, 1000, 1000)}
}

func (s *recordingSurface) Clip() image.Rectangle { return s.clip }

func (s *recordingSurface) SetClip(r image.Rectangle) {
	s.calls = append(s.calls, fmt.Sprintf("clip %v", r))
	s.clip = r
}

func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("fill %v,%v", x, y))
	s.fills = append(s.fills, fillCall{x, y, w, h, clr})
}

func (s *recordingSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	s.calls = append(s.calls, "stroke")
	s.strokes = append(s.strokes, strokeCall{x, y, w, h, width, clr})
}

func (s *recordingSurface) DrawText(txt string, x, y, size float64, clr color.Color) {
	s.calls = append(s.calls, "text "+txt)
}

// stubItem is a fixed-height row that logs its draws on the surface.
type stubItem struct {
	name   string
	height int
	panics bool
}

func (s *stubItem) ListItemHeight() int { return s.height }

func (s *stubItem) DrawListItemContent(dst Surface, x, y, width int, selected bool) {
	if s.panics {
		panic("draw failed")
	}
	dst.DrawText(fmt.Sprintf("%s@%d sel=%v", s.name, y, selected), float64(x), float64(y), FontSizeBody, ColorText)
}
