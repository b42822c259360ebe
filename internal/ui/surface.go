package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawing capability widgets render through.
//
// Clip and SetClip bracket a narrowed drawing region; callers save the old
// region before narrowing and restore it afterwards.
type Surface interface {
	Clip() image.Rectangle
	SetClip(r image.Rectangle)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, strokeWidth float64, clr color.Color)
	DrawText(txt string, x, y, size float64, clr color.Color)
}

// ImageSurface draws onto an ebiten image. Clipping is done with sub-images,
// which keep the parent's coordinate space.
type ImageSurface struct {
	root *ebiten.Image
	clip image.Rectangle
}

func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{root: dst, clip: dst.Bounds()}
}

func (s *ImageSurface) Clip() image.Rectangle {
	return s.clip
}

func (s *ImageSurface) SetClip(r image.Rectangle) {
	s.clip = r.Intersect(s.root.Bounds())
}

func (s *ImageSurface) target() *ebiten.Image {
	if s.clip == s.root.Bounds() {
		return s.root
	}
	return s.root.SubImage(s.clip).(*ebiten.Image)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.clip.Empty() {
		return
	}
	vector.DrawFilledRect(s.target(), float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *ImageSurface) StrokeRect(x, y, w, h, strokeWidth float64, clr color.Color) {
	if s.clip.Empty() {
		return
	}
	vector.StrokeRect(s.target(), float32(x), float32(y), float32(w), float32(h), float32(strokeWidth), clr, false)
}

func (s *ImageSurface) DrawText(txt string, x, y, size float64, clr color.Color) {
	if s.clip.Empty() {
		return
	}
	DrawText(s.target(), txt, x, y, size, clr)
}

// Image returns the full, unclipped destination.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.root
}
