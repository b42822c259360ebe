package interp

import (
	"fmt"
	"image/color"
	"math"
)

// Blend mixes a and b per channel, alpha included. ratio 0 yields a and
// ratio 1 yields b exactly.
func Blend(a, b color.RGBA, ratio float64) (color.RGBA, error) {
	switch {
	case ratio == 0:
		return a, nil
	case ratio == 1:
		return b, nil
	case !inUnit(ratio):
		return color.RGBA{}, fmt.Errorf("blend ratio=%v: %w", ratio, ErrDomain)
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}, nil
}

// MustBlend is Blend for ratios that are already clamped.
func MustBlend(a, b color.RGBA, ratio float64) color.RGBA {
	return Must(Blend(a, b, ratio))
}

// WithAlpha returns c with its alpha replaced.
//
// The channels of color.RGBA are alpha-premultiplied, so they are scaled
// along with the alpha to keep the hue.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	if c.A == 0 {
		return color.RGBA{}
	}
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*float64(alpha)/float64(c.A))))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: alpha}
}

// WithAlphaRatio is WithAlpha with the alpha given as a fraction of 255.
func WithAlphaRatio(c color.RGBA, ratio float64) (color.RGBA, error) {
	if !inUnit(ratio) {
		return color.RGBA{}, fmt.Errorf("alpha ratio=%v: %w", ratio, ErrDomain)
	}
	return WithAlpha(c, uint8(math.Round(ratio*255))), nil
}
