package interp

import (
	"errors"
	"image/color"
	"testing"
)

var (
	shadow = color.RGBA{R: 0x20, G: 0x22, B: 0x2A, A: 0xFF}
	fore   = color.RGBA{R: 0xE8, G: 0xC5, B: 0x6A, A: 0x80}
)

func TestBlendEndpoints(t *testing.T) {
	if got := MustBlend(shadow, fore, 0); got != shadow {
		t.Fatalf("Blend(0) = %v, want %v", got, shadow)
	}
	if got := MustBlend(shadow, fore, 1); got != fore {
		t.Fatalf("Blend(1) = %v, want %v", got, fore)
	}
}

func TestBlendMidpoint(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 0, B: 50, A: 55}
	want := color.RGBA{R: 50, G: 50, B: 125, A: 155}
	if got := MustBlend(a, b, 0.5); got != want {
		t.Fatalf("Blend(.5) = %v, want %v", got, want)
	}
}

func TestBlendSymmetry(t *testing.T) {
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -1 && d <= 1
	}
	for i := 0; i <= 10; i++ {
		r := float64(i) / 10
		ab := MustBlend(shadow, fore, r)
		ba := MustBlend(fore, shadow, 1-r)
		if !near(ab.R, ba.R) || !near(ab.G, ba.G) || !near(ab.B, ba.B) || !near(ab.A, ba.A) {
			t.Fatalf("ratio %v: %v vs %v", r, ab, ba)
		}
	}
}

func TestBlendOutOfDomain(t *testing.T) {
	for _, r := range []float64{-0.5, 1.5} {
		if _, err := Blend(shadow, fore, r); !errors.Is(err, ErrDomain) {
			t.Errorf("Blend(%v) err = %v, want ErrDomain", r, err)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}
	got := WithAlpha(c, 0x80)
	want := color.RGBA{R: 0x80, G: 0x40, B: 0x00, A: 0x80}
	if got != want {
		t.Fatalf("WithAlpha = %v, want %v", got, want)
	}
	if got := Must(WithAlphaRatio(c, 1)); got != c {
		t.Fatalf("WithAlphaRatio(1) = %v, want %v", got, c)
	}
	if _, err := WithAlphaRatio(c, 2); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}
