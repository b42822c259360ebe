package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestLinearEndpointsExact(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"small", 0.1, 0.7},
		{"negative", -3.3, 17.9},
		{"huge", 1e300, -1e300},
		{"equal", 42, 42},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Must(Linear(c.a, c.b, 0)); got != c.a {
				t.Fatalf("Linear(t=0) = %v, want %v", got, c.a)
			}
			if got := Must(Linear(c.a, c.b, 1)); got != c.b {
				t.Fatalf("Linear(t=1) = %v, want %v", got, c.b)
			}
		})
	}
}

func TestLinearMidpoint(t *testing.T) {
	got, err := Linear(10, 20, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12.5 {
		t.Fatalf("Linear(10, 20, .25) = %v, want 12.5", got)
	}
}

func TestLinearOutOfDomain(t *testing.T) {
	for _, tv := range []float64{-0.0001, 1.0001, math.NaN(), math.Inf(1)} {
		if _, err := Linear(0, 1, tv); !errors.Is(err, ErrDomain) {
			t.Errorf("Linear(t=%v) err = %v, want ErrDomain", tv, err)
		}
	}
}

type sineMode struct {
	name            string
	easeIn, easeOut bool
	oracle          ease.TweenFunc
}

var sineModes = []sineMode{
	{"in_out", true, true, ease.InOutSine},
	{"in", true, false, ease.InSine},
	{"out", false, true, ease.OutSine},
}

func TestSineEaseEndpoints(t *testing.T) {
	for _, m := range sineModes {
		t.Run(m.name, func(t *testing.T) {
			if got := Must(SineEase(0, m.easeIn, m.easeOut)); math.Abs(got) > 1e-12 {
				t.Fatalf("f(0) = %v, want 0", got)
			}
			if got := Must(SineEase(1, m.easeIn, m.easeOut)); math.Abs(got-1) > 1e-12 {
				t.Fatalf("f(1) = %v, want 1", got)
			}
		})
	}
}

func TestSineEaseMonotonic(t *testing.T) {
	const samples = 1000
	for _, m := range sineModes {
		t.Run(m.name, func(t *testing.T) {
			prev := Must(SineEase(0, m.easeIn, m.easeOut))
			for i := 1; i <= samples; i++ {
				x := float64(i) / samples
				cur := Must(SineEase(x, m.easeIn, m.easeOut))
				if cur < prev {
					t.Fatalf("f(%v) = %v < f(prev) = %v", x, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestSineEaseMatchesTweenCurves(t *testing.T) {
	for _, m := range sineModes {
		t.Run(m.name, func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				x := float64(i) / 20
				got := Must(SineEase(x, m.easeIn, m.easeOut))
				want := float64(m.oracle(float32(x), 0, 1, 1))
				if math.Abs(got-want) > 1e-5 {
					t.Fatalf("f(%v) = %v, tween curve gives %v", x, got, want)
				}
			}
		})
	}
}

func TestSineEaseNoCurve(t *testing.T) {
	if _, err := SineEase(0.5, false, false); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}

func TestSineInterpolate(t *testing.T) {
	got := Must(SineInterpolateDefault(0, math.Pi/2, 0.5))
	if math.Abs(got-math.Pi/4) > 1e-12 {
		t.Fatalf("midpoint = %v, want %v", got, math.Pi/4)
	}
	if got := Must(SineInterpolate(3, 9, 1, false, true)); math.Abs(got-9) > 1e-12 {
		t.Fatalf("end = %v, want 9", got)
	}
	if _, err := SineInterpolate(0, 1, 2, true, true); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Must did not panic on error")
		}
	}()
	Must(Linear(0, 1, 5))
}
