// Package interp holds the interpolation and easing primitives shared by the
// camera and the list widget.
package interp

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when a ratio or progress value is outside [0, 1] or an
// easing mode has no curve.
var ErrDomain = errors.New("interp: value out of domain")

func inUnit(t float64) bool {
	return t >= 0 && t <= 1
}

// Linear interpolates between a and b. The endpoints are returned as-is so no
// rounding creeps in at t == 0 or t == 1.
func Linear(a, b, t float64) (float64, error) {
	switch {
	case t == 0:
		return a, nil
	case t == 1:
		return b, nil
	case !inUnit(t):
		return 0, fmt.Errorf("linear t=%v: %w", t, ErrDomain)
	}
	return a*(1-t) + b*t, nil
}

// SineEase shapes t through a sine curve.
//
//	easeIn && easeOut  half wave, slow at both ends
//	easeIn             quarter wave, slow start
//	easeOut            quarter wave, slow finish
//
// At least one of easeIn and easeOut must be set.
func SineEase(t float64, easeIn, easeOut bool) (float64, error) {
	if !easeIn && !easeOut {
		return 0, fmt.Errorf("sine ease: easeIn and easeOut both false: %w", ErrDomain)
	}
	if !inUnit(t) {
		return 0, fmt.Errorf("sine ease t=%v: %w", t, ErrDomain)
	}
	switch {
	case easeIn && easeOut:
		return math.Sin(math.Pi*t-math.Pi/2)/2 + 0.5, nil
	case easeIn:
		return math.Sin(math.Pi/2*t-math.Pi/2) + 1, nil
	default:
		return math.Sin(math.Pi / 2 * t), nil
	}
}

// SineInterpolate interpolates between a and b with t shaped by SineEase.
func SineInterpolate(a, b, t float64, easeIn, easeOut bool) (float64, error) {
	e, err := SineEase(t, easeIn, easeOut)
	if err != nil {
		return 0, err
	}
	return Linear(a, b, e)
}

// SineInterpolateDefault is SineInterpolate eased at both ends.
func SineInterpolateDefault(a, b, t float64) (float64, error) {
	return SineInterpolate(a, b, t, true, true)
}

// Must unwraps v, panicking on err. Use it only where the inputs are clamped
// by construction; a domain error there is a programming bug.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Clamp01 clamps t into [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
