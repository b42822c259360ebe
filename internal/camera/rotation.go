package camera

import (
	"math"

	"github.com/depeter/isoview/internal/interp"
)

// Direction is a quarter-turn request, expressed as the number of clockwise
// quarter turns to add modulo 4.
type Direction int

const (
	DirNone             Direction = 0
	DirClockwise        Direction = 1
	DirCounterClockwise Direction = 3
)

const (
	// DefaultRotationDuration is the length of one quarter turn in step units.
	DefaultRotationDuration = 100 * 30
	// DefaultAngleShift keeps box edges from lining up with the screen axes.
	DefaultAngleShift = 0.1
)

// RotationState tracks the camera orientation as one of four quarter turns
// and eases the rendered angle between them.
//
// A turn in progress cannot be interrupted; Trigger is ignored until it
// settles.
type RotationState struct {
	turn          int
	prevTurn      int
	transitioning bool
	elapsed       int
	duration      int
	shift         float64
	angle         float64
}

// NewRotationState returns a state resting at turn 0.
func NewRotationState(duration int, shift float64) RotationState {
	if duration <= 0 {
		duration = DefaultRotationDuration
	}
	return RotationState{
		duration: duration,
		shift:    shift,
		angle:    shift,
	}
}

// SetTiming changes the turn length and the angle shift. A non-positive
// duration keeps the current one. A resting angle moves to the new shift at
// once; a turn in progress picks it up on its next Update.
func (r *RotationState) SetTiming(duration int, shift float64) {
	if duration > 0 {
		r.duration = duration
	}
	r.shift = shift
	if !r.transitioning {
		r.angle = restingAngle(r.turn) + r.shift
	}
}

// Trigger starts a quarter turn. It reports whether the request was taken.
func (r *RotationState) Trigger(dir Direction) bool {
	d := int(dir) % 4
	if d < 0 {
		d += 4
	}
	if r.transitioning || d == 0 {
		return false
	}
	r.turn = (r.turn + d) % 4
	r.transitioning = true
	r.elapsed = 0
	return true
}

// Update advances a turn in progress by step units.
func (r *RotationState) Update(step int) {
	if !r.transitioning || step <= 0 {
		return
	}
	r.elapsed += step
	if r.elapsed >= r.duration {
		r.prevTurn = r.turn
		r.transitioning = false
		r.elapsed = 0
		r.angle = restingAngle(r.turn) + r.shift
		return
	}

	from, to := r.prevTurn, r.turn
	if d := to - from; d != 1 && d != -1 {
		// Crossing 0: count it as 4 so the sweep takes the short way round.
		if from == 0 {
			from = 4
		}
		if to == 0 {
			to = 4
		}
	}
	t := interp.Clamp01(float64(r.elapsed) / float64(r.duration))
	r.angle = interp.Must(interp.SineInterpolateDefault(restingAngle(from), restingAngle(to), t)) + r.shift
}

func restingAngle(turn int) float64 {
	return float64(turn) * math.Pi / 2
}

// Turn is the target quarter turn, 0 to 3.
func (r RotationState) Turn() int { return r.turn }

// PreviousTurn is the turn the current transition started from. It equals
// Turn when resting.
func (r RotationState) PreviousTurn() int { return r.prevTurn }

func (r RotationState) Transitioning() bool { return r.transitioning }

func (r RotationState) Elapsed() int { return r.elapsed }

func (r RotationState) Duration() int { return r.duration }

func (r RotationState) Shift() float64 { return r.shift }

// Angle is the eased rotation in radians, shift included.
func (r RotationState) Angle() float64 { return r.angle }

// Progress is how far the current transition has gone, in [0, 1]. It is 0
// when resting.
func (r RotationState) Progress() float64 {
	if !r.transitioning {
		return 0
	}
	return interp.Clamp01(float64(r.elapsed) / float64(r.duration))
}
