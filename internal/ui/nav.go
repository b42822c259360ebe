package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction represents a navigation direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Input is one frame's worth of control state. The app builds it from the
// configured key bindings and hands it to the current screen, so screens
// never poll the keyboard themselves.
type Input struct {
	// Nav is an edge-triggered, auto-repeating navigation press.
	Nav Direction
	// Held movement keys, for continuous motion.
	Up, Down, Left, Right bool

	RotateLeft  bool
	RotateRight bool

	Enter      bool
	Back       bool
	ToggleList bool

	// Left mouse button, just pressed this frame, and where.
	Clicked          bool
	CursorX, CursorY int
}

// MoveVector returns the held movement keys as a screen-space direction.
func (in Input) MoveVector() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// PollNav returns the repeating arrow-key direction for this frame.
func PollNav() Direction {
	switch {
	case inputRepeating(ebiten.KeyArrowUp):
		return DirUp
	case inputRepeating(ebiten.KeyArrowDown):
		return DirDown
	case inputRepeating(ebiten.KeyArrowLeft):
		return DirLeft
	case inputRepeating(ebiten.KeyArrowRight):
		return DirRight
	}
	return DirNone
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}
