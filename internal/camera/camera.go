// Package camera maps world positions onto the screen for the isometric view.
// The camera follows a target with step-scaled exponential smoothing and
// rotates in eased quarter turns.
package camera

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/depeter/isoview/internal/geom"
)

// PositionProvider is anything the camera can follow. The camera never owns
// it.
type PositionProvider interface {
	Position() dmath.Vec2
}

// PositionFunc adapts a plain function to PositionProvider.
type PositionFunc func() dmath.Vec2

func (f PositionFunc) Position() dmath.Vec2 { return f() }

// Options holds the per-instance tuning constants.
type Options struct {
	Zoom    float64
	YFactor float64
	ZFactor float64
	// FollowSpeed is the per-step decay base of the follow smoothing; it must
	// be greater than 1.
	FollowSpeed      float64
	Shift            float64
	RotationDuration int
}

// DefaultFollowSpeed closes 80% of the gap over 60 step units.
var DefaultFollowSpeed = math.Pow(5, 1.0/60)

func DefaultOptions() Options {
	return Options{
		Zoom:             50,
		YFactor:          0.5,
		ZFactor:          1,
		FollowSpeed:      DefaultFollowSpeed,
		Shift:            DefaultAngleShift,
		RotationDuration: DefaultRotationDuration,
	}
}

// Camera is owned by a single scene and updated once per tick. The projection
// methods only read state and may be called any number of times per frame.
type Camera struct {
	center      dmath.Vec2
	zoom        float64
	yFactor     float64
	zFactor     float64
	followSpeed float64
	rotation    RotationState
	target      PositionProvider
	width       int
	height      int
}

// New creates a camera centered on target.
func New(target PositionProvider, opts Options) *Camera {
	if opts.FollowSpeed <= 1 {
		opts.FollowSpeed = DefaultFollowSpeed
	}
	c := &Camera{
		zoom:        opts.Zoom,
		yFactor:     opts.YFactor,
		zFactor:     opts.ZFactor,
		followSpeed: opts.FollowSpeed,
		rotation:    NewRotationState(opts.RotationDuration, opts.Shift),
		target:      target,
	}
	c.SnapToTarget()
	return c
}

// Update moves the center toward the target and advances the rotation by
// step units. Rotation input is only read while the camera is at rest. A
// non-positive step changes nothing.
func (c *Camera) Update(step int, in Input) {
	if step <= 0 {
		return
	}
	if c.target != nil {
		delta := c.target.Position().Sub(c.center)
		c.center = c.center.Add(delta.MulScalar(1 - math.Pow(c.followSpeed, -float64(step))))
	}
	c.rotation.Trigger(in.Direction())
	c.rotation.Update(step)
}

// SetTarget switches the followed entity. The center glides to it on the
// following updates.
func (c *Camera) SetTarget(target PositionProvider) {
	c.target = target
}

func (c *Camera) Target() PositionProvider { return c.target }

// SnapToTarget puts the center on the target immediately.
func (c *Camera) SnapToTarget() {
	if c.target != nil {
		c.center = c.target.Position()
	}
}

// SetTuning applies new projection, follow and rotation constants, keeping
// the current center and turn.
func (c *Camera) SetTuning(opts Options) {
	c.zoom = opts.Zoom
	c.yFactor = opts.YFactor
	c.zFactor = opts.ZFactor
	if opts.FollowSpeed > 1 {
		c.followSpeed = opts.FollowSpeed
	}
	c.rotation.SetTiming(opts.RotationDuration, opts.Shift)
}

func (c *Camera) SetSceneSize(width, height int) {
	c.width = width
	c.height = height
}

func (c *Camera) SceneSize() (width, height int) {
	return c.width, c.height
}

func (c *Camera) Center() dmath.Vec2 { return c.center }

func (c *Camera) Zoom() float64 { return c.zoom }

func (c *Camera) RotationAngle() float64 { return c.rotation.Angle() }

// Rotation returns a copy of the rotation state.
func (c *Camera) Rotation() RotationState { return c.rotation }

// Snapshot captures the projection inputs as of now.
func (c *Camera) Snapshot() View {
	return View{
		Center:  c.center,
		Zoom:    c.zoom,
		YFactor: c.yFactor,
		ZFactor: c.zFactor,
		Angle:   c.rotation.Angle(),
		Width:   c.width,
		Height:  c.height,
	}
}

func (c *Camera) RawDrawPosition(x, y, z float64) dmath.Vec2 {
	return c.Snapshot().RawDrawPosition(x, y, z)
}

func (c *Camera) DrawPosition(x, y, z float64) dmath.Vec2 {
	return c.Snapshot().DrawPosition(x, y, z)
}

func (c *Camera) DrawPositionV(v geom.Vec3) dmath.Vec2 {
	return c.DrawPosition(v.X, v.Y, v.Z)
}

// DrawPositionMode picks between RawDrawPosition and DrawPosition.
func (c *Camera) DrawPositionMode(x, y, z float64, raw bool) dmath.Vec2 {
	if raw {
		return c.RawDrawPosition(x, y, z)
	}
	return c.DrawPosition(x, y, z)
}

func (c *Camera) XPosition(x, y float64) float64 {
	return c.DrawPosition(x, y, 0).X
}

func (c *Camera) YPosition(x, y, z float64) float64 {
	return c.DrawPosition(x, y, z).Y
}

func (c *Camera) DrawSizeX(size float64) float64 { return size * c.zoom }

func (c *Camera) DrawSizeY(size float64) float64 { return size * c.zoom * c.yFactor }

func (c *Camera) DrawSizeZ(size float64) float64 { return size * c.zoom * c.zFactor }
