package camera

import (
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/depeter/isoview/internal/geom"
)

// View is an immutable copy of everything the projection depends on. Render
// passes that run apart from the update loop project against a View.
type View struct {
	Center  dmath.Vec2
	Zoom    float64
	YFactor float64
	ZFactor float64
	Angle   float64
	Width   int
	Height  int
}

// RawDrawPosition projects (x, y, z) without centering on the camera. It is
// used for offsets anchored to an already projected point.
func (v View) RawDrawPosition(x, y, z float64) dmath.Vec2 {
	return dmath.NewVec2(x, y).
		Rotate(v.Angle).
		Mul(v.scale()).
		Sub(dmath.NewVec2(0, v.DrawSizeZ(z)))
}

// DrawPosition maps a world position to screen pixels.
func (v View) DrawPosition(x, y, z float64) dmath.Vec2 {
	return dmath.NewVec2(x, y).
		Sub(v.Center).
		Rotate(v.Angle).
		Mul(v.scale()).
		Add(dmath.NewVec2(float64(v.Width)/2, float64(v.Height)/2-v.DrawSizeZ(z)))
}

func (v View) DrawPositionV(p geom.Vec3) dmath.Vec2 {
	return v.DrawPosition(p.X, p.Y, p.Z)
}

// WorldDelta converts a screen-space direction into a ground-plane vector
// under the current rotation, so "up" on screen stays up whatever the turn.
func (v View) WorldDelta(screenDX, screenDY float64) dmath.Vec2 {
	if v.YFactor != 0 {
		screenDY /= v.YFactor
	}
	return dmath.NewVec2(screenDX, screenDY).Rotate(-v.Angle)
}

// scale squashes the ground plane vertically.
func (v View) scale() dmath.Vec2 {
	return dmath.NewVec2(v.Zoom, v.Zoom*v.YFactor)
}

func (v View) DrawSizeX(size float64) float64 { return size * v.Zoom }

func (v View) DrawSizeY(size float64) float64 { return size * v.Zoom * v.YFactor }

func (v View) DrawSizeZ(size float64) float64 { return size * v.Zoom * v.ZFactor }
