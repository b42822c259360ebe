// Package geom holds the world position type used by the camera and the
// stage. Planar vectors are donburi's math.Vec2.
package geom

import dmath "github.com/yohamta/donburi/features/math"

// Vec3 is a world position: X and Y on the ground plane, Z the height above it.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// XY drops the height.
func (v Vec3) XY() dmath.Vec2 {
	return dmath.NewVec2(v.X, v.Y)
}
