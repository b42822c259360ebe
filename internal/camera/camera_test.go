package camera

import (
	"fmt"
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

type fixedTarget struct {
	pos dmath.Vec2
}

func (f *fixedTarget) Position() dmath.Vec2 { return f.pos }

func nearVec(a, b dmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewCentersOnTarget(t *testing.T) {
	target := &fixedTarget{pos: dmath.NewVec2(3, -2)}
	c := New(target, DefaultOptions())
	if c.Center() != target.pos {
		t.Fatalf("center = %v, want %v", c.Center(), target.pos)
	}
}

func TestFollowApproachesWithoutOvershoot(t *testing.T) {
	target := &fixedTarget{}
	c := New(target, DefaultOptions())
	target.pos = dmath.NewVec2(10, 4)

	for _, step := range []int{1, 16, 100} {
		t.Run(fmt.Sprintf("step_%d", step), func(t *testing.T) {
			c.center = dmath.NewVec2(0, 0)
			initial := target.pos.Sub(c.Center()).Magnitude()
			prev := initial
			for i := 0; i < 8; i++ {
				c.Update(step, Input{})
				d := target.pos.Sub(c.Center()).Magnitude()
				if d >= prev {
					t.Fatalf("step %d update %d: distance %v did not shrink from %v", step, i, d, prev)
				}
				if d > initial {
					t.Fatalf("distance %v exceeds initial %v", d, initial)
				}
				// Same direction as the starting offset: no overshoot.
				off := target.pos.Sub(c.Center())
				if off.X < 0 || off.Y < 0 {
					t.Fatalf("overshot target: offset %v", off)
				}
				prev = d
			}
		})
	}
}

func TestFollowIsStepScaled(t *testing.T) {
	target := &fixedTarget{}
	a := New(target, DefaultOptions())
	b := New(target, DefaultOptions())
	target.pos = dmath.NewVec2(100, 0)

	a.Update(60, Input{})
	for i := 0; i < 60; i++ {
		b.Update(1, Input{})
	}
	// One step of 60 covers 1 - 5^-1 = 80% of the gap, same as sixty steps of 1.
	if math.Abs(a.Center().X-80) > 1e-9 {
		t.Fatalf("single update center = %v, want 80", a.Center().X)
	}
	if math.Abs(a.Center().X-b.Center().X) > 1e-9 {
		t.Fatalf("step 60 = %v, 60 x step 1 = %v", a.Center().X, b.Center().X)
	}
}

func TestUpdateFeedsRotation(t *testing.T) {
	c := New(&fixedTarget{}, DefaultOptions())
	c.Update(100, Input{RotateRight: true})
	if r := c.Rotation(); !r.Transitioning() || r.Turn() != 1 || r.Elapsed() != 100 {
		t.Fatalf("rotation = %+v", r)
	}
	c.Update(100, Input{RotateLeft: true})
	if c.Rotation().Turn() != 1 {
		t.Fatalf("input accepted mid-turn")
	}
}

func TestDrawPosition(t *testing.T) {
	opts := DefaultOptions()
	opts.Shift = 0
	c := New(&fixedTarget{pos: dmath.NewVec2(1, 1)}, opts)
	c.SetSceneSize(800, 600)

	cases := []struct {
		name    string
		x, y, z float64
		want    dmath.Vec2
	}{
		{"center", 1, 1, 0, dmath.NewVec2(400, 300)},
		{"east", 2, 1, 0, dmath.NewVec2(450, 300)},
		{"south", 1, 2, 0, dmath.NewVec2(400, 325)},
		{"raised", 1, 1, 2, dmath.NewVec2(400, 200)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.DrawPosition(tc.x, tc.y, tc.z); !nearVec(got, tc.want) {
				t.Fatalf("DrawPosition = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDrawPositionRotated(t *testing.T) {
	opts := DefaultOptions()
	c := New(&fixedTarget{}, opts)
	c.SetSceneSize(200, 100)
	c.rotation.Trigger(DirClockwise)
	c.rotation.Update(opts.RotationDuration)

	// (1, 0) rotated by π/2 + shift, then scaled.
	a := math.Pi/2 + opts.Shift
	want := dmath.NewVec2(100+math.Cos(a)*50, 50+math.Sin(a)*25)
	if got := c.DrawPosition(1, 0, 0); !nearVec(got, want) {
		t.Fatalf("DrawPosition = %v, want %v", got, want)
	}
}

func TestRawDrawPositionIgnoresCenter(t *testing.T) {
	opts := DefaultOptions()
	opts.Shift = 0
	c := New(&fixedTarget{pos: dmath.NewVec2(40, 40)}, opts)
	c.SetSceneSize(800, 600)
	got := c.RawDrawPosition(1, 2, 1)
	if want := dmath.NewVec2(50, 50-50); !nearVec(got, want) {
		t.Fatalf("RawDrawPosition = %v, want %v", got, want)
	}
	if got := c.DrawPositionMode(1, 2, 1, true); !nearVec(got, c.RawDrawPosition(1, 2, 1)) {
		t.Fatal("DrawPositionMode(raw) differs from RawDrawPosition")
	}
}

func TestProjectionHasNoSideEffects(t *testing.T) {
	c := New(&fixedTarget{pos: dmath.NewVec2(2, 3)}, DefaultOptions())
	c.SetSceneSize(640, 480)
	before := c.Snapshot()
	first := c.DrawPosition(5, 6, 7)
	for i := 0; i < 100; i++ {
		c.DrawPosition(float64(i), 1, 2)
		c.RawDrawPosition(1, float64(i), 0)
		c.XPosition(1, 2)
		c.YPosition(1, 2, 3)
	}
	if c.Snapshot() != before {
		t.Fatal("projection mutated camera state")
	}
	if c.DrawPosition(5, 6, 7) != first {
		t.Fatal("projection is not repeatable")
	}
}

func TestDrawSizes(t *testing.T) {
	c := New(&fixedTarget{}, DefaultOptions())
	if c.DrawSizeX(2) != 100 || c.DrawSizeY(2) != 50 || c.DrawSizeZ(2) != 100 {
		t.Fatalf("sizes = %v %v %v", c.DrawSizeX(2), c.DrawSizeY(2), c.DrawSizeZ(2))
	}
}

func TestWorldDeltaUndoesRotation(t *testing.T) {
	v := View{Zoom: 1, YFactor: 1, ZFactor: 1, Angle: 1.2}
	d := v.WorldDelta(0, -1)
	back := d.Rotate(v.Angle)
	if !nearVec(back, dmath.NewVec2(0, -1)) {
		t.Fatalf("round trip = %v", back)
	}
}

func TestNonPositiveStepIsIgnored(t *testing.T) {
	for _, step := range []int{0, -100} {
		t.Run(fmt.Sprintf("step_%d", step), func(t *testing.T) {
			target := &fixedTarget{}
			c := New(target, DefaultOptions())
			target.pos = dmath.NewVec2(10, 4)
			c.Update(100, Input{RotateRight: true})
			center, rot := c.Center(), c.Rotation()

			c.Update(step, Input{RotateLeft: true})
			if c.Center() != center {
				t.Fatalf("center moved to %v from %v", c.Center(), center)
			}
			if c.Rotation() != rot {
				t.Fatalf("rotation = %+v, want %+v", c.Rotation(), rot)
			}
		})
	}
}

func TestSetTuningAppliesRotationTiming(t *testing.T) {
	c := New(&fixedTarget{}, DefaultOptions())
	opts := DefaultOptions()
	opts.Shift = 0.5
	opts.RotationDuration = 600
	c.SetTuning(opts)

	r := c.Rotation()
	if r.Shift() != 0.5 || r.Duration() != 600 {
		t.Fatalf("shift %v duration %d, want 0.5 and 600", r.Shift(), r.Duration())
	}
	if c.RotationAngle() != 0.5 {
		t.Fatalf("resting angle = %v, want 0.5", c.RotationAngle())
	}

	c.Update(300, Input{RotateRight: true})
	if !c.Rotation().Transitioning() {
		t.Fatal("turn finished early")
	}
	c.Update(300, Input{})
	if c.Rotation().Transitioning() {
		t.Fatal("turn still running after the new duration")
	}
	if want := math.Pi/2 + 0.5; math.Abs(c.RotationAngle()-want) > 1e-9 {
		t.Fatalf("angle = %v, want %v", c.RotationAngle(), want)
	}
}

func TestSetTuningKeepsDurationWhenUnset(t *testing.T) {
	c := New(&fixedTarget{}, DefaultOptions())
	c.SetTuning(Options{Zoom: 10, YFactor: 0.5, ZFactor: 1, Shift: DefaultAngleShift})
	if d := c.Rotation().Duration(); d != DefaultRotationDuration {
		t.Fatalf("duration = %d, want %d", d, DefaultRotationDuration)
	}
	if c.Zoom() != 10 {
		t.Fatalf("zoom = %v, want 10", c.Zoom())
	}
}
