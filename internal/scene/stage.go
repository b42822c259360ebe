// Package scene holds the demo stage: a donburi world of props and actors
// standing on a square ground, drawn through the camera projection.
package scene

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/depeter/isoview/internal/camera"
	"github.com/depeter/isoview/internal/constants"
	"github.com/depeter/isoview/internal/geom"
)

// Entry is a named entity, in creation order.
type Entry struct {
	Name   string
	Kind   string
	Entity donburi.Entity
}

// Stage owns the entity world. It is updated and drawn from the frame loop
// only.
type Stage struct {
	world   donburi.World
	player  donburi.Entity
	ground  float64
	entries []Entry
}

// Build creates the entities described by bp.
func Build(bp Blueprint) (*Stage, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	s := &Stage{
		world:  donburi.NewWorld(),
		ground: bp.Ground,
	}

	at, _ := vec2(bp.Player.At, "player.at")
	clr, _ := parseColor(bp.Player.Color, defaultActorColor)
	s.player = s.spawn(bp.Player.Name, "player", geom.V3(at.X, at.Y, 0), actorSize, clr, PlayerTag)

	for _, p := range bp.Props {
		at, _ := vec2(p.At, "")
		clr, _ := parseColor(p.Color, defaultPropColor)
		s.spawn(p.Name, p.Kind, geom.V3(at.X, at.Y, 0), p.size(), clr, PropTag)
	}

	for _, n := range bp.NPCs {
		from, _ := vec2(n.From, "")
		to, _ := vec2(n.To, "")
		clr, _ := parseColor(n.Color, defaultActorColor)
		e := s.spawn(n.Name, "npc", geom.V3(from.X, from.Y, 0), actorSize, clr, NPCTag, Wander)
		Wander.SetValue(s.world.Entry(e), WanderData{
			From:    from,
			To:      to,
			Seconds: float32(n.Seconds),
			tween:   newLeg(float32(n.Seconds)),
			forward: true,
		})
	}
	return s, nil
}

func (s *Stage) spawn(name, kind string, pos, size geom.Vec3, clr color.RGBA, tag donburi.IComponentType, extra ...donburi.IComponentType) donburi.Entity {
	comps := append([]donburi.IComponentType{Position, Body, Label, tag}, extra...)
	e := s.world.Create(comps...)
	entry := s.world.Entry(e)
	Position.SetValue(entry, pos)
	Body.SetValue(entry, BodyData{Kind: kind, Size: size, Color: clr})
	Label.SetValue(entry, LabelData{Text: name})
	s.entries = append(s.entries, Entry{Name: name, Kind: kind, Entity: e})
	return e
}

// newLeg tweens progress 0 -> 1 over one walk between the two wander points.
func newLeg(seconds float32) *gween.Tween {
	return gween.New(0, 1, seconds, ease.InOutQuad)
}

// Update advances the wandering actors by step units.
func (s *Stage) Update(step int) {
	dt := float32(step) / constants.StepsPerSecond
	Wander.Each(s.world, func(entry *donburi.Entry) {
		w := Wander.Get(entry)
		t, done := w.tween.Update(dt)
		from, to := w.From, w.To
		if !w.forward {
			from, to = to, from
		}
		p := from.Add(to.Sub(from).MulScalar(float64(t)))
		pos := Position.Get(entry)
		pos.X, pos.Y = p.X, p.Y
		if done {
			w.forward = !w.forward
			w.tween = newLeg(w.Seconds)
		}
	})
}

// MovePlayer walks the player dist world units along the screen direction
// (dx, dy) as seen through view, keeping it on the ground.
func (s *Stage) MovePlayer(view camera.View, dx, dy, dist float64) {
	if dx == 0 && dy == 0 {
		return
	}
	d := view.WorldDelta(dx, dy)
	if l := d.Magnitude(); l > 0 {
		d = d.MulScalar(dist / l)
	}
	pos := Position.Get(s.world.Entry(s.player))
	pos.X = clamp(pos.X+d.X, -s.ground, s.ground)
	pos.Y = clamp(pos.Y+d.Y, -s.ground, s.ground)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Player is the camera's default follow target.
func (s *Stage) Player() camera.PositionProvider {
	return s.Follow(s.player)
}

// Follow returns a live position reader for e. A destroyed entity reads as
// the origin.
func (s *Stage) Follow(e donburi.Entity) camera.PositionProvider {
	return camera.PositionFunc(func() dmath.Vec2 {
		if !s.world.Valid(e) {
			return dmath.Vec2{}
		}
		return Position.Get(s.world.Entry(e)).XY()
	})
}

// PositionOf returns the world position of e.
func (s *Stage) PositionOf(e donburi.Entity) (geom.Vec3, bool) {
	if !s.world.Valid(e) {
		return geom.Vec3{}, false
	}
	return *Position.Get(s.world.Entry(e)), true
}

// Entries lists every entity in creation order, player first.
func (s *Stage) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

func (s *Stage) Ground() float64 {
	return s.ground
}
