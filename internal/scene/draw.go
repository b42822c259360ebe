package scene

import (
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/depeter/isoview/internal/camera"
	"github.com/depeter/isoview/internal/geom"
	"github.com/depeter/isoview/internal/interp"
)

var (
	colorGridLine = color.RGBA{R: 0x33, G: 0x3A, B: 0x44, A: 0xFF}
	colorShadow   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorBlack    = color.RGBA{A: 0xFF}
)

const (
	shadowAlpha = 0.35
	labelLift   = 0.3
)

// Marker is a screen-space anchor above an entity, for name tags.
type Marker struct {
	Text   string
	At     dmath.Vec2
	Player bool
	NPC    bool
}

type drawable struct {
	pos   geom.Vec3
	body  BodyData
	depth float64
}

// Draw renders the ground grid and every body, far to near.
func (s *Stage) Draw(dst *ebiten.Image, view camera.View) {
	s.drawGround(dst, view)

	for _, d := range s.drawables(view) {
		drawShadow(dst, view, d)
		drawBox(dst, view, d)
	}
}

func (s *Stage) drawables(view camera.View) []drawable {
	var out []drawable
	Body.Each(s.world, func(entry *donburi.Entry) {
		pos := *Position.Get(entry)
		out = append(out, drawable{
			pos:   pos,
			body:  *Body.Get(entry),
			depth: view.DrawPosition(pos.X, pos.Y, 0).Y,
		})
	})
	slices.SortStableFunc(out, func(a, b drawable) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	return out
}

// Markers returns name tag anchors for every entity, lifted above its top.
func (s *Stage) Markers(view camera.View) []Marker {
	var out []Marker
	Label.Each(s.world, func(entry *donburi.Entry) {
		pos := Position.Get(entry)
		body := Body.Get(entry)
		base := view.DrawPosition(pos.X, pos.Y, pos.Z)
		out = append(out, Marker{
			Text:   Label.Get(entry).Text,
			At:     base.Add(view.RawDrawPosition(0, 0, body.Size.Z+labelLift)),
			Player: entry.HasComponent(PlayerTag),
			NPC:    entry.HasComponent(NPCTag),
		})
	})
	return out
}

func (s *Stage) drawGround(dst *ebiten.Image, view camera.View) {
	g := s.ground
	for _, i := range gridLines(g) {
		a := view.DrawPosition(i, -g, 0)
		b := view.DrawPosition(i, g, 0)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, colorGridLine, true)
		a = view.DrawPosition(-g, i, 0)
		b = view.DrawPosition(g, i, 0)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, colorGridLine, true)
	}
}

// gridLines returns the grid coordinates from -g to g one unit apart. The
// edge at g is always included, even when g is not a whole number.
func gridLines(g float64) []float64 {
	var lines []float64
	for i := -g; i < g; i++ {
		lines = append(lines, i)
	}
	return append(lines, g)
}

func drawShadow(dst *ebiten.Image, view camera.View, d drawable) {
	shadow := interp.Must(interp.WithAlphaRatio(colorShadow, shadowAlpha))
	c := view.DrawPosition(d.pos.X, d.pos.Y, 0)
	r := view.DrawSizeY(max(d.body.Size.X, d.body.Size.Y)) * 0.8
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(r), shadow, true)
}

// footprint returns the four ground corners of the body at height z, in
// winding order.
func footprint(d drawable, z float64) [4]geom.Vec3 {
	hx, hy := d.body.Size.X/2, d.body.Size.Y/2
	return [4]geom.Vec3{
		{X: d.pos.X - hx, Y: d.pos.Y - hy, Z: z},
		{X: d.pos.X + hx, Y: d.pos.Y - hy, Z: z},
		{X: d.pos.X + hx, Y: d.pos.Y + hy, Z: z},
		{X: d.pos.X - hx, Y: d.pos.Y + hy, Z: z},
	}
}

func drawBox(dst *ebiten.Image, view camera.View, d drawable) {
	bottom := footprint(d, d.pos.Z)
	top := footprint(d, d.pos.Z+d.body.Size.Z)

	type face struct {
		pts   []dmath.Vec2
		depth float64
		shade float64
	}
	faces := make([]face, 0, 4)
	for i := range 4 {
		j := (i + 1) % 4
		pts := []dmath.Vec2{
			view.DrawPositionV(bottom[i]),
			view.DrawPositionV(bottom[j]),
			view.DrawPositionV(top[j]),
			view.DrawPositionV(top[i]),
		}
		shade := 0.25
		if i%2 == 1 {
			shade = 0.45
		}
		faces = append(faces, face{pts: pts, depth: (pts[0].Y + pts[1].Y) / 2, shade: shade})
	}
	slices.SortFunc(faces, func(a, b face) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	for _, f := range faces {
		fillPolygon(dst, f.pts, interp.MustBlend(d.body.Color, colorBlack, f.shade))
	}

	lid := make([]dmath.Vec2, 0, 4)
	for _, p := range top {
		lid = append(lid, view.DrawPositionV(p))
	}
	fillPolygon(dst, lid, d.body.Color)
}

var fillSource *ebiten.Image

func fillPolygon(dst *ebiten.Image, pts []dmath.Vec2, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	if fillSource == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		fillSource = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/0xFF, float32(clr.G)/0xFF, float32(clr.B)/0xFF, float32(clr.A)/0xFF
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, fillSource, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
