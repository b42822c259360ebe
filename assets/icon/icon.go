package icon

import (
	"image"
	"image/color"
	"math"
	"slices"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/depeter/isoview/internal/camera"
	"github.com/depeter/isoview/internal/geom"
	"github.com/depeter/isoview/internal/interp"
)

var (
	darkBG    = color.RGBA{R: 0x14, G: 0x16, B: 0x1C, A: 0xFF}
	tileCol   = color.RGBA{R: 0x26, G: 0x2B, B: 0x33, A: 0xFF}
	cubeCol   = color.RGBA{R: 0xE8, G: 0xC5, B: 0x6A, A: 0xFF}
	shadowCol = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x70}
	black     = color.RGBA{A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a cube on a ground tile, seen through the same projection
// the stage uses, an eighth of a turn round.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	view := camera.View{
		Center:  dmath.NewVec2(0, 0),
		Zoom:    s * 0.42,
		YFactor: 0.5,
		ZFactor: 1,
		Angle:   math.Pi / 4,
		Width:   size,
		Height:  size + int(s*0.3),
	}

	tile := project(view, square(1.6, 0))
	fillPolygon(img, tile, tileCol)

	c := view.DrawPosition(0, 0, 0)
	fillEllipse(img, c.X, c.Y, view.DrawSizeX(0.7), view.DrawSizeY(0.7), shadowCol)

	drawCube(img, view, 1)
	return img
}

// square returns the corners of a side x side square at height z, in winding
// order.
func square(side, z float64) [4]geom.Vec3 {
	h := side / 2
	return [4]geom.Vec3{
		{X: -h, Y: -h, Z: z},
		{X: h, Y: -h, Z: z},
		{X: h, Y: h, Z: z},
		{X: -h, Y: h, Z: z},
	}
}

func project(view camera.View, pts [4]geom.Vec3) []dmath.Vec2 {
	out := make([]dmath.Vec2, 0, len(pts))
	for _, p := range pts {
		out = append(out, view.DrawPositionV(p))
	}
	return out
}

func drawCube(img *image.RGBA, view camera.View, side float64) {
	bottom := square(side, 0)
	top := square(side, side)

	type face struct {
		pts   []dmath.Vec2
		depth float64
		shade float64
	}
	var faces []face
	for i := range 4 {
		j := (i + 1) % 4
		pts := []dmath.Vec2{
			view.DrawPositionV(bottom[i]),
			view.DrawPositionV(bottom[j]),
			view.DrawPositionV(top[j]),
			view.DrawPositionV(top[i]),
		}
		shade := 0.2
		if i%2 == 1 {
			shade = 0.45
		}
		faces = append(faces, face{pts: pts, depth: pts[0].Y + pts[1].Y, shade: shade})
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
		fillPolygon(img, f.pts, interp.MustBlend(cubeCol, black, f.shade))
	}
	fillPolygon(img, project(view, top), cubeCol)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillPolygon fills pixels whose centers fall inside the polygon (even-odd).
func fillPolygon(img *image.RGBA, pts []dmath.Vec2, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(int(minX), int(minY), int(maxX)+1, int(maxY)+1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if inside(pts, float64(x)+0.5, float64(y)+0.5) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func inside(pts []dmath.Vec2, px, py float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > py) != (b.Y > py) && px < (b.X-a.X)*(py-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	r := image.Rect(int(cx-rx), int(cy-ry), int(cx+rx)+1, int(cy+ry)+1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// c.RGBA is premultiplied, so only the backdrop is scaled.
	invAlpha := 0xFFFF - a0
	nr := r0 + er*invAlpha/0xFFFF
	ng := g0 + eg*invAlpha/0xFFFF
	nb := b0 + eb*invAlpha/0xFFFF
	img.SetRGBA(x, y, color.RGBA{R: uint8(nr >> 8), G: uint8(ng >> 8), B: uint8(nb >> 8), A: 0xFF})
}
