package scene

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/depeter/isoview/internal/geom"
)

// BodyData is the drawable volume of an entity: a box of Size centered on
// its Position footprint, standing on its Position height.
type BodyData struct {
	Kind  string
	Size  geom.Vec3
	Color color.RGBA
}

type LabelData struct {
	Text string
}

// WanderData moves an entity back and forth between two ground points.
type WanderData struct {
	From, To dmath.Vec2
	Seconds  float32
	tween    *gween.Tween
	forward  bool
}

var (
	Position = donburi.NewComponentType[geom.Vec3]()
	Body     = donburi.NewComponentType[BodyData]()
	Label    = donburi.NewComponentType[LabelData]()
	Wander   = donburi.NewComponentType[WanderData]()
)

var (
	PlayerTag = donburi.NewTag().SetName("Player")
	PropTag   = donburi.NewTag().SetName("Prop")
	NPCTag    = donburi.NewTag().SetName("NPC")
)
