package scene

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	dmath "github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"

	"github.com/depeter/isoview/internal/geom"
	"github.com/depeter/isoview/internal/interp"
)

//go:embed default.yaml
var defaultYAML []byte

// Blueprint describes a stage: its ground size, the player and what stands on it.
type Blueprint struct {
	Ground float64     `yaml:"ground"`
	Player ActorDef    `yaml:"player"`
	Props  []PropDef   `yaml:"props"`
	NPCs   []WanderDef `yaml:"npcs"`
}

type ActorDef struct {
	Name  string    `yaml:"name"`
	At    []float64 `yaml:"at"`
	Color string    `yaml:"color"`
}

type PropDef struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	At    []float64 `yaml:"at"`
	Size  []float64 `yaml:"size"`
	Color string    `yaml:"color"`
}

type WanderDef struct {
	Name    string    `yaml:"name"`
	From    []float64 `yaml:"from"`
	To      []float64 `yaml:"to"`
	Seconds float64   `yaml:"seconds"`
	Color   string    `yaml:"color"`
}

// Default sizes per prop kind, in world units (width, depth, height).
var kindSizes = map[string]geom.Vec3{
	"box":    {X: 1, Y: 1, Z: 1},
	"crate":  {X: 0.6, Y: 0.6, Z: 0.6},
	"pillar": {X: 0.5, Y: 0.5, Z: 2.5},
	"wall":   {X: 3, Y: 0.3, Z: 1.2},
}

var (
	actorSize         = geom.Vec3{X: 0.5, Y: 0.5, Z: 0.9}
	defaultPropColor  = color.RGBA{R: 0x8A, G: 0x7A, B: 0x5C, A: 0xFF}
	defaultActorColor = color.RGBA{R: 0x4F, G: 0xB8, B: 0xE8, A: 0xFF}
)

// DefaultBlueprint returns the built-in stage.
func DefaultBlueprint() Blueprint {
	bp, err := LoadBlueprint(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default.yaml: %v", err))
	}
	return bp
}

// LoadBlueprint parses and validates a YAML stage description.
func LoadBlueprint(data []byte) (Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return Blueprint{}, fmt.Errorf("parse scene: %w", err)
	}
	if err := bp.Validate(); err != nil {
		return Blueprint{}, err
	}
	return bp, nil
}

// Validate checks kinds, vector lengths and colors.
func (s Blueprint) Validate() error {
	if s.Ground <= 0 {
		return fmt.Errorf("scene: ground must be positive, got %v", s.Ground)
	}
	if _, err := vec2(s.Player.At, "player.at"); err != nil {
		return err
	}
	if _, err := parseColor(s.Player.Color, defaultActorColor); err != nil {
		return fmt.Errorf("scene: player.color: %w", err)
	}
	for i, p := range s.Props {
		if _, ok := kindSizes[p.Kind]; !ok {
			return fmt.Errorf("scene: props[%d] %q: unknown kind %q", i, p.Name, p.Kind)
		}
		if _, err := vec2(p.At, fmt.Sprintf("props[%d].at", i)); err != nil {
			return err
		}
		if p.Size != nil && len(p.Size) != 3 {
			return fmt.Errorf("scene: props[%d].size: want 3 values, got %d", i, len(p.Size))
		}
		if _, err := parseColor(p.Color, defaultPropColor); err != nil {
			return fmt.Errorf("scene: props[%d].color: %w", i, err)
		}
	}
	for i, n := range s.NPCs {
		if _, err := vec2(n.From, fmt.Sprintf("npcs[%d].from", i)); err != nil {
			return err
		}
		if _, err := vec2(n.To, fmt.Sprintf("npcs[%d].to", i)); err != nil {
			return err
		}
		if n.Seconds <= 0 {
			return fmt.Errorf("scene: npcs[%d].seconds must be positive", i)
		}
		if _, err := parseColor(n.Color, defaultActorColor); err != nil {
			return fmt.Errorf("scene: npcs[%d].color: %w", i, err)
		}
	}
	return nil
}

func vec2(v []float64, field string) (dmath.Vec2, error) {
	if len(v) != 2 {
		return dmath.Vec2{}, fmt.Errorf("scene: %s: want 2 values, got %d", field, len(v))
	}
	return dmath.NewVec2(v[0], v[1]), nil
}

func (p PropDef) size() geom.Vec3 {
	if len(p.Size) == 3 {
		return geom.V3(p.Size[0], p.Size[1], p.Size[2])
	}
	return kindSizes[p.Kind]
}

// parseColor reads "#RRGGBB" or "#RRGGBBAA" as straight alpha and returns it
// premultiplied. Empty strings give fallback.
func parseColor(s string, fallback color.RGBA) (color.RGBA, error) {
	if s == "" {
		return fallback, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "FF"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	opaque := color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: 0xFF}
	return interp.WithAlpha(opaque, uint8(v)), nil
}
