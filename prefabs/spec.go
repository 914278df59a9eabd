package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/rampball/mesh"
	"gopkg.in/yaml.v3"
)

type StrokeSpec struct {
	Width     float64 `yaml:"width"`
	Tolerance float64 `yaml:"tolerance"`
}

// PlatformSpec tunes platform geometry and the sink/rise cycle.
type PlatformSpec struct {
	Name         string       `yaml:"name"`
	Points       [][2]float64 `yaml:"points"`
	Stroke       StrokeSpec   `yaml:"stroke"`
	BaseX        float64      `yaml:"base_x"`
	Spacing      float64      `yaml:"spacing"`
	InitialCount int          `yaml:"initial_count"`
	DefaultY     float64      `yaml:"default_y"`
	SinkMargin   float64      `yaml:"sink_margin"`
	SinkSpeed    float64      `yaml:"sink_speed"`
	RiseSpeed    float64      `yaml:"rise_speed"`
	SpawnAhead   float64      `yaml:"spawn_ahead"`
	Friction     float64      `yaml:"friction"`
	Color        *YAMLColor   `yaml:"color"`
	RenderLayer  int          `yaml:"render_layer"`
	ShapeScript  string       `yaml:"shape_script"`
}

// ControlPoints returns the configured default control points.
func (s PlatformSpec) ControlPoints() []mesh.Point {
	pts := make([]mesh.Point, 0, len(s.Points))
	for _, p := range s.Points {
		pts = append(pts, mesh.Pt(p[0], p[1]))
	}
	return pts
}

func (s PlatformSpec) StrokeOptions() mesh.StrokeOptions {
	return mesh.StrokeOptions{Width: s.Stroke.Width, Tolerance: s.Stroke.Tolerance}
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Name                string     `yaml:"name"`
	Radius              float64    `yaml:"radius"`
	Spawn               PointSpec  `yaml:"spawn"`
	Mass                float64    `yaml:"mass"`
	Friction            float64    `yaml:"friction"`
	Elasticity          float64    `yaml:"elasticity"`
	HoldGravityScale    float64    `yaml:"hold_gravity_scale"`
	ReleaseGravityScale float64    `yaml:"release_gravity_scale"`
	RingWidth           float64    `yaml:"ring_width"`
	SkinColor           *YAMLColor `yaml:"skin_color"`
	RingColor           *YAMLColor `yaml:"ring_color"`
	RenderLayer         int        `yaml:"render_layer"`
}

type SpikesSpec struct {
	Name        string     `yaml:"name"`
	Count       int        `yaml:"count"`
	Speed       float64    `yaml:"speed"`
	Color       *YAMLColor `yaml:"color"`
	RenderLayer int        `yaml:"render_layer"`
}

type WorldSpec struct {
	Gravity       float64    `yaml:"gravity"`
	MetersPerUnit float64    `yaml:"meters_per_unit"`
	CameraZoom    float64    `yaml:"camera_zoom"`
	Background    *YAMLColor `yaml:"background"`
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns c, or def when c is unset.
func ColorOr(c *YAMLColor, def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
