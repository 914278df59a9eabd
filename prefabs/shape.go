package prefabs

import (
	"errors"
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/rampball/mesh"
)

var ErrNoPoints = errors.New("prefabs: shape script produced no points")

// ShapeSource supplies the control points of the index-th platform of a run.
type ShapeSource interface {
	Points(index int) ([]mesh.Point, error)
}

// FixedShape returns the same control points for every platform.
type FixedShape []mesh.Point

func (f FixedShape) Points(int) ([]mesh.Point, error) {
	return append([]mesh.Point(nil), f...), nil
}

// ScriptShape runs a tengo script once per platform. The script sees the
// globals seed and index and must leave an array of [x, y] pairs in points.
type ScriptShape struct {
	name     string
	seed     int64
	compiled *tengo.Compiled
}

// NewScriptShape compiles the named script from the scripts directory.
func NewScriptShape(name string, seed int64) (*ScriptShape, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return CompileShape(name, src, seed)
}

// CompileShape compiles src as a shape script.
func CompileShape(name string, src []byte, seed int64) (*ScriptShape, error) {
	script := tengo.NewScript(src)
	_ = script.Add("seed", seed)
	_ = script.Add("index", 0)
	script.SetImports(stdlib.GetModuleMap("rand", "math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", name, err)
	}
	return &ScriptShape{name: name, seed: seed, compiled: compiled}, nil
}

func (s *ScriptShape) Points(index int) ([]mesh.Point, error) {
	if err := s.compiled.Set("seed", s.seed); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("index", index); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("points") {
		return nil, ErrNoPoints
	}

	raw := s.compiled.Get("points").Array()
	if len(raw) == 0 {
		return nil, ErrNoPoints
	}
	pts := make([]mesh.Point, 0, len(raw))
	for i, item := range raw {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("prefabs: script %s: point %d is not an [x, y] pair", s.name, i)
		}
		x, okX := toFloat(pair[0])
		y, okY := toFloat(pair[1])
		if !okX || !okY {
			return nil, fmt.Errorf("prefabs: script %s: point %d is not numeric", s.name, i)
		}
		if !isFinite(x) || !isFinite(y) {
			return nil, fmt.Errorf("prefabs: script %s: point %d is not finite", s.name, i)
		}
		pts = append(pts, mesh.Pt(x, y))
	}
	return pts, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
