package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/mesh"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

var defaultSpikeColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// NewSpikeWall builds the hazard one viewport to the left of the origin. Its
// box collider covers a whole viewport and its right edge carries a column
// of spike triangles pointing right.
func NewSpikeWall(w *ecs.World, spec prefabs.SpikesSpec, vp session.Viewport) (ecs.Entity, error) {
	count := spec.Count
	if count <= 0 {
		count = prefabs.DefaultTuning().Spikes.Count
	}

	return build(w, func(wall ecs.Entity) error {
		if err := ecs.Add(w, wall, component.SpikeWallComponent.Kind(), &component.SpikeWall{
			StartX: -vp.Width,
			Speed:  spec.Speed,
			Count:  count,
		}); err != nil {
			return fmt.Errorf("spikes: add spike wall: %w", err)
		}
		if err := ecs.Add(w, wall, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
			return fmt.Errorf("spikes: add hazard: %w", err)
		}
		if err := ecs.Add(w, wall, component.TransformComponent.Kind(), &component.Transform{X: -vp.Width}); err != nil {
			return fmt.Errorf("spikes: add transform: %w", err)
		}
		if err := ecs.Add(w, wall, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
			return fmt.Errorf("spikes: add velocity: %w", err)
		}
		if err := ecs.Add(w, wall, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
			Category: component.LayerHazard,
			Mask:     component.LayerPlayer,
		}); err != nil {
			return fmt.Errorf("spikes: add collision layer: %w", err)
		}
		if err := ecs.Add(w, wall, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:   component.BodyKinematic,
			Width:  vp.Width,
			Height: vp.Height,
		}); err != nil {
			return fmt.Errorf("spikes: add physics body: %w", err)
		}

		spikeH := vp.Height / float64(count)
		spikeW := spikeH * 2
		offsetX := vp.Width/2 - spikeW
		offsetY := -vp.Height / 2
		clr := prefabs.ColorOr(spec.Color, defaultSpikeColor)
		for i := 0; i < count; i++ {
			spike := &component.TriangleRender{
				Points: [3]mesh.Point{mesh.Pt(0, 0), mesh.Pt(spikeW, spikeH/2), mesh.Pt(0, spikeH)},
				Color:  clr,
			}
			if err := addSpike(w, wall, spike, offsetX, spikeH*float64(i)+offsetY, spec.RenderLayer); err != nil {
				return fmt.Errorf("spikes: add spike %d: %w", i, err)
			}
		}

		return nil
	})
}

func addSpike(w *ecs.World, wall ecs.Entity, tri *component.TriangleRender, x, y float64, layer int) error {
	_, err := build(w, func(spike ecs.Entity) error {
		if err := ecs.Add(w, spike, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
			return err
		}
		if err := ecs.Add(w, spike, component.TriangleRenderComponent.Kind(), tri); err != nil {
			return err
		}
		if err := ecs.Add(w, spike, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
			return err
		}
		return ecs.SetParent(w, spike, wall)
	})
	return err
}
