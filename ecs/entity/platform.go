package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rampball/collision"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/mesh"
	"github.com/milk9111/rampball/prefabs"
)

var defaultPlatformColor = color.NRGBA{R: 0xbf, G: 0xff, B: 0x80, A: 0xff}

// NewPlatform builds an Idle platform at rest at (x, y) whose silhouette
// follows points. The same stroke mesh is rendered and used as the collider;
// when it is empty the platform gets no physics body.
func NewPlatform(w *ecs.World, spec prefabs.PlatformSpec, points []mesh.Point, x, y float64) (ecs.Entity, error) {
	strokeMesh := mesh.Tessellate(points, spec.StrokeOptions())
	collider := collision.FromStrokeMesh(strokeMesh)

	return build(w, func(e ecs.Entity) error {
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
			return fmt.Errorf("platform: add transform: %w", err)
		}
		if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
			return fmt.Errorf("platform: add velocity: %w", err)
		}
		if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{
			Phase:    component.Idle{},
			Observed: component.PhaseIdle,
		}); err != nil {
			return fmt.Errorf("platform: add platform: %w", err)
		}
		if err := ecs.Add(w, e, component.MeshRenderComponent.Kind(), &component.MeshRender{
			Mesh:  strokeMesh,
			Color: prefabs.ColorOr(spec.Color, defaultPlatformColor),
		}); err != nil {
			return fmt.Errorf("platform: add mesh render: %w", err)
		}
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}); err != nil {
			return fmt.Errorf("platform: add render layer: %w", err)
		}

		if collider == nil {
			return nil
		}
		if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
			Category: component.LayerPlatform,
			Mask:     component.LayerPlayer,
		}); err != nil {
			return fmt.Errorf("platform: add collision layer: %w", err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:     component.BodyKinematic,
			Mesh:     collider,
			Friction: spec.Friction,
		}); err != nil {
			return fmt.Errorf("platform: add physics body: %w", err)
		}
		return nil
	})
}
