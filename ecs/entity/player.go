package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/prefabs"
)

var (
	defaultSkinColor = color.NRGBA{R: 0xc8, G: 0x10, B: 0x2e, A: 0xff}
	defaultRingColor = color.NRGBA{R: 0x80, G: 0xff, B: 0xff, A: 0xff}
)

// NewPlayer builds the ball at its spawn point with gravity switched off.
// The disc and the outline ring are child entities.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	radius := spec.Radius
	if radius <= 0 {
		radius = prefabs.DefaultTuning().Player.Radius
	}

	return build(w, func(player ecs.Entity) error {
		if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return fmt.Errorf("player: add player tag: %w", err)
		}
		if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{Radius: radius}); err != nil {
			return fmt.Errorf("player: add player: %w", err)
		}
		if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: spec.Spawn.X, Y: spec.Spawn.Y}); err != nil {
			return fmt.Errorf("player: add transform: %w", err)
		}
		if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
			return fmt.Errorf("player: add velocity: %w", err)
		}
		if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:       component.BodyDynamic,
			Radius:     radius,
			Mass:       spec.Mass,
			Friction:   spec.Friction,
			Elasticity: spec.Elasticity,
		}); err != nil {
			return fmt.Errorf("player: add physics body: %w", err)
		}
		if err := ecs.Add(w, player, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
			Category: component.LayerPlayer,
			Mask:     component.LayerPlatform | component.LayerHazard,
		}); err != nil {
			return fmt.Errorf("player: add collision layer: %w", err)
		}
		if err := ecs.Add(w, player, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0}); err != nil {
			return fmt.Errorf("player: add gravity scale: %w", err)
		}
		if err := ecs.Add(w, player, component.CollidingEntitiesComponent.Kind(), &component.CollidingEntities{}); err != nil {
			return fmt.Errorf("player: add colliding entities: %w", err)
		}

		skin := &component.CircleRender{Radius: radius, Color: prefabs.ColorOr(spec.SkinColor, defaultSkinColor)}
		if err := addCircleChild(w, player, skin, spec.RenderLayer); err != nil {
			return fmt.Errorf("player: add skin: %w", err)
		}
		ring := &component.CircleRender{
			Radius: radius,
			Inner:  max(radius-spec.RingWidth, 0),
			Color:  prefabs.ColorOr(spec.RingColor, defaultRingColor),
		}
		if err := addCircleChild(w, player, ring, spec.RenderLayer+1); err != nil {
			return fmt.Errorf("player: add ring: %w", err)
		}

		return nil
	})
}

func addCircleChild(w *ecs.World, parent ecs.Entity, circle *component.CircleRender, layer int) error {
	_, err := build(w, func(child ecs.Entity) error {
		if err := ecs.Add(w, child, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
			return err
		}
		if err := ecs.Add(w, child, component.CircleRenderComponent.Kind(), circle); err != nil {
			return err
		}
		if err := ecs.Add(w, child, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
			return err
		}
		return ecs.SetParent(w, child, parent)
	})
	return err
}
