package entity

import (
	"fmt"

	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.WorldSpec) (ecs.Entity, error) {
	return build(w, func(camera ecs.Entity) error {
		if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
			return fmt.Errorf("camera: add camera tag: %w", err)
		}

		if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
			return fmt.Errorf("camera: add transform: %w", err)
		}

		zoom := spec.CameraZoom
		if zoom <= 0 {
			zoom = 1
		}
		if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
			return fmt.Errorf("camera: add camera component: %w", err)
		}

		return nil
	})
}
