package system

import (
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
)

// CameraFollowSystem keeps the camera on the player's x at a fixed height.
type CameraFollowSystem struct{}

func NewCameraFollowSystem() *CameraFollowSystem {
	return &CameraFollowSystem{}
}

func (c *CameraFollowSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerTr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, tr *component.Transform) {
		tr.X = playerTr.X
		tr.Y = cam.FixedY
	})
}
