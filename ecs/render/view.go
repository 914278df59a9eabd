// Package render draws the world with ebiten. World coordinates have y
// pointing up; the view maps them onto the screen around the camera.
package render

import (
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
)

// View maps world coordinates to screen pixels.
type View struct {
	CamX    float64
	CamY    float64
	Zoom    float64
	ScreenW float64
	ScreenH float64
}

// ViewFor builds a view from the first camera in w, or an identity view
// centred on the origin.
func ViewFor(w *ecs.World, screenW, screenH float64) View {
	v := View{Zoom: 1, ScreenW: screenW, ScreenH: screenH}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if tr, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.CamX, v.CamY = tr.X, tr.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.Zoom = cam.Zoom
	}
	return v
}

func (v View) ToScreen(x, y float64) (float32, float32) {
	sx := (x-v.CamX)*v.Zoom + v.ScreenW/2
	sy := v.ScreenH/2 - (y-v.CamY)*v.Zoom
	return float32(sx), float32(sy)
}

// WorldPosition returns e's position with every parent offset applied.
func WorldPosition(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	x, y := tr.X, tr.Y
	for {
		p, ok := ecs.Get(w, e, component.ParentComponent.Kind())
		if !ok {
			return x, y, true
		}
		e = ecs.Entity(p.Entity)
		ptr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return x, y, true
		}
		x += ptr.X
		y += ptr.Y
	}
}
