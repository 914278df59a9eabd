package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/ecs/entity"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

// SpikeSpawnSystem creates the spike wall once a viewport is known.
type SpikeSpawnSystem struct {
	session *session.Session
	spec    prefabs.SpikesSpec
	logger  *log.Logger
}

func NewSpikeSpawnSystem(s *session.Session, spec prefabs.SpikesSpec, logger *log.Logger) *SpikeSpawnSystem {
	return &SpikeSpawnSystem{session: s, spec: spec, logger: logger}
}

func (s *SpikeSpawnSystem) Update(w *ecs.World) {
	if s.session.Viewport == nil {
		return
	}
	if _, ok := ecs.First(w, component.SpikeWallComponent.Kind()); ok {
		return
	}
	wall, err := entity.NewSpikeWall(w, s.spec, *s.session.Viewport)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("spawn spike wall", "err", err)
		}
		return
	}
	if s.session.Playing() {
		BeginMovingSpikes(w)
	}
	if s.logger != nil {
		s.logger.Debug("spike wall spawned", "entity", wall)
	}
}

// BeginMovingSpikes sets the wall moving right.
func BeginMovingSpikes(w *ecs.World) {
	ecs.ForEach(w, component.SpikeWallComponent.Kind(), func(e ecs.Entity, wall *component.SpikeWall) {
		setVelocity(w, e, wall.Speed, 0)
	})
}

// ResetSpikes stops the wall and returns it one viewport width left of the
// origin.
func ResetSpikes(w *ecs.World, s *session.Session) {
	vp := s.Viewport
	if vp == nil {
		return
	}
	ecs.ForEach2(w, component.SpikeWallComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, wall *component.SpikeWall, tr *component.Transform) {
		wall.StartX = -vp.Width
		tr.X = wall.StartX
		setVelocity(w, e, 0, 0)
	})
}
