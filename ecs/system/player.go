package system

import (
	"math"

	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

// GravityConfig holds the two gravity multipliers of a live player.
type GravityConfig struct {
	Hold    float64
	Release float64
}

func GravityConfigFrom(spec prefabs.PlayerSpec) GravityConfig {
	return GravityConfig{Hold: spec.HoldGravityScale, Release: spec.ReleaseGravityScale}
}

// EnableGravity switches gravity on when a run starts. A contact already
// held at that moment is claimed and gives the strong pull.
func EnableGravity(w *ecs.World, s *session.Session, cfg GravityConfig) {
	scale, ok := playerGravity(w)
	if !ok {
		return
	}
	if held := s.Input.Pressed(); len(held) > 0 {
		s.ClaimTouch(held[0])
		scale.Scale = cfg.Hold
		return
	}
	scale.Scale = cfg.Release
}

// GravityControlSystem gives the player strong gravity while the tracked
// contact is held. Only the first contact pressed while none is tracked is
// followed; it is forgotten when released.
type GravityControlSystem struct {
	session *session.Session
	cfg     GravityConfig
}

func NewGravityControlSystem(s *session.Session, cfg GravityConfig) *GravityControlSystem {
	return &GravityControlSystem{session: s, cfg: cfg}
}

func (g *GravityControlSystem) Update(w *ecs.World) {
	scale, ok := playerGravity(w)
	if !ok {
		return
	}
	s := g.session
	if s.ActiveTouch != nil {
		if s.Input.JustReleased(*s.ActiveTouch) {
			s.ReleaseTouch()
			scale.Scale = g.cfg.Release
		}
		return
	}
	if pressed := s.Input.JustPressed(); len(pressed) > 0 {
		s.ClaimTouch(pressed[0])
		scale.Scale = g.cfg.Hold
	}
}

func playerGravity(w *ecs.World) (*component.GravityScale, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, player, component.GravityScaleComponent.Kind())
}

// PlayerCollisionSystem kills the player on contact with a hazard or any
// part of one.
type PlayerCollisionSystem struct {
	session *session.Session
}

func NewPlayerCollisionSystem(s *session.Session) *PlayerCollisionSystem {
	return &PlayerCollisionSystem{session: s}
}

func (p *PlayerCollisionSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	colliding, ok := ecs.Get(w, player, component.CollidingEntitiesComponent.Kind())
	if !ok {
		return
	}
	for _, id := range colliding.Entities {
		other := ecs.Entity(id)
		if !ecs.IsAlive(w, other) {
			continue
		}
		if ecs.Has(w, ecs.Root(w, other), component.HazardComponent.Kind()) {
			p.session.Player.Set(session.Dead)
			return
		}
	}
}

// PlayerFallSystem kills the player once it drops below the play area.
type PlayerFallSystem struct {
	session *session.Session
}

func NewPlayerFallSystem(s *session.Session) *PlayerFallSystem {
	return &PlayerFallSystem{session: s}
}

func (p *PlayerFallSystem) Update(w *ecs.World) {
	vp := p.session.Viewport
	if vp == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	radius := 0.0
	if pc, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		radius = pc.Radius
	}
	if FellOut(tr.Y, radius, vp.Height) {
		p.session.Player.Set(session.Dead)
	}
}

// FellOut reports whether a player at height y has left a viewport of the
// given height.
func FellOut(y, radius, viewportHeight float64) bool {
	return y+radius/2 < -viewportHeight/2
}

// TravelDistanceSystem tracks the furthest distance reached this run.
type TravelDistanceSystem struct {
	session       *session.Session
	metersPerUnit float64
}

func NewTravelDistanceSystem(s *session.Session, metersPerUnit float64) *TravelDistanceSystem {
	return &TravelDistanceSystem{session: s, metersPerUnit: metersPerUnit}
}

func (t *TravelDistanceSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.session.TravelDistance = math.Max(t.session.TravelDistance, tr.X*t.metersPerUnit)
}

// DespawnPlayer destroys the player and its visuals.
func DespawnPlayer(w *ecs.World) bool {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	return ecs.DestroyRecursive(w, player) > 0
}
