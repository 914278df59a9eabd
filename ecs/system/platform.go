package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

// PlatformConfig holds the platform cycle constants.
type PlatformConfig struct {
	SinkMargin float64
	SinkSpeed  float64
	RiseSpeed  float64
	SpawnAhead float64
}

func PlatformConfigFrom(spec prefabs.PlatformSpec) PlatformConfig {
	return PlatformConfig{
		SinkMargin: spec.SinkMargin,
		SinkSpeed:  spec.SinkSpeed,
		RiseSpeed:  spec.RiseSpeed,
		SpawnAhead: spec.SpawnAhead,
	}
}

// PlatformSpawner builds an Idle platform at rest at (x, y).
type PlatformSpawner func(w *ecs.World, x, y float64) (ecs.Entity, error)

// SinkPassedPlatformsSystem starts sinking every Idle platform the player
// has passed by more than the margin.
type SinkPassedPlatformsSystem struct {
	cfg PlatformConfig
}

func NewSinkPassedPlatformsSystem(cfg PlatformConfig) *SinkPassedPlatformsSystem {
	return &SinkPassedPlatformsSystem{cfg: cfg}
}

func (s *SinkPassedPlatformsSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerTr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Platform, body *component.PhysicsBody) {
		if p.PhaseKind() != component.PhaseIdle || !body.HasCollider() {
			return
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		if playerTr.X-body.Mesh.AABB(tr.X, tr.Y).MaxX <= s.cfg.SinkMargin {
			return
		}
		p.Phase = component.Sinking{}
		setVelocity(w, e, 0, -s.cfg.SinkSpeed)
		w.Events().Push(ecs.Event{Type: ecs.EventPlatformSinking, Data: ecs.PlatformEvent{Entity: e, X: tr.X, Y: tr.Y}})
	})
}

// ReplaceSinkingPlatformsSystem spawns one rising replacement far ahead for
// every platform that became Sinking since its last run.
type ReplaceSinkingPlatformsSystem struct {
	cfg     PlatformConfig
	session *session.Session
	spawn   PlatformSpawner
	logger  *log.Logger
}

func NewReplaceSinkingPlatformsSystem(cfg PlatformConfig, s *session.Session, spawn PlatformSpawner, logger *log.Logger) *ReplaceSinkingPlatformsSystem {
	return &ReplaceSinkingPlatformsSystem{cfg: cfg, session: s, spawn: spawn, logger: logger}
}

func (s *ReplaceSinkingPlatformsSystem) Update(w *ecs.World) {
	// Without a viewport the edge stays unobserved and is handled on a later
	// tick.
	vp := s.session.Viewport
	if vp == nil {
		return
	}

	ecs.ForEach(w, component.PlatformComponent.Kind(), func(e ecs.Entity, p *component.Platform) {
		kind := p.PhaseKind()
		if kind != component.PhaseSinking || p.Observed == component.PhaseSinking {
			p.Observed = kind
			return
		}

		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		x, y := tr.X+s.cfg.SpawnAhead, tr.Y-vp.Height
		replacement, err := s.spawn(w, x, y)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("spawn replacement platform", "x", x, "y", y, "err", err)
			}
			return
		}
		// The edge is consumed only once a replacement exists; a failed spawn
		// is retried next tick.
		p.Observed = kind
		if rp, ok := ecs.Get(w, replacement, component.PlatformComponent.Kind()); ok {
			rp.Phase = component.Rising{TargetY: tr.Y}
			rp.Observed = component.PhaseRising
		}
		setVelocity(w, replacement, 0, s.cfg.RiseSpeed)
		w.Events().Push(ecs.Event{Type: ecs.EventPlatformSpawned, Data: ecs.PlatformEvent{Entity: replacement, X: x, Y: y}})
	})
}

// RemoveSunkPlatformsSystem destroys sinking platforms that dropped below
// the play area.
type RemoveSunkPlatformsSystem struct {
	session *session.Session
}

func NewRemoveSunkPlatformsSystem(s *session.Session) *RemoveSunkPlatformsSystem {
	return &RemoveSunkPlatformsSystem{session: s}
}

func (s *RemoveSunkPlatformsSystem) Update(w *ecs.World) {
	vp := s.session.Viewport
	if vp == nil {
		return
	}
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Platform, tr *component.Transform) {
		if p.PhaseKind() != component.PhaseSinking || tr.Y >= -vp.Height {
			return
		}
		x, y := tr.X, tr.Y
		ecs.DestroyRecursive(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventPlatformRemoved, Data: ecs.PlatformEvent{Entity: e, X: x, Y: y}})
	})
}

// SettleRisingPlatformsSystem stops rising platforms at their target height
// and makes them Idle. The platform is placed exactly on the target so that
// resting heights do not creep upward from cycle to cycle.
type SettleRisingPlatformsSystem struct{}

func NewSettleRisingPlatformsSystem() *SettleRisingPlatformsSystem {
	return &SettleRisingPlatformsSystem{}
}

func (s *SettleRisingPlatformsSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Platform, tr *component.Transform) {
		rising, ok := p.Phase.(component.Rising)
		if !ok || tr.Y < rising.TargetY {
			return
		}
		tr.Y = rising.TargetY
		setVelocity(w, e, 0, 0)
		p.Phase = component.Idle{}
		w.Events().Push(ecs.Event{Type: ecs.EventPlatformSettled, Data: ecs.PlatformEvent{Entity: e, X: tr.X, Y: tr.Y}})
	})
}

// DespawnPlatforms destroys every platform.
func DespawnPlatforms(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(e ecs.Entity, _ *component.Platform) {
		ecs.DestroyRecursive(w, e)
		n++
	})
	return n
}

// SeedPlatforms spawns count Idle platforms at baseX, baseX+spacing, ...
func SeedPlatforms(w *ecs.World, spawn PlatformSpawner, baseX, spacing, y float64, count int) error {
	for i := 0; i < count; i++ {
		x := baseX + float64(i)*spacing
		e, err := spawn(w, x, y)
		if err != nil {
			return err
		}
		w.Events().Push(ecs.Event{Type: ecs.EventPlatformSpawned, Data: ecs.PlatformEvent{Entity: e, X: x, Y: y}})
	}
	return nil
}

// setVelocity writes (x, y) into e's Velocity, adding one if missing.
func setVelocity(w *ecs.World, e ecs.Entity, x, y float64) {
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = x, y
		return
	}
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: x, Y: y})
}

// CountPlatforms returns the number of platforms in each phase.
func CountPlatforms(w *ecs.World) map[component.PhaseKind]int {
	counts := make(map[component.PhaseKind]int)
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		counts[p.PhaseKind()]++
	})
	return counts
}
