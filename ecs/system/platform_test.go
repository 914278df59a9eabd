package system

import (
	"errors"
	"testing"

	"github.com/milk9111/rampball/common"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/ecs/entity"
	"github.com/milk9111/rampball/mesh"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

var testViewport = session.Viewport{Width: 1280, Height: 720}

var errSpawnFailed = errors.New("spawn failed")

type countingSpawner struct {
	spec   prefabs.PlatformSpec
	points []mesh.Point
	calls  int
	// failures is the number of upcoming calls that return an error.
	failures int
}

func (c *countingSpawner) spawn(w *ecs.World, x, y float64) (ecs.Entity, error) {
	c.calls++
	if c.failures > 0 {
		c.failures--
		return 0, errSpawnFailed
	}
	return entity.NewPlatform(w, c.spec, c.points, x, y)
}

func newSpawner() *countingSpawner {
	spec := prefabs.DefaultTuning().Platform
	return &countingSpawner{spec: spec, points: spec.ControlPoints()}
}

func spawnTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatalf("add player tag: %v", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Radius: 50}); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func countEvents(events []ecs.Event, typ string) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func TestSinkPassedPlatforms(t *testing.T) {
	cfg := PlatformConfigFrom(prefabs.DefaultTuning().Platform)
	// A flat stroke from x=0 to x=10 has a bounding box ending at 10.
	short := []mesh.Point{mesh.Pt(0, 0), mesh.Pt(10, 0)}

	tests := []struct {
		name    string
		playerX float64
		sinks   bool
	}{
		{"player_behind_edge", 0, false},
		{"inside_margin", 60, false},
		{"past_margin", 1000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			platform, err := entity.NewPlatform(w, prefabs.DefaultTuning().Platform, short, 0, 0)
			if err != nil {
				t.Fatalf("NewPlatform: %v", err)
			}
			spawnTestPlayer(t, w, tt.playerX, 0)

			NewSinkPassedPlatformsSystem(cfg).Update(w)

			p, _ := ecs.Get(w, platform, component.PlatformComponent.Kind())
			if got := p.PhaseKind() == component.PhaseSinking; got != tt.sinks {
				t.Fatalf("sinking = %v, want %v", got, tt.sinks)
			}
			v, _ := ecs.Get(w, platform, component.VelocityComponent.Kind())
			wantVY := 0.0
			if tt.sinks {
				wantVY = -cfg.SinkSpeed
			}
			if v.X != 0 || v.Y != wantVY {
				t.Fatalf("velocity = %+v, want (0, %v)", v, wantVY)
			}
		})
	}
}

func TestSinkPassedPlatformsWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spawner := newSpawner()
	platform, err := spawner.spawn(w, -5000, 0)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	NewSinkPassedPlatformsSystem(PlatformConfigFrom(spawner.spec)).Update(w)
	p, _ := ecs.Get(w, platform, component.PlatformComponent.Kind())
	if p.PhaseKind() != component.PhaseIdle {
		t.Fatalf("platform should stay idle without a player, got %v", p.PhaseKind())
	}
}

func TestReplaceSinkingSpawnsExactlyOne(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	vp := testViewport
	s.Viewport = &vp

	spawner := newSpawner()
	cfg := PlatformConfigFrom(spawner.spec)
	platform, err := spawner.spawn(w, 100, -100)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	spawner.calls = 0
	spawnTestPlayer(t, w, 5000, 0)

	sink := NewSinkPassedPlatformsSystem(cfg)
	replace := NewReplaceSinkingPlatformsSystem(cfg, s, spawner.spawn, nil)
	for range 5 {
		sink.Update(w)
		replace.Update(w)
	}

	if spawner.calls != 1 {
		t.Fatalf("spawned %d replacements, want 1", spawner.calls)
	}
	counts := CountPlatforms(w)
	if counts[component.PhaseSinking] != 1 || counts[component.PhaseRising] != 1 {
		t.Fatalf("unexpected phase counts %v", counts)
	}

	var replacement ecs.Entity
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(e ecs.Entity, p *component.Platform) {
		if e != platform {
			replacement = e
		}
	})
	tr, _ := ecs.Get(w, replacement, component.TransformComponent.Kind())
	if tr.X != 100+cfg.SpawnAhead || tr.Y != -100-vp.Height {
		t.Fatalf("replacement at (%v, %v)", tr.X, tr.Y)
	}
	p, _ := ecs.Get(w, replacement, component.PlatformComponent.Kind())
	rising, ok := p.Phase.(component.Rising)
	if !ok || rising.TargetY != -100 {
		t.Fatalf("replacement phase %#v, want Rising{TargetY: -100}", p.Phase)
	}
	v, _ := ecs.Get(w, replacement, component.VelocityComponent.Kind())
	if v.Y != cfg.RiseSpeed {
		t.Fatalf("replacement velocity %+v", v)
	}

	events := w.Events().Drain()
	if got := countEvents(events, ecs.EventPlatformSpawned); got != 1 {
		t.Fatalf("got %d spawn events, want 1", got)
	}
}

func TestReplaceSinkingWaitsForViewport(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	spawner := newSpawner()
	cfg := PlatformConfigFrom(spawner.spec)
	platform, err := spawner.spawn(w, 0, 0)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	spawner.calls = 0
	p, _ := ecs.Get(w, platform, component.PlatformComponent.Kind())
	p.Phase = component.Sinking{}

	replace := NewReplaceSinkingPlatformsSystem(cfg, s, spawner.spawn, nil)
	replace.Update(w)
	replace.Update(w)
	if spawner.calls != 0 {
		t.Fatalf("spawned without a viewport")
	}

	vp := testViewport
	s.Viewport = &vp
	replace.Update(w)
	replace.Update(w)
	if spawner.calls != 1 {
		t.Fatalf("spawned %d replacements once the viewport appeared, want 1", spawner.calls)
	}
}

func TestReplaceSinkingRetriesFailedSpawn(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	vp := testViewport
	s.Viewport = &vp
	spawner := newSpawner()
	cfg := PlatformConfigFrom(spawner.spec)
	platform, err := spawner.spawn(w, 0, 0)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	spawner.calls = 0
	spawner.failures = 2
	p, _ := ecs.Get(w, platform, component.PlatformComponent.Kind())
	p.Phase = component.Sinking{}

	replace := NewReplaceSinkingPlatformsSystem(cfg, s, spawner.spawn, nil)
	for range 5 {
		replace.Update(w)
	}
	if spawner.calls != 3 {
		t.Fatalf("spawn called %d times, want 2 failures then 1 success", spawner.calls)
	}
	if got := CountPlatforms(w)[component.PhaseRising]; got != 1 {
		t.Fatalf("rising replacements = %d, want 1", got)
	}
	if p.Observed != component.PhaseSinking {
		t.Fatalf("edge should be consumed after the successful spawn, observed %v", p.Observed)
	}
}

func TestRemoveSunkPlatforms(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	vp := testViewport
	s.Viewport = &vp
	spawner := newSpawner()

	tests := []struct {
		name    string
		phase   component.PlatformPhase
		y       float64
		removed bool
	}{
		{"sinking_below", component.Sinking{}, -vp.Height - 1, true},
		{"sinking_at_edge", component.Sinking{}, -vp.Height, false},
		{"idle_below", component.Idle{}, -vp.Height - 1, false},
		{"rising_below", component.Rising{TargetY: 0}, -vp.Height - 1, false},
	}
	entities := make([]ecs.Entity, len(tests))
	for i, tt := range tests {
		e, err := spawner.spawn(w, 0, tt.y)
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		p, _ := ecs.Get(w, e, component.PlatformComponent.Kind())
		p.Phase = tt.phase
		entities[i] = e
	}

	NewRemoveSunkPlatformsSystem(s).Update(w)

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if alive := ecs.IsAlive(w, entities[i]); alive == tt.removed {
				t.Fatalf("alive = %v, want %v", alive, !tt.removed)
			}
		})
	}
}

func TestSettleRisingPlatforms(t *testing.T) {
	w := ecs.NewWorld()
	spawner := newSpawner()
	cfg := PlatformConfigFrom(spawner.spec)
	e, err := spawner.spawn(w, 0, -5)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PlatformComponent.Kind())
	p.Phase = component.Rising{TargetY: 0}
	setVelocity(w, e, 0, cfg.RiseSpeed)
	w.Events().Drain()

	settle := NewSettleRisingPlatformsSystem()
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	settled := 0
	for range 10 {
		tr.Y += v.Y * common.TickSeconds
		settle.Update(w)
		settled += countEvents(w.Events().Drain(), ecs.EventPlatformSettled)
		if tr.Y < 0 && v.Y == 0 {
			t.Fatalf("velocity zeroed below the target at y=%v", tr.Y)
		}
	}

	if settled != 1 {
		t.Fatalf("settled %d times, want 1", settled)
	}
	if v.Y != 0 || tr.Y != 0 {
		t.Fatalf("platform at y=%v with velocity %v", tr.Y, v.Y)
	}
	if p.PhaseKind() != component.PhaseIdle {
		t.Fatalf("phase = %v, want idle", p.PhaseKind())
	}
}

func TestSeedAndDespawnPlatforms(t *testing.T) {
	w := ecs.NewWorld()
	spawner := newSpawner()
	spec := spawner.spec
	if err := SeedPlatforms(w, spawner.spawn, spec.BaseX, spec.Spacing, spec.DefaultY, spec.InitialCount); err != nil {
		t.Fatalf("SeedPlatforms: %v", err)
	}
	if got := CountPlatforms(w)[component.PhaseIdle]; got != spec.InitialCount {
		t.Fatalf("seeded %d idle platforms, want %d", got, spec.InitialCount)
	}
	xs := map[float64]bool{}
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, tr *component.Transform) {
		xs[tr.X] = true
	})
	if !xs[spec.BaseX] || !xs[spec.BaseX+spec.Spacing] {
		t.Fatalf("unexpected platform positions %v", xs)
	}

	if n := DespawnPlatforms(w); n != spec.InitialCount {
		t.Fatalf("despawned %d, want %d", n, spec.InitialCount)
	}
	if ecs.Count(w, component.PlatformComponent.Kind()) != 0 {
		t.Fatalf("platforms left after despawn")
	}
}
