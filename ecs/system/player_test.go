package system

import (
	"math"
	"testing"

	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/ecs/entity"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

func TestFellOut(t *testing.T) {
	const radius, height = 50.0, 720.0
	boundary := -(height / 2) - (radius / 2)
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"below_boundary", boundary - 1, true},
		{"at_boundary", boundary, false},
		{"above_boundary", boundary + 1, false},
		{"on_screen", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FellOut(tt.y, radius, height); got != tt.want {
				t.Fatalf("FellOut(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestPlayerFallSystem(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	player := spawnTestPlayer(t, w, 0, -1000)
	fall := NewPlayerFallSystem(s)

	fall.Update(w)
	s.Player.Apply()
	if !s.Alive() {
		t.Fatalf("player died without a viewport")
	}

	vp := testViewport
	s.Viewport = &vp
	fall.Update(w)
	s.Player.Apply()
	if s.Alive() {
		t.Fatalf("expected the player to die below the play area")
	}
	if !ecs.IsAlive(w, player) {
		t.Fatalf("the fall system must not destroy the player itself")
	}
}

func TestGravityControl(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	touches := &session.Touches{}
	s.Input = touches
	cfg := GravityConfig{Hold: 10, Release: 1}

	player, err := entity.NewPlayer(w, prefabs.DefaultTuning().Player)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	scale, _ := ecs.Get(w, player, component.GravityScaleComponent.Kind())
	control := NewGravityControlSystem(s, cfg)

	steps := []struct {
		name   string
		input  func()
		want   float64
		active *session.TouchID
	}{
		{"idle", func() {}, 0, nil},
		{"first_press", func() { touches.Press(3) }, 10, touchPtr(3)},
		{"second_press_ignored", func() { touches.Press(4) }, 10, touchPtr(3)},
		{"other_release_ignored", func() { touches.Release(4) }, 10, touchPtr(3)},
		{"tracked_release", func() { touches.Release(3) }, 1, nil},
		{"mouse_press", func() { touches.Press(session.MouseTouchID) }, 10, touchPtr(session.MouseTouchID)},
	}
	for _, step := range steps {
		step.input()
		control.Update(w)
		touches.EndTick()
		if scale.Scale != step.want {
			t.Fatalf("%s: gravity scale = %v, want %v", step.name, scale.Scale, step.want)
		}
		switch {
		case step.active == nil && s.ActiveTouch != nil:
			t.Fatalf("%s: expected no active touch, got %v", step.name, *s.ActiveTouch)
		case step.active != nil && (s.ActiveTouch == nil || *s.ActiveTouch != *step.active):
			t.Fatalf("%s: expected active touch %v, got %v", step.name, *step.active, s.ActiveTouch)
		}
	}
}

func TestEnableGravity(t *testing.T) {
	cfg := GravityConfig{Hold: 10, Release: 1}
	tests := []struct {
		name    string
		held    []session.TouchID
		want    float64
		claimed bool
	}{
		{"nothing_held", nil, 1, false},
		{"touch_held", []session.TouchID{7, 8}, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			s := session.New()
			touches := &session.Touches{}
			for _, id := range tt.held {
				touches.Press(id)
			}
			touches.EndTick()
			s.Input = touches

			player, err := entity.NewPlayer(w, prefabs.DefaultTuning().Player)
			if err != nil {
				t.Fatalf("NewPlayer: %v", err)
			}
			EnableGravity(w, s, cfg)

			scale, _ := ecs.Get(w, player, component.GravityScaleComponent.Kind())
			if scale.Scale != tt.want {
				t.Fatalf("gravity scale = %v, want %v", scale.Scale, tt.want)
			}
			if (s.ActiveTouch != nil) != tt.claimed {
				t.Fatalf("claimed = %v, want %v", s.ActiveTouch != nil, tt.claimed)
			}
			if tt.claimed && *s.ActiveTouch != tt.held[0] {
				t.Fatalf("claimed %v, want the oldest contact %v", *s.ActiveTouch, tt.held[0])
			}
		})
	}
}

func TestPlayerCollisionWithSpikes(t *testing.T) {
	w := ecs.NewWorld()
	wall, err := entity.NewSpikeWall(w, prefabs.DefaultTuning().Spikes, testViewport)
	if err != nil {
		t.Fatalf("NewSpikeWall: %v", err)
	}
	children, _ := ecs.Get(w, wall, component.ChildrenComponent.Kind())
	spike := ecs.Entity(children.Entities[3])
	platform, err := newSpawner().spawn(w, 0, 0)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}

	tests := []struct {
		name      string
		colliding []ecs.Entity
		dies      bool
	}{
		{"nothing", nil, false},
		{"platform", []ecs.Entity{platform}, false},
		{"wall", []ecs.Entity{wall}, true},
		{"spike", []ecs.Entity{platform, spike}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New()
			player := spawnTestPlayer(t, w, 0, 0)
			defer ecs.DestroyRecursive(w, player)
			ids := make([]uint64, 0, len(tt.colliding))
			for _, e := range tt.colliding {
				ids = append(ids, uint64(e))
			}
			if err := ecs.Add(w, player, component.CollidingEntitiesComponent.Kind(), &component.CollidingEntities{Entities: ids}); err != nil {
				t.Fatalf("add colliding entities: %v", err)
			}

			NewPlayerCollisionSystem(s).Update(w)
			s.Player.Apply()
			if dead := !s.Alive(); dead != tt.dies {
				t.Fatalf("dead = %v, want %v", dead, tt.dies)
			}
		})
	}
}

func TestTravelDistanceMonotonic(t *testing.T) {
	w := ecs.NewWorld()
	s := session.New()
	player := spawnTestPlayer(t, w, 0, 0)
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	travel := NewTravelDistanceSystem(s, 0.01)

	maxX := 0.0
	for _, x := range []float64{0, 150, 420, 300, -50, 420, 1000, 999} {
		tr.X = x
		maxX = max(maxX, x)
		before := s.TravelDistance
		travel.Update(w)
		if s.TravelDistance < before {
			t.Fatalf("distance decreased from %v to %v at x=%v", before, s.TravelDistance, x)
		}
		if want := maxX / 100; math.Abs(s.TravelDistance-want) > 1e-9 {
			t.Fatalf("distance = %v at x=%v, want %v", s.TravelDistance, x, want)
		}
	}
}

func TestDespawnPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, prefabs.DefaultTuning().Player)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if !DespawnPlayer(w) {
		t.Fatalf("expected the player to be despawned")
	}
	if ecs.IsAlive(w, player) || len(ecs.Entities(w)) != 0 {
		t.Fatalf("player or its visuals survived: %v", ecs.Entities(w))
	}
	if DespawnPlayer(w) {
		t.Fatalf("second despawn should report nothing")
	}
}

func touchPtr(id session.TouchID) *session.TouchID {
	return &id
}
