// Package sim assembles the world, the physics space and the session into a
// fixed-step simulation that knows nothing about windows or drawing.
package sim

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rampball/common"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/ecs/entity"
	"github.com/milk9111/rampball/ecs/system"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
)

// RunRecorder keeps finished runs.
type RunRecorder interface {
	SaveRun(distance float64) (int64, error)
	BestDistance() (float64, error)
}

type Options struct {
	Tuning prefabs.Tuning
	// Seed is handed to shape scripts.
	Seed     int64
	Logger   *log.Logger
	Recorder RunRecorder
}

// Simulation owns one world and everything that acts on it.
type Simulation struct {
	World   *ecs.World
	Session *session.Session
	Physics *system.PhysicsSystem

	scheduler *ecs.Scheduler
	post      *ecs.Scheduler
	logger    *log.Logger
	recorder  RunRecorder
	seed      int64

	tuning        prefabs.Tuning
	pendingTuning *prefabs.Tuning
	shapes        prefabs.ShapeSource
	platformIndex int

	paused bool
	ticks  uint64
}

// New builds the simulation and enters the main menu: the platforms are
// seeded and the player waits at the origin.
func New(opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	world := opts.Tuning.World
	gravity := world.Gravity
	if gravity <= 0 {
		gravity = common.Gravity
	}

	s := &Simulation{
		World:    ecs.NewWorld(),
		Session:  session.New(),
		Physics:  system.NewPhysicsSystem(gravity, common.TickSeconds),
		logger:   logger,
		recorder: opts.Recorder,
		seed:     opts.Seed,
		tuning:   opts.Tuning,
	}
	s.shapes = s.shapeSource()
	s.buildSchedulers()

	if _, err := entity.NewCamera(s.World, world); err != nil {
		logger.Error("spawn camera", "err", err)
	}
	if s.recorder != nil {
		if best, err := s.recorder.BestDistance(); err != nil {
			logger.Error("load best distance", "err", err)
		} else {
			s.Session.BestDistance = best
		}
	}

	s.registerTransitions()
	s.Session.Start()
	return s
}

func (s *Simulation) buildSchedulers() {
	sess := s.Session
	t := s.tuning
	platformCfg := system.PlatformConfigFrom(t.Platform)
	gravityCfg := system.GravityConfigFrom(t.Player)
	metersPerUnit := t.World.MetersPerUnit
	if metersPerUnit <= 0 {
		metersPerUnit = common.MetersPerUnit
	}

	inMenu := func(*ecs.World) bool { return sess.Game.Is(session.MainMenu) }
	playing := func(*ecs.World) bool { return sess.Playing() }
	// A death queued earlier in the tick already stops the player's systems.
	playingAlive := func(*ecs.World) bool {
		next, ok := sess.Player.Pending()
		return sess.Playing() && sess.Alive() && !(ok && next == session.Dead)
	}

	scheduler := ecs.NewScheduler(system.NewSpikeSpawnSystem(sess, t.Spikes, s.logger))
	scheduler.AddWhen(inMenu, system.NewStartOnPressSystem(sess))
	scheduler.AddWhen(playing,
		system.NewSinkPassedPlatformsSystem(platformCfg),
		system.NewReplaceSinkingPlatformsSystem(platformCfg, sess, s.spawnPlatform, s.logger),
		system.NewRemoveSunkPlatformsSystem(sess),
		system.NewSettleRisingPlatformsSystem(),
	)
	scheduler.AddWhen(playingAlive,
		system.NewPlayerCollisionSystem(sess),
		system.NewPlayerFallSystem(sess),
	)
	scheduler.AddWhen(playingAlive,
		system.NewGravityControlSystem(sess, gravityCfg),
		system.NewTravelDistanceSystem(sess, metersPerUnit),
	)
	s.scheduler = scheduler
	s.post = ecs.NewScheduler(system.NewCameraFollowSystem(), ecs.SystemFunc(s.drainEvents))
}

// Tick advances the simulation by one fixed step. Transitions requested
// between ticks are applied first; transitions requested by the systems
// take effect before the physics step.
func (s *Simulation) Tick() {
	if s.paused {
		return
	}
	s.Session.ApplyTransitions()
	s.scheduler.Update(s.World)
	s.Session.ApplyTransitions()
	s.Physics.Update(s.World)
	s.post.Update(s.World)
	s.ticks++
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Paused() bool {
	return s.paused
}

// SetPaused freezes or resumes the simulation without changing any state.
func (s *Simulation) SetPaused(paused bool) {
	if paused != s.paused {
		s.logger.Debug("pause", "paused", paused)
	}
	s.paused = paused
}

// SetViewport records the visible play area. Systems that need it start
// working on the next tick.
func (s *Simulation) SetViewport(width, height float64) {
	vp := s.Session.Viewport
	if vp != nil && vp.Width == width && vp.Height == height {
		return
	}
	s.Session.Viewport = &session.Viewport{Width: width, Height: height}
	s.logger.Debug("viewport", "width", width, "height", height)
}

func (s *Simulation) Tuning() prefabs.Tuning {
	return s.tuning
}

// QueueTuning replaces the tuning when the next run is set up.
func (s *Simulation) QueueTuning(t prefabs.Tuning) {
	s.pendingTuning = &t
	s.logger.Info("tuning reloaded, applies to the next run")
}

func (s *Simulation) applyPendingTuning() {
	if s.pendingTuning == nil {
		return
	}
	s.tuning = *s.pendingTuning
	s.pendingTuning = nil
	s.shapes = s.shapeSource()
	s.buildSchedulers()
	gravity := s.tuning.World.Gravity
	if gravity <= 0 {
		gravity = common.Gravity
	}
	s.Physics.SetGravity(gravity)
}

func (s *Simulation) shapeSource() prefabs.ShapeSource {
	fixed := prefabs.FixedShape(s.tuning.Platform.ControlPoints())
	name := s.tuning.Platform.ShapeScript
	if name == "" {
		return fixed
	}
	script, err := prefabs.NewScriptShape(name, s.seed)
	if err != nil {
		s.logger.Warn("shape script unusable, using fixed points", "script", name, "err", err)
		return fixed
	}
	return script
}

// spawnPlatform is the platform spawner handed to the lifecycle systems.
func (s *Simulation) spawnPlatform(w *ecs.World, x, y float64) (ecs.Entity, error) {
	index := s.platformIndex
	s.platformIndex++
	points, err := s.shapes.Points(index)
	if err != nil || len(points) < 2 {
		s.logger.Warn("platform shape unusable, using fixed points", "index", index, "points", len(points), "err", err)
		points = s.tuning.Platform.ControlPoints()
	}
	return entity.NewPlatform(w, s.tuning.Platform, points, x, y)
}

func (s *Simulation) drainEvents(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		pe, ok := evt.Data.(ecs.PlatformEvent)
		if !ok {
			s.logger.Debug(evt.Type)
			continue
		}
		s.logger.Debug(evt.Type, "entity", pe.Entity, "x", pe.X, "y", pe.Y)
	}
}

// PlayerPosition returns the player's position when one exists.
func (s *Simulation) PlayerPosition() (x, y float64, ok bool) {
	player, found := ecs.First(s.World, component.PlayerTagComponent.Kind())
	if !found {
		return 0, 0, false
	}
	tr, found := ecs.Get(s.World, player, component.TransformComponent.Kind())
	if !found {
		return 0, 0, false
	}
	return tr.X, tr.Y, true
}
