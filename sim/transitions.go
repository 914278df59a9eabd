package sim

import (
	"github.com/milk9111/rampball/ecs/entity"
	"github.com/milk9111/rampball/ecs/system"
	"github.com/milk9111/rampball/session"
)

func (s *Simulation) registerTransitions() {
	game := s.Session.Game
	player := s.Session.Player

	game.OnEnter(session.MainMenu, s.resetRun)
	game.OnEnter(session.Playing, func() {
		s.Session.TravelDistance = 0
		system.EnableGravity(s.World, s.Session, system.GravityConfigFrom(s.tuning.Player))
		system.BeginMovingSpikes(s.World)
	})
	game.OnExit(session.Playing, func() {
		system.ResetSpikes(s.World, s.Session)
	})
	game.OnChange(func(from, to session.GameState) {
		s.logger.Info("game state", "from", from, "to", to)
	})

	player.OnEnter(session.Dead, s.endRun)
	player.OnChange(func(from, to session.PlayerState) {
		s.logger.Info("player state", "from", from, "to", to)
	})
}

// resetRun lays out a fresh run: new platforms, zero distance and a player
// at its spawn with gravity off.
func (s *Simulation) resetRun() {
	s.applyPendingTuning()

	removed := system.DespawnPlatforms(s.World)
	system.DespawnPlayer(s.World)
	s.Session.ReleaseTouch()
	s.Session.TravelDistance = 0

	s.platformIndex = 0
	p := s.tuning.Platform
	if err := system.SeedPlatforms(s.World, s.spawnPlatform, p.BaseX, p.Spacing, p.DefaultY, p.InitialCount); err != nil {
		s.logger.Error("seed platforms", "err", err)
	}
	if _, err := entity.NewPlayer(s.World, s.tuning.Player); err != nil {
		s.logger.Error("spawn player", "err", err)
	}
	s.Session.Player.Set(session.Alive)
	s.logger.Debug("run reset", "removed_platforms", removed, "platforms", p.InitialCount)
}

func (s *Simulation) endRun() {
	system.DespawnPlayer(s.World)
	s.Session.ReleaseTouch()

	distance := s.Session.TravelDistance
	if distance > s.Session.BestDistance {
		s.Session.BestDistance = distance
	}
	s.logger.Info("run over", "distance", distance, "best", s.Session.BestDistance)

	if s.recorder == nil {
		return
	}
	if _, err := s.recorder.SaveRun(distance); err != nil {
		s.logger.Error("save run", "distance", distance, "err", err)
	}
}
