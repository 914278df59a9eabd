package system

import (
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/session"
)

// StartOnPressSystem starts a run on any press in the main menu.
type StartOnPressSystem struct {
	session *session.Session
}

func NewStartOnPressSystem(s *session.Session) *StartOnPressSystem {
	return &StartOnPressSystem{session: s}
}

func (m *StartOnPressSystem) Update(_ *ecs.World) {
	if len(m.session.Input.JustPressed()) > 0 {
		m.session.Game.Set(session.Playing)
	}
}
