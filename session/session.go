// Package session holds the state shared by every system during a run: the
// game and player state machines, the tracked touch, travel distance and the
// viewport size.
package session

type GameState uint8

const (
	MainMenu GameState = iota
	Playing
)

func (s GameState) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

type PlayerState uint8

const (
	Alive PlayerState = iota
	Dead
)

func (s PlayerState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Viewport is the visible play area in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// Session is owned by the simulation and passed to systems explicitly.
type Session struct {
	Game   *Machine[GameState]
	Player *Machine[PlayerState]

	// ActiveTouch is the contact controlling gravity, nil when none is held.
	ActiveTouch    *TouchID
	TravelDistance float64
	BestDistance   float64

	// Viewport is nil while no window exists.
	Viewport *Viewport
	Input    TouchSource
}

func New() *Session {
	return &Session{
		Game:   NewMachine(MainMenu),
		Player: NewMachine(Alive),
		Input:  NoTouches{},
	}
}

// Start runs the enter callbacks of both initial states.
func (s *Session) Start() {
	s.Game.Start()
	s.Player.Start()
}

// ApplyTransitions applies queued game then player transitions. A game
// transition may queue a player transition, which is applied in the same
// call.
func (s *Session) ApplyTransitions() {
	s.Game.Apply()
	s.Player.Apply()
}

func (s *Session) Playing() bool {
	return s.Game.Is(Playing)
}

func (s *Session) Alive() bool {
	return s.Player.Is(Alive)
}

// ClaimTouch makes id the active touch.
func (s *Session) ClaimTouch(id TouchID) {
	s.ActiveTouch = &id
}

func (s *Session) ReleaseTouch() {
	s.ActiveTouch = nil
}
