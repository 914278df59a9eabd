package component

// PhaseKind names a platform lifecycle phase.
type PhaseKind uint8

const (
	PhaseNone PhaseKind = iota
	PhaseIdle
	PhaseSinking
	PhaseRising
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhaseSinking:
		return "sinking"
	case PhaseRising:
		return "rising"
	default:
		return "none"
	}
}

// PlatformPhase is one of Idle, Sinking or Rising.
type PlatformPhase interface {
	Kind() PhaseKind
	platformPhase()
}

// Idle platforms rest in place and may start sinking once the player has
// passed them.
type Idle struct{}

// Sinking platforms move down until they leave the play area.
type Sinking struct{}

// Rising platforms move up until they reach TargetY.
type Rising struct {
	TargetY float64
}

func (Idle) Kind() PhaseKind    { return PhaseIdle }
func (Sinking) Kind() PhaseKind { return PhaseSinking }
func (Rising) Kind() PhaseKind  { return PhaseRising }

func (Idle) platformPhase()    {}
func (Sinking) platformPhase() {}
func (Rising) platformPhase()  {}

// Platform is the lifecycle state of one ramp segment. Observed holds the
// phase seen by the replacement step on its previous run, so a change to
// Sinking is handled once.
type Platform struct {
	Phase    PlatformPhase
	Observed PhaseKind
}

// PhaseKind returns the kind of the current phase, or PhaseNone.
func (p *Platform) PhaseKind() PhaseKind {
	if p == nil || p.Phase == nil {
		return PhaseNone
	}
	return p.Phase.Kind()
}

var PlatformComponent = NewComponent[Platform]()
