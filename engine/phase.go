package engine

// Phase is the session state
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// validTransitions lists the phases reachable from each phase
// Reset re-initializes into Playing from any phase and is not a transition
var validTransitions = map[Phase][]Phase{
	PhaseMenu:     {PhasePlaying},
	PhasePlaying:  {PhasePaused, PhaseGameOver, PhaseMenu},
	PhasePaused:   {PhasePlaying, PhaseMenu},
	PhaseGameOver: {PhaseMenu, PhasePlaying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// AcceptsDirection reports whether directional input is queued in this phase
func (p Phase) AcceptsDirection() bool {
	return p == PhasePlaying || p == PhasePaused
}

// Overlay is a menu sub-screen
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayLeaderboard
	OverlayStats
)

func (o Overlay) String() string {
	switch o {
	case OverlayLeaderboard:
		return "leaderboard"
	case OverlayStats:
		return "stats"
	default:
		return "none"
	}
}
