package invaders

// State is the top-level game state.
type State int

const (
	StatePlaying State = iota // Ticking; initial state
	StatePaused               // Frozen until resumed
	StateWon                  // Formation cleared; frozen until restarted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Ticking reports whether the simulation advances in this state.
func (s State) Ticking() bool {
	return s == StatePlaying
}

// transitions lists the legal moves between states. Restart is not listed:
// it is allowed from every state and always lands in StatePlaying.
var transitions = map[State][]State{
	StatePlaying: {StatePaused, StateWon},
	StatePaused:  {StatePlaying},
	StateWon:     {},
}

// canTransition reports whether from -> to is a legal transition.
func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
