package state

// GameState represents the current state of the play scene
type GameState int

const (
	StatePlaying GameState = iota
	StateMenu              // menu overlay shown, the boat keeps sinking
	StateSunk
	StateReplayEnded
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateMenu:
		return "Menu"
	case StateSunk:
		return "Sunk"
	case StateReplayEnded:
		return "ReplayEnded"
	default:
		return "Unknown"
	}
}

// Accepts reports whether the simulation advances in this state
func (s GameState) Accepts() bool {
	return s == StatePlaying || s == StateMenu
}
