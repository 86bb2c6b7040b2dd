package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts map their own key events onto these before calling into the session.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, X - flap
	ActionRetry        // Enter - new round after game over
	ActionStart        // S, or Enter before the first round
	ActionQuit         // Q, Ctrl+C, Esc - leave the host
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRetry:
		return "Retry"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
