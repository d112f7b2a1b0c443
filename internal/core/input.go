package core

// Intents is the per-tick input snapshot consumed by the simulation.
// The platform derives it from whatever input mechanism it has; the kernel
// only ever sees these booleans.
type Intents struct {
	JumpRequested bool // A jump was pressed this tick
	JumpHeld      bool // The jump key is still considered down
	DuckHeld      bool // The duck key is considered down
}

// Idle returns an empty input snapshot.
func Idle() Intents {
	return Intents{}
}

// Jump returns a snapshot with a fresh, held jump.
func Jump() Intents {
	return Intents{JumpRequested: true, JumpHeld: true}
}

// Action represents a semantic driver action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionDuck           // S, Down
	ActionRestart        // R, or jump while game over
	ActionPause          // P, Escape
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
