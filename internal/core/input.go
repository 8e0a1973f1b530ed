package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionAimLeft          // A, Left arrow - rotate aim counter-clockwise
	ActionAimRight         // D, Right arrow - rotate aim clockwise
	ActionFire             // Space - fire the selected slot
	ActionSlot1            // 1 - select slot A
	ActionSlot2            // 2 - select slot B
	ActionSlot3            // 3 - select slot C
	ActionNextPhase        // N, Enter - force the next phase
	ActionRestart          // R key - restart game
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionNextPhase:
		return "NextPhase"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// SlotIndex returns the slot index selected by a slot action, or -1.
func (a Action) SlotIndex() int {
	switch a {
	case ActionSlot1:
		return 0
	case ActionSlot2:
		return 1
	case ActionSlot3:
		return 2
	default:
		return -1
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
