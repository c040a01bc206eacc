package core

import (
	"math"
	"time"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (also a tap)
	ActionSlide          // S, Down - slide under obstacles
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R, Enter - restart run after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause run
	ActionShop           // Tab - open the skin shop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSlide:
		return "Slide"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionShop:
		return "Shop"
	default:
		return "Unknown"
	}
}

// Swipe gesture thresholds.
const (
	SwipeMaxDuration = 400 * time.Millisecond // Longer gestures are taps
	SwipeMinDistance = 30.0                   // Minimum vertical travel in pointer units
)

// ClassifySwipe turns a pointer gesture into a runner intent.
// A quick, mostly vertical gesture is a swipe: upward jumps, downward slides.
// Anything else is a tap, and a tap jumps.
func ClassifySwipe(dx, dy float64, dt time.Duration) Action {
	if dt < SwipeMaxDuration && math.Abs(dy) > SwipeMinDistance && math.Abs(dy) > math.Abs(dx) {
		if dy < 0 {
			return ActionJump
		}
		return ActionSlide
	}
	return ActionJump
}

// InputFrame collects the actions triggered between two simulation ticks.
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
