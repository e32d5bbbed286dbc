package core

// Action is a semantic player intent, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRotate         // W, Up arrow, Space
	ActionDrop           // S, Down arrow
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionPreset1        // 1..4 select a difficulty preset
	ActionPreset2
	ActionPreset3
	ActionPreset4
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRotate:  "Rotate",
	ActionDrop:    "Drop",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionPreset1: "Preset1",
	ActionPreset2: "Preset2",
	ActionPreset3: "Preset3",
	ActionPreset4: "Preset4",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// PresetIndex returns the zero-based preset selected by a preset action.
func (a Action) PresetIndex() (int, bool) {
	if a >= ActionPreset1 && a <= ActionPreset4 {
		return int(a - ActionPreset1), true
	}
	return 0, false
}

// InputFrame collects the actions triggered during one tick.
// Order is kept so that "move, move, rotate" within a frame replays as typed.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
