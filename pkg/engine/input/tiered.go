package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement, relative to where the camera faces
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight

	// Possession
	ActionSelect1
	ActionSelect2
	ActionSelect3
	ActionConfirm // Combine with a nearby part, or paint a marker

	// Meta
	ActionResetLevel
	ActionQuit
)

// SlotCount is the number of selectable character slots.
const SlotCount = 3

// Intent is the high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"w":          ActionMoveForward,
	"arrow_up":   ActionMoveForward,
	"s":          ActionMoveBack,
	"arrow_down": ActionMoveBack,
	"a":          ActionStrafeLeft,
	"d":          ActionStrafeRight,

	"arrow_left":  ActionTurnLeft,
	"q":           ActionTurnLeft,
	"arrow_right": ActionTurnRight,
	"e":           ActionTurnRight,

	"1": ActionSelect1,
	"2": ActionSelect2,
	"3": ActionSelect3,

	"space":      ActionConfirm,
	"enter":      ActionConfirm,
	"mouse_left": ActionConfirm,
	"f5":         ActionResetLevel,
	"r":          ActionResetLevel,
	"escape":     ActionQuit,
	"ctrl_c":     ActionQuit,
}

// MapToIntent applies the current bindings to a raw input and returns an Intent.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Slot returns the 1-based character slot an action selects.
func Slot(a Action) (int, bool) {
	if a >= ActionSelect1 && a <= ActionSelect3 {
		return int(a-ActionSelect1) + 1, true
	}
	return 0, false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionSelect1:
		return "Select Part 1"
	case ActionSelect2:
		return "Select Part 2"
	case ActionSelect3:
		return "Select Part 3"
	case ActionConfirm:
		return "Combine / Mark"
	case ActionResetLevel:
		return "Reset Level"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
