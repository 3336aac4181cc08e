package input

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"mazeparts/pkg/engine/world"
)

// Snapshot is everything the player did during one tick. Systems read it
// and never poll devices themselves.
type Snapshot struct {
	// Held actions are active for the whole tick.
	Held mapset.Set[Action]
	// Pressed actions went down during this tick.
	Pressed mapset.Set[Action]

	// Mouse motion in pixels since the previous tick.
	MouseDX float32
	MouseDY float32

	Now   time.Time
	Delta time.Duration

	// Aim is where the camera ray meets the maze, if within reach.
	Aim *world.Hit
}

// NewSnapshot creates an empty snapshot for a tick.
func NewSnapshot(now time.Time, delta time.Duration) Snapshot {
	return Snapshot{
		Held:    mapset.New[Action](),
		Pressed: mapset.New[Action](),
		Now:     now,
		Delta:   delta,
	}
}

// Hold marks the action bound to code as held for the tick.
func (s *Snapshot) Hold(code string) {
	if act := MapToIntent(RawInput{Code: code}).Action; act != ActionNone {
		s.Held.Put(act)
	}
}

// Press records a just-pressed edge for the action bound to code.
func (s *Snapshot) Press(code string) {
	if act := MapToIntent(RawInput{Code: code}).Action; act != ActionNone {
		s.Pressed.Put(act)
	}
}

// Apply records a raw event: turn-based frontends treat each key press as
// both held and pressed for one tick.
func (s *Snapshot) Apply(ev RawInput) {
	s.Hold(ev.Code)
	s.Press(ev.Code)
}

// IsHeld reports whether a is held
func (s Snapshot) IsHeld(a Action) bool {
	return s.Held.Has(a)
}

// JustPressed reports whether a went down this tick
func (s Snapshot) JustPressed(a Action) bool {
	return s.Pressed.Has(a)
}

// Seconds returns the tick length in seconds
func (s Snapshot) Seconds() float32 {
	return float32(s.Delta.Seconds())
}

// SelectedSlot returns the highest slot selected this tick, if any.
func (s Snapshot) SelectedSlot() (int, bool) {
	for a := ActionSelect3; a >= ActionSelect1; a-- {
		if s.Pressed.Has(a) {
			return Slot(a)
		}
	}
	return 0, false
}
