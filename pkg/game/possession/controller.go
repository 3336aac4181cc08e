// Package possession decides which character the player controls and hands
// the camera between characters.
package possession

import (
	"errors"
	"fmt"
	"sort"

	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/characters"
)

var (
	ErrNoCharacters = errors.New("possession: no characters to control")
	// ErrInvariant marks a broken "exactly one controlled character" rule.
	// It is always a programming error.
	ErrInvariant  = errors.New("possession: invariant violated")
	ErrNotInRange = errors.New("possession: character not in range")
)

// MergeDistance is how close two characters must be to combine.
const MergeDistance = 2 * world.ActorRadius

// State is either Free or Controlled(id).
type State struct {
	controlled bool
	id         characters.ID
}

// Free is the state before any character is controlled.
func Free() State {
	return State{}
}

// Controlled is the state with id bound to the player.
func Controlled(id characters.ID) State {
	return State{controlled: true, id: id}
}

// Target returns the controlled character, if any
func (s State) Target() (characters.ID, bool) {
	return s.id, s.controlled
}

// IsFree reports whether no character is controlled
func (s State) IsFree() bool {
	return !s.controlled
}

// String returns a debug form of the state
func (s State) String() string {
	if !s.controlled {
		return "Free"
	}
	return fmt.Sprintf("Controlled(%v)", s.id)
}

// Controller owns the possession state, the rig and the hand-off between them.
type Controller struct {
	chars *characters.Registry
	rig   *Rig
	state State
}

// NewController creates a controller in the Free state.
func NewController(chars *characters.Registry, rig *Rig) *Controller {
	return &Controller{chars: chars, rig: rig}
}

// State returns the current possession state
func (c *Controller) State() State {
	return c.state
}

// Rig returns the free-look rig
func (c *Controller) Rig() *Rig {
	return c.rig
}

// Controlled returns the controlled character or nil.
func (c *Controller) Controlled() *characters.Character {
	id, ok := c.state.Target()
	if !ok {
		return nil
	}
	return c.chars.Get(id)
}

// Start binds the first spawned character and moves the rig onto it.
func (c *Controller) Start() error {
	ids := c.chars.IDs()
	if len(ids) == 0 {
		return ErrNoCharacters
	}
	c.bind(c.chars.Get(ids[0]))
	return nil
}

// bind restores ch's saved look into the rig, snaps the rig onto ch and
// makes ch the controlled character.
func (c *Controller) bind(ch *characters.Character) {
	c.rig.Yaw = ch.SavedLook.Yaw
	c.rig.Pitch = ch.SavedLook.Pitch
	c.rig.Position = ch.Transform.Position
	c.state = Controlled(ch.ID)
}

// Switch hands control to the character holding part. It does nothing when
// no character holds part or that character is already controlled.
func (c *Controller) Switch(part int) bool {
	next, ok := c.chars.FindPart(part)
	if !ok {
		return false
	}
	cur := c.Controlled()
	if cur == nil || cur.ID == next.ID {
		return false
	}

	// Leave the old character where the rig put it, looking where the
	// player was looking.
	cur.Transform.Position = c.rig.Position
	cur.Transform.Yaw = c.rig.Yaw
	cur.SavedLook = characters.Look{Yaw: c.rig.Yaw, Pitch: c.rig.Pitch}

	c.bind(next)
	return true
}

// Sync copies the rig onto the controlled character. The copy is one-way.
func (c *Controller) Sync() {
	ch := c.Controlled()
	if ch == nil {
		return
	}
	ch.Transform.Position = c.rig.Position
	ch.Transform.Yaw = c.rig.Yaw
}

// InRange returns uncontrolled characters close enough to merge, nearest first.
func (c *Controller) InRange() []characters.ID {
	cur := c.Controlled()
	if cur == nil {
		return nil
	}
	type near struct {
		id   characters.ID
		dist float32
	}
	var found []near
	c.chars.Each(func(ch *characters.Character) {
		if ch.ID == cur.ID {
			return
		}
		d := ch.Transform.Position.Sub(c.rig.Position).Len()
		if d <= MergeDistance {
			found = append(found, near{ch.ID, d})
		}
	})
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]characters.ID, len(found))
	for i, n := range found {
		out[i] = n.id
	}
	return out
}

// Merge folds the identity of id into the controlled character and despawns id.
func (c *Controller) Merge(id characters.ID) error {
	cur := c.Controlled()
	if cur == nil {
		return ErrInvariant
	}
	other := c.chars.Get(id)
	if other == nil || other.ID == cur.ID {
		return fmt.Errorf("%w: %v", ErrNotInRange, id)
	}
	if other.Transform.Position.Sub(c.rig.Position).Len() > MergeDistance {
		return fmt.Errorf("%w: %v", ErrNotInRange, id)
	}
	cur.Identity.Union(other.Identity)
	c.chars.Despawn(id)
	return nil
}

// Check verifies that exactly one live character is controlled.
func (c *Controller) Check() error {
	id, ok := c.state.Target()
	if !ok {
		return fmt.Errorf("%w: no character controlled", ErrInvariant)
	}
	if !c.chars.Alive(id) {
		return fmt.Errorf("%w: controlled character %v is gone", ErrInvariant, id)
	}
	return nil
}
