// Package characters owns the character entities of a level.
package characters

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ID addresses a character slot. A slot's generation is bumped when its
// character despawns, so stale IDs never resolve to a later character.
type ID struct {
	Index int
	Gen   int
}

// Valid reports whether the ID was ever issued
func (id ID) Valid() bool {
	return id.Index > 0
}

// String returns the ID as "index.gen"
func (id ID) String() string {
	return fmt.Sprintf("%d.%d", id.Index, id.Gen)
}

// Transform is a character's place in the world.
type Transform struct {
	Position mgl32.Vec3
	Yaw      float32
}

// Look is a saved camera orientation in radians.
type Look struct {
	Yaw   float32
	Pitch float32
}

// Character is one independently tracked part of the player.
type Character struct {
	ID        ID
	Identity  Identity
	Transform Transform
	// SavedLook holds the camera orientation while the character is not
	// controlled. Only the possession controller writes it.
	SavedLook Look
}

type slot struct {
	gen   int
	alive bool
	char  Character
}

// Registry is an arena of characters.
type Registry struct {
	slots []slot
	free  []int
	// order keeps live IDs in spawn order for stable iteration.
	order []ID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn creates a character holding the single part number at pos.
func (r *Registry) Spawn(part int, pos mgl32.Vec3) ID {
	var idx int
	if len(r.free) > 0 {
		idx = r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
	} else {
		r.slots = append(r.slots, slot{})
		idx = len(r.slots)
	}
	s := &r.slots[idx-1]
	id := ID{Index: idx, Gen: s.gen}
	s.alive = true
	s.char = Character{
		ID:        id,
		Identity:  NewIdentity(part),
		Transform: Transform{Position: pos},
	}
	r.order = append(r.order, id)
	return id
}

// Get returns the live character for id, or nil.
func (r *Registry) Get(id ID) *Character {
	if !r.Alive(id) {
		return nil
	}
	return &r.slots[id.Index-1].char
}

// Alive reports whether id refers to a live character
func (r *Registry) Alive(id ID) bool {
	if id.Index <= 0 || id.Index > len(r.slots) {
		return false
	}
	s := r.slots[id.Index-1]
	return s.alive && s.gen == id.Gen
}

// Despawn removes a character. Unknown or stale IDs are ignored.
func (r *Registry) Despawn(id ID) bool {
	if !r.Alive(id) {
		return false
	}
	s := &r.slots[id.Index-1]
	s.alive = false
	s.gen++
	s.char = Character{}
	r.free = append(r.free, id.Index)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live characters
func (r *Registry) Len() int {
	return len(r.order)
}

// IDs returns live IDs in spawn order.
func (r *Registry) IDs() []ID {
	return append([]ID(nil), r.order...)
}

// Each calls fn for every live character in spawn order.
func (r *Registry) Each(fn func(c *Character)) {
	for _, id := range r.IDs() {
		if c := r.Get(id); c != nil {
			fn(c)
		}
	}
}

// FindPart returns the character whose identity holds part.
func (r *Registry) FindPart(part int) (*Character, bool) {
	for _, id := range r.order {
		c := r.Get(id)
		if c != nil && c.Identity.Has(part) {
			return c, true
		}
	}
	return nil, false
}
