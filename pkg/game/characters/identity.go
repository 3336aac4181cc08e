package characters

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Identity is the set of part numbers a character represents, kept in the
// order they were collected.
type Identity struct {
	order []int
	set   mapset.Set[int]
}

// NewIdentity returns an identity holding the given parts.
func NewIdentity(parts ...int) Identity {
	var id Identity
	for _, p := range parts {
		id.add(p)
	}
	return id
}

func (id *Identity) add(part int) {
	if len(id.order) == 0 {
		id.set = mapset.New[int]()
	}
	if id.set.Has(part) {
		return
	}
	id.set.Put(part)
	id.order = append(id.order, part)
}

// Has reports whether the identity holds part
func (id Identity) Has(part int) bool {
	return id.set.Has(part)
}

// Len returns the number of parts
func (id Identity) Len() int {
	return len(id.order)
}

// Parts returns the part numbers in collection order.
func (id Identity) Parts() []int {
	return append([]int(nil), id.order...)
}

// Union adds every part of other that is not held yet. Identities only grow.
func (id *Identity) Union(other Identity) {
	for _, p := range other.order {
		id.add(p)
	}
}

// Complete reports whether all parts 1..total are held.
func (id Identity) Complete(total int) bool {
	if total <= 0 || id.Len() < total {
		return false
	}
	for p := 1; p <= total; p++ {
		if !id.set.Has(p) {
			return false
		}
	}
	return true
}

// String formats the identity as "1+2+3"
func (id Identity) String() string {
	parts := make([]string, len(id.order))
	for i, p := range id.order {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, "+")
}
