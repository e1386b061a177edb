package keymap

import (
	"iter"

	"github.com/dshills/modalkey/mode"
)

// bindingIdentity is the cross-mode identity of a user binding: the same
// literal expansion registered under the same primary name.
type bindingIdentity struct {
	rhs     string
	primary string
}

// Consistent returns a lazy sequence of the user bindings that are
// registered identically across every listed mode: for each binding in
// the first mode's user layer, an entry with the same rhs and primary
// name must exist in every other mode. Listing and export consume this
// to emit one representative per cross-mode mapping instead of one per
// mode.
//
// The sequence is finite and restartable; each iteration snapshots the
// current table state.
func (s *Store) Consistent(modes []mode.ID) iter.Seq[*Binding] {
	return func(yield func(*Binding) bool) {
		if len(modes) == 0 {
			return
		}

		s.mu.RLock()
		first := make([]*Binding, len(s.user[modes[0]]))
		copy(first, s.user[modes[0]])
		others := make([]map[bindingIdentity]bool, 0, len(modes)-1)
		for _, m := range modes[1:] {
			ids := make(map[bindingIdentity]bool, len(s.user[m]))
			for _, b := range s.user[m] {
				ids[bindingIdentity{rhs: b.rhs, primary: b.PrimaryName()}] = true
			}
			others = append(others, ids)
		}
		s.mu.RUnlock()

		for _, b := range first {
			id := bindingIdentity{rhs: b.rhs, primary: b.PrimaryName()}
			replicated := true
			for _, ids := range others {
				if !ids[id] {
					replicated = false
					break
				}
			}
			if replicated && !yield(b) {
				return
			}
		}
	}
}
