// Package mode defines the input modes a binding can be scoped to.
//
// Modes are small integer identifiers. A fixed set is predeclared for the
// standard Vim-style modes; hosts may allocate further IDs at runtime with
// Register. A Set is a bitmask over IDs, so membership tests are cheap and
// a binding's mode scope fits in a single word.
package mode

import "sync"

// ID identifies a single input mode.
type ID uint8

// Predeclared modes.
const (
	Normal ID = iota
	Insert
	Visual
	VisualLine
	Operator
	Command

	firstDynamic
)

// MaxModes is the number of mode IDs a Set can represent.
const MaxModes = 32

var (
	namesMu sync.RWMutex
	names   = map[ID]string{
		Normal:     "normal",
		Insert:     "insert",
		Visual:     "visual",
		VisualLine: "visual-line",
		Operator:   "operator",
		Command:    "command",
	}
	byName = map[string]ID{
		"normal":      Normal,
		"insert":      Insert,
		"visual":      Visual,
		"visual-line": VisualLine,
		"operator":    Operator,
		"command":     Command,
	}
	nextDynamic = firstDynamic
)

// String returns the mode name, or "unknown" for an unregistered ID.
func (id ID) String() string {
	namesMu.RLock()
	defer namesMu.RUnlock()
	if n, ok := names[id]; ok {
		return n
	}
	return "unknown"
}

// FromName resolves a mode name to its ID.
func FromName(name string) (ID, bool) {
	namesMu.RLock()
	defer namesMu.RUnlock()
	id, ok := byName[name]
	return id, ok
}

// FromPrefix resolves the single-letter mode prefix used by map-style
// commands (nmap, imap, vmap, xmap, omap, cmap).
func FromPrefix(ch byte) (ID, bool) {
	switch ch {
	case 'n':
		return Normal, true
	case 'i':
		return Insert, true
	case 'v':
		return Visual, true
	case 'x':
		return VisualLine, true
	case 'o':
		return Operator, true
	case 'c':
		return Command, true
	}
	return 0, false
}

// Register allocates a new mode ID for name, or returns the existing ID if
// the name is already known. Registering more than MaxModes modes panics.
func Register(name string) ID {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := byName[name]; ok {
		return id
	}
	if nextDynamic >= MaxModes {
		panic("mode: too many registered modes")
	}
	id := nextDynamic
	nextDynamic++
	names[id] = name
	byName[name] = id
	return id
}

// Set is a bitmask of mode IDs.
type Set uint32

// NewSet builds a Set containing the given IDs.
func NewSet(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	return s&(1<<id) != 0
}

// With returns the set with id added.
func (s Set) With(id ID) Set {
	return s | 1<<id
}

// Without returns the set with id removed.
func (s Set) Without(id ID) Set {
	return s &^ (1 << id)
}

// IsEmpty reports whether the set contains no modes.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Count returns the number of modes in the set.
func (s Set) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// IDs returns the set's members in ascending order.
func (s Set) IDs() []ID {
	ids := make([]ID, 0, s.Count())
	for id := ID(0); id < MaxModes; id++ {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
