package keymap

import (
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dshills/modalkey/config"
	"github.com/dshills/modalkey/mode"
)

// bracketedName matches names that open with a complete <...> token.
// Used by Candidates to avoid offering, say, "<C-x>" as a continuation of
// a literal "<" typed alone.
var bracketedName = regexp.MustCompile(`^<.+>`)

// Store holds the default and user binding layers, indexed by mode.
// Lookups check the user layer first, so user bindings shadow defaults.
// Only the user layer is mutable after registration.
//
// All mutating operations are serialized behind a single lock per store;
// AddUser's remove-then-insert is not atomic across unsynchronized callers.
type Store struct {
	mu       sync.RWMutex
	vars     *config.Vars
	defaults map[mode.ID][]*Binding
	user     map[mode.ID][]*Binding
}

// NewStore creates a store with all predeclared modes initialized and the
// given variable store for leader resolution. A nil vars gets a fresh one.
func NewStore(vars *config.Vars) *Store {
	if vars == nil {
		vars = config.NewVars()
	}
	s := &Store{
		vars:     vars,
		defaults: make(map[mode.ID][]*Binding),
		user:     make(map[mode.ID][]*Binding),
	}
	for id := mode.Normal; id <= mode.Command; id++ {
		s.registerModeLocked(id)
	}
	return s
}

// Vars returns the variable store backing leader expansion.
func (s *Store) Vars() *config.Vars { return s.vars }

// RegisterMode initializes empty layers for a mode. Idempotent.
func (s *Store) RegisterMode(id mode.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registerModeLocked(id)
}

func (s *Store) registerModeLocked(id mode.ID) {
	if _, ok := s.defaults[id]; !ok {
		s.defaults[id] = make([]*Binding, 0)
	}
	if _, ok := s.user[id]; !ok {
		s.user[id] = make([]*Binding, 0)
	}
}

// Modes returns the registered mode IDs in ascending order.
func (s *Store) Modes() []mode.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]mode.ID, 0, len(s.defaults))
	for id := range s.defaults {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// AddDefault appends a binding to the default layer of every mode it is
// scoped to. Default bindings are never removed or overridden by user
// operations.
func (s *Store) AddDefault(b *Binding) error {
	if b == nil || b.Modes().IsEmpty() {
		return ErrNoModes
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range b.Modes().IDs() {
		s.registerModeLocked(id)
		s.defaults[id] = append(s.defaults[id], b)
	}
	return nil
}

// AddUser registers a user binding. Leader placeholders in names and rhs
// are expanded first, baked into the stored canonical form. For every
// (mode, name) pair, any existing user binding reachable under that name
// is narrowed or deleted before the new binding is appended, so the last
// definition wins, matching interactive redefinition.
//
// A failed construction (empty modes or names, bad key spec) leaves the
// tables untouched.
func (s *Store) AddUser(modes mode.Set, names []string, desc string, action Action, opts Options) error {
	leader := s.vars.Leader()
	expanded := make([]string, len(names))
	for i, n := range names {
		expanded[i] = ExpandLeader(n, leader)
	}
	opts.RHS = ExpandLeader(opts.RHS, leader)
	opts.User = true

	b, err := New(modes, expanded, desc, action, opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range modes.IDs() {
		s.registerModeLocked(id)
		for _, name := range b.names {
			s.removeLocked(id, name)
		}
	}
	for _, id := range modes.IDs() {
		s.user[id] = append(s.user[id], b)
	}
	return nil
}

// Get returns the binding reachable under name in the given mode: the
// first user-layer match, else the first default-layer match. Absence is
// a normal outcome, not an error.
func (s *Store) Get(m mode.ID, name string) (*Binding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.user[m] {
		if b.MatchesName(name) {
			return b, true
		}
	}
	for _, b := range s.defaults[m] {
		if b.MatchesName(name) {
			return b, true
		}
	}
	return nil, false
}

// GetDefault looks name up in the default layer only.
func (s *Store) GetDefault(m mode.ID, name string) (*Binding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.defaults[m] {
		if b.MatchesName(name) {
			return b, true
		}
	}
	return nil, false
}

// Candidates returns every binding, user and default, with a name that
// starts with prefix and is strictly longer than it. These are the
// bindings still reachable by typing more keys.
//
// For the prefix "<" alone, names that open with a complete bracketed
// token are excluded: a lone "<" usually precedes such a token rather
// than being a genuine prefix of it.
func (s *Store) Candidates(m mode.ID, prefix string) []*Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Binding, 0)
	for _, b := range s.user[m] {
		if hasCandidateName(b, prefix) {
			out = append(out, b)
		}
	}
	for _, b := range s.defaults[m] {
		if hasCandidateName(b, prefix) {
			out = append(out, b)
		}
	}
	return out
}

func hasCandidateName(b *Binding, prefix string) bool {
	for _, n := range b.names {
		if len(n) <= len(prefix) || !strings.HasPrefix(n, prefix) {
			continue
		}
		if prefix == "<" && bracketedName.MatchString(n) {
			continue
		}
		return true
	}
	return false
}

// HasUser reports whether name resolves in the user layer of mode m.
func (s *Store) HasUser(m mode.ID, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.user[m] {
		if b.MatchesName(name) {
			return true
		}
	}
	return false
}

// UserBindings returns a snapshot of the user layer for a mode, for
// completion and listing.
func (s *Store) UserBindings(m mode.ID) []*Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.user[m])
}

// Remove excises name from the first user binding that carries it in the
// given mode. A binding whose name list becomes empty is dropped from the
// mode's table. No-op when the name is not found.
func (s *Store) Remove(m mode.ID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(m, name)
}

func (s *Store) removeLocked(m mode.ID, name string) {
	bindings := s.user[m]
	for i, b := range bindings {
		if !b.MatchesName(name) {
			continue
		}
		if b.removeName(name) {
			s.user[m] = append(bindings[:i], bindings[i+1:]...)
		}
		return
	}
}

// RemoveAll clears the user layer for a mode. Defaults are untouched.
func (s *Store) RemoveAll(m mode.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user[m] = make([]*Binding, 0)
}
