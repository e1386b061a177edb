package keymap

import (
	"fmt"

	"github.com/dshills/modalkey/key"
	"github.com/dshills/modalkey/mode"
)

// Action is the invocable behavior of a binding. The argument list is
// assembled by CallArgs according to the binding's flags.
type Action func(args ...any) (any, error)

// Options configures a binding at construction. The zero value matches
// the defaults: no positional data forwarded, remapping allowed, not
// silent, no literal expansion, default layer.
type Options struct {
	// Arg forwards the literal argument to the action.
	Arg bool

	// Count forwards the count to the action.
	Count bool

	// Motion forwards the motion to the action.
	Motion bool

	// Route additionally propagates the key event to the embedding host.
	Route bool

	// NoRemap prevents the literal expansion, when replayed as synthetic
	// input, from triggering further mapping lookups.
	NoRemap bool

	// Silent suppresses echo of replayed output.
	Silent bool

	// RHS is the literal canonical expansion for a simple remap.
	// Empty for bindings backed by arbitrary code.
	RHS string

	// User marks the binding as user-defined, placing it in the user
	// layer where it shadows defaults and may be removed.
	User bool
}

// Binding associates one or more canonical key-sequence names with an
// action, scoped to a set of modes. All fields except the name list are
// immutable after construction; the name list shrinks only through
// Store.Remove.
type Binding struct {
	modes mode.Set
	names []string
	desc  string
	act   Action

	acceptsArg    bool
	acceptsCount  bool
	acceptsMotion bool
	routeToHost   bool
	noRemap       bool
	silent        bool
	rhs           string
	user          bool
}

// New constructs a binding. Names are canonicalized; the first name is the
// primary name used for display and identity. Returns ErrNoModes or
// ErrNoNames when the corresponding set is empty.
func New(modes mode.Set, names []string, desc string, action Action, opts Options) (*Binding, error) {
	if modes.IsEmpty() {
		return nil, ErrNoModes
	}
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	if action == nil {
		return nil, ErrNilAction
	}

	canonical := make([]string, len(names))
	for i, n := range names {
		c, err := key.Canonicalize(n)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing %q: %w", n, err)
		}
		canonical[i] = c
	}

	rhs := opts.RHS
	if rhs != "" {
		c, err := key.Canonicalize(rhs)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing rhs %q: %w", rhs, err)
		}
		rhs = c
	}

	return &Binding{
		modes:         modes,
		names:         canonical,
		desc:          desc,
		act:           action,
		acceptsArg:    opts.Arg,
		acceptsCount:  opts.Count,
		acceptsMotion: opts.Motion,
		routeToHost:   opts.Route,
		noRemap:       opts.NoRemap,
		silent:        opts.Silent,
		rhs:           rhs,
		user:          opts.User,
	}, nil
}

// Modes returns the mode set this binding is active in.
func (b *Binding) Modes() mode.Set { return b.modes }

// Names returns a copy of the binding's canonical names.
func (b *Binding) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// PrimaryName returns the first name, used for display and identity.
// Empty once all names have been removed.
func (b *Binding) PrimaryName() string {
	if len(b.names) == 0 {
		return ""
	}
	return b.names[0]
}

// Description returns the display string.
func (b *Binding) Description() string { return b.desc }

// RHS returns the literal canonical expansion, or "" for code-backed
// bindings.
func (b *Binding) RHS() string { return b.rhs }

// AcceptsArg reports whether Execute forwards the literal argument.
func (b *Binding) AcceptsArg() bool { return b.acceptsArg }

// AcceptsCount reports whether Execute forwards the count.
func (b *Binding) AcceptsCount() bool { return b.acceptsCount }

// AcceptsMotion reports whether the binding needs a motion before it can
// meaningfully execute. Waiting for that motion is the input layer's job.
func (b *Binding) AcceptsMotion() bool { return b.acceptsMotion }

// RouteToHost reports whether the key event should additionally propagate
// to the embedding host.
func (b *Binding) RouteToHost() bool { return b.routeToHost }

// AllowsRemap reports whether the replayed expansion may itself trigger
// further mapping lookups (the inverse of noremap).
func (b *Binding) AllowsRemap() bool { return !b.noRemap }

// Silent reports whether echo of replayed output is suppressed.
func (b *Binding) Silent() bool { return b.silent }

// UserDefined reports whether the binding lives in the user layer.
func (b *Binding) UserDefined() bool { return b.user }

// MatchesName reports whether name is one of the binding's canonical names.
func (b *Binding) MatchesName(name string) bool {
	for _, n := range b.names {
		if n == name {
			return true
		}
	}
	return false
}

// CallArgs assembles the action's argument list: motion, count, then arg,
// each included only if the corresponding flag is set.
func (b *Binding) CallArgs(motion string, count int, arg string) []any {
	args := make([]any, 0, 3)
	if b.acceptsMotion {
		args = append(args, motion)
	}
	if b.acceptsCount {
		args = append(args, count)
	}
	if b.acceptsArg {
		args = append(args, arg)
	}
	return args
}

// Invoke calls the action with a prebuilt argument list. Action failures
// propagate unchanged.
func (b *Binding) Invoke(args []any) (any, error) {
	return b.act(args...)
}

// removeName excises a single name. Reports whether the name list is now
// empty, meaning the binding should be dropped from the containing table.
func (b *Binding) removeName(name string) bool {
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
	return len(b.names) == 0
}
