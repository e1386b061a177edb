package keymap

import (
	"sync"

	"github.com/dshills/modalkey/mode"
)

// RepeatToken is the reserved primary name of the repeat-trigger binding.
// Executing it replays the last repeatable action instead of recording one.
const RepeatToken = "."

// Dispatcher resolves key-sequence events to bindings, executes them, and
// tracks the last repeatable action in a single slot.
type Dispatcher struct {
	store *Store

	mu         sync.Mutex
	lastRepeat func() (any, error)
}

// NewDispatcher creates a dispatcher over the given store.
func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Store returns the underlying binding store.
func (d *Dispatcher) Store() *Store { return d.store }

// Resolve looks up the binding for a key-sequence name in a mode.
// Absence is a normal outcome.
func (d *Dispatcher) Resolve(m mode.ID, name string) (*Binding, bool) {
	return d.store.Get(m, name)
}

// Execute runs a binding with the given motion, count, and argument.
// The argument list forwarded to the action contains only the positional
// data the binding accepts, in that fixed order.
//
// Unless the binding's primary name is the repeat token, the call is
// recorded as the last repeatable action before the action runs; a
// failing action does not roll the slot back.
func (d *Dispatcher) Execute(b *Binding, motion string, count int, arg string) (any, error) {
	args := b.CallArgs(motion, count, arg)
	if b.PrimaryName() != RepeatToken {
		call := func() (any, error) { return b.Invoke(args) }
		d.mu.Lock()
		d.lastRepeat = call
		d.mu.Unlock()
	}
	return b.Invoke(args)
}

// Dispatch resolves and executes in one step. The boolean reports whether
// a binding was found; when false, nothing ran and the error is nil.
func (d *Dispatcher) Dispatch(m mode.ID, name, motion string, count int, arg string) (any, bool, error) {
	b, ok := d.store.Get(m, name)
	if !ok {
		return nil, false, nil
	}
	res, err := d.Execute(b, motion, count, arg)
	return res, true, err
}

// Repeat replays the last repeatable action with its original arguments.
// Returns ErrNothingToRepeat if no qualifying binding has executed yet.
// Replaying does not update the slot.
func (d *Dispatcher) Repeat() (any, error) {
	d.mu.Lock()
	call := d.lastRepeat
	d.mu.Unlock()
	if call == nil {
		return nil, ErrNothingToRepeat
	}
	return call()
}

// CanRepeat reports whether a repeatable action has been recorded.
func (d *Dispatcher) CanRepeat() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastRepeat != nil
}
