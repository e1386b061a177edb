package keymap

import "errors"

// Registration and execution errors.
var (
	// ErrNoModes indicates a binding was constructed with an empty mode set.
	ErrNoModes = errors.New("keymap: binding requires at least one mode")

	// ErrNoNames indicates a binding was constructed with no names.
	ErrNoNames = errors.New("keymap: binding requires at least one name")

	// ErrNilAction indicates a binding was constructed without an action.
	ErrNilAction = errors.New("keymap: binding requires an action")

	// ErrNothingToRepeat indicates Repeat was called before any
	// repeatable binding executed.
	ErrNothingToRepeat = errors.New("keymap: nothing to repeat")

	// ErrUnknownAction indicates a default spec names an action the
	// resolver does not know.
	ErrUnknownAction = errors.New("keymap: unknown action")

	// ErrUnknownMode indicates a mapping file references an unknown mode.
	ErrUnknownMode = errors.New("keymap: unknown mode")
)
