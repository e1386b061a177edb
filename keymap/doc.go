// Package keymap is a modal key-sequence binding engine.
//
// The engine stores keyboard command mappings scoped to one or more input
// modes, resolves incoming key sequences to bindings, and executes them.
// It supports built-in (default) and user-defined layers, multi-key
// sequences with incremental prefix matching, <Leader> substitution, and
// Vim-style remap/noremap semantics.
//
// # Layers
//
// Each mode carries two ordered binding lists: defaults and user. Lookup
// checks the user layer first, so user bindings shadow defaults without
// touching them. Only the user layer is mutable; registering a user
// binding first removes anything reachable under the same name in the
// same mode, so the last definition wins.
//
// # Usage
//
//	store := keymap.NewStore(nil)
//	err := store.AddUser(mode.NewSet(mode.Normal), []string{"<Leader>w"},
//		"delete word", action, keymap.Options{RHS: "dw", NoRemap: true})
//
//	d := keymap.NewDispatcher(store)
//	if b, ok := d.Resolve(mode.Normal, ",w"); ok {
//		result, err := d.Execute(b, "", 1, "")
//	}
//
// Incremental entry asks the store which bindings are still reachable:
//
//	if len(store.Candidates(mode.Normal, "d")) > 0 {
//		// wait for more keys
//	}
//
// # Repeat
//
// Every executed binding whose primary name is not "." is recorded as the
// last repeatable action; Dispatcher.Repeat replays it with the identical
// arguments.
//
// # Collaborators
//
// The engine does not parse :map command text, canonicalize hardware key
// events, or render mapping lists. Those live in the host; the host feeds
// this package canonical key-sequence strings (see the key package) and
// consumes Consistent for deduplicated listing across modes.
package keymap
