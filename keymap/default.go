package keymap

import (
	"fmt"

	"github.com/dshills/modalkey/mode"
)

// Spec declares one default binding. Action is a host action name; the
// resolver turns it into an invocable when the defaults are installed.
type Spec struct {
	Modes   mode.Set
	Names   []string
	Desc    string
	Action  string
	Options Options
}

// Resolver maps a default action name to its implementation.
type Resolver func(name string) Action

// InstallDefaults registers the built-in binding set into the store's
// default layer. Returns ErrUnknownAction if the resolver cannot supply
// an action named by the set.
func InstallDefaults(s *Store, resolve Resolver) error {
	for _, spec := range DefaultSpecs() {
		act := resolve(spec.Action)
		if act == nil {
			return fmt.Errorf("%w: %q", ErrUnknownAction, spec.Action)
		}
		b, err := New(spec.Modes, spec.Names, spec.Desc, act, spec.Options)
		if err != nil {
			return fmt.Errorf("default %q: %w", spec.Action, err)
		}
		if err := s.AddDefault(b); err != nil {
			return fmt.Errorf("default %q: %w", spec.Action, err)
		}
	}
	return nil
}

// DefaultSpecs returns the built-in binding set: a core Vim command set
// covering motions, operators, mode switches, and editing commands.
func DefaultSpecs() []Spec {
	normal := mode.NewSet(mode.Normal)
	nv := mode.NewSet(mode.Normal, mode.Visual, mode.VisualLine)
	visual := mode.NewSet(mode.Visual, mode.VisualLine)
	motion := Options{Count: true}
	operator := Options{Motion: true, Count: true}

	return []Spec{
		// Motions, shared between normal and visual modes.
		{Modes: nv, Names: []string{"h", "<Left>"}, Desc: "Move left", Action: "cursor.left", Options: motion},
		{Modes: nv, Names: []string{"j", "<Down>"}, Desc: "Move down", Action: "cursor.down", Options: motion},
		{Modes: nv, Names: []string{"k", "<Up>"}, Desc: "Move up", Action: "cursor.up", Options: motion},
		{Modes: nv, Names: []string{"l", "<Right>"}, Desc: "Move right", Action: "cursor.right", Options: motion},
		{Modes: nv, Names: []string{"w"}, Desc: "Next word", Action: "cursor.wordForward", Options: motion},
		{Modes: nv, Names: []string{"b"}, Desc: "Previous word", Action: "cursor.wordBackward", Options: motion},
		{Modes: nv, Names: []string{"e"}, Desc: "End of word", Action: "cursor.wordEnd", Options: motion},
		{Modes: nv, Names: []string{"0", "<Home>"}, Desc: "Line start", Action: "cursor.lineStart"},
		{Modes: nv, Names: []string{"$", "<End>"}, Desc: "Line end", Action: "cursor.lineEnd"},
		{Modes: nv, Names: []string{"^"}, Desc: "First non-blank", Action: "cursor.firstNonBlank"},
		{Modes: nv, Names: []string{"gg"}, Desc: "Document start", Action: "cursor.firstLine", Options: motion},
		{Modes: nv, Names: []string{"G"}, Desc: "Document end", Action: "cursor.lastLine", Options: motion},
		{Modes: nv, Names: []string{"{"}, Desc: "Previous paragraph", Action: "cursor.paragraphBack", Options: motion},
		{Modes: nv, Names: []string{"}"}, Desc: "Next paragraph", Action: "cursor.paragraphForward", Options: motion},
		{Modes: nv, Names: []string{"%"}, Desc: "Matching bracket", Action: "cursor.matchBracket"},

		// Scrolling.
		{Modes: normal, Names: []string{"<C-d>"}, Desc: "Half page down", Action: "view.halfPageDown", Options: motion},
		{Modes: normal, Names: []string{"<C-u>"}, Desc: "Half page up", Action: "view.halfPageUp", Options: motion},
		{Modes: normal, Names: []string{"<C-f>", "<PageDown>"}, Desc: "Page down", Action: "view.pageDown", Options: motion},
		{Modes: normal, Names: []string{"<C-b>", "<PageUp>"}, Desc: "Page up", Action: "view.pageUp", Options: motion},
		{Modes: normal, Names: []string{"zz"}, Desc: "Center cursor", Action: "view.center"},

		// Mode switches.
		{Modes: normal, Names: []string{"i"}, Desc: "Insert before cursor", Action: "mode.insert"},
		{Modes: normal, Names: []string{"I"}, Desc: "Insert at line start", Action: "mode.insertLineStart"},
		{Modes: normal, Names: []string{"a"}, Desc: "Append after cursor", Action: "mode.append"},
		{Modes: normal, Names: []string{"A"}, Desc: "Append at line end", Action: "mode.appendLineEnd"},
		{Modes: normal, Names: []string{"o"}, Desc: "Open line below", Action: "mode.openBelow"},
		{Modes: normal, Names: []string{"O"}, Desc: "Open line above", Action: "mode.openAbove"},
		{Modes: normal, Names: []string{"v"}, Desc: "Visual mode", Action: "mode.visual"},
		{Modes: normal, Names: []string{"V"}, Desc: "Visual line mode", Action: "mode.visualLine"},
		{Modes: normal, Names: []string{":"}, Desc: "Command mode", Action: "mode.command"},
		{Modes: visual, Names: []string{"<Esc>"}, Desc: "Back to normal mode", Action: "mode.normal"},

		// Operators take a motion and a count.
		{Modes: normal, Names: []string{"d"}, Desc: "Delete", Action: "operator.delete", Options: operator},
		{Modes: normal, Names: []string{"c"}, Desc: "Change", Action: "operator.change", Options: operator},
		{Modes: normal, Names: []string{"y"}, Desc: "Yank", Action: "operator.yank", Options: operator},
		{Modes: normal, Names: []string{">"}, Desc: "Indent", Action: "operator.indent", Options: operator},
		{Modes: normal, Names: []string{"<lt>"}, Desc: "Outdent", Action: "operator.outdent", Options: operator},
		{Modes: visual, Names: []string{"d", "x"}, Desc: "Delete selection", Action: "edit.deleteSelection"},
		{Modes: visual, Names: []string{"y"}, Desc: "Yank selection", Action: "edit.yankSelection"},
		{Modes: visual, Names: []string{"c"}, Desc: "Change selection", Action: "edit.changeSelection"},

		// Line operations (doubled operators).
		{Modes: normal, Names: []string{"dd"}, Desc: "Delete line", Action: "edit.deleteLine", Options: motion},
		{Modes: normal, Names: []string{"yy"}, Desc: "Yank line", Action: "edit.yankLine", Options: motion},
		{Modes: normal, Names: []string{"cc"}, Desc: "Change line", Action: "edit.changeLine"},

		// Quick edits.
		{Modes: normal, Names: []string{"x", "<Del>"}, Desc: "Delete character", Action: "edit.deleteChar", Options: motion},
		{Modes: normal, Names: []string{"X"}, Desc: "Delete character before", Action: "edit.deleteCharBefore", Options: motion},
		{Modes: normal, Names: []string{"r"}, Desc: "Replace character", Action: "edit.replaceChar", Options: Options{Arg: true, Count: true}},
		{Modes: normal, Names: []string{"p"}, Desc: "Paste after", Action: "edit.pasteAfter", Options: motion},
		{Modes: normal, Names: []string{"P"}, Desc: "Paste before", Action: "edit.pasteBefore", Options: motion},
		{Modes: normal, Names: []string{"J"}, Desc: "Join lines", Action: "edit.joinLines", Options: motion},
		{Modes: normal, Names: []string{"~"}, Desc: "Toggle case", Action: "edit.toggleCase", Options: motion},

		// History and repeat.
		{Modes: normal, Names: []string{"u"}, Desc: "Undo", Action: "history.undo", Options: motion},
		{Modes: normal, Names: []string{"<C-r>"}, Desc: "Redo", Action: "history.redo", Options: motion},
		{Modes: normal, Names: []string{RepeatToken}, Desc: "Repeat last change", Action: "edit.repeat", Options: motion},

		// Search.
		{Modes: normal, Names: []string{"/"}, Desc: "Search forward", Action: "search.forward", Options: Options{Arg: true}},
		{Modes: normal, Names: []string{"?"}, Desc: "Search backward", Action: "search.backward", Options: Options{Arg: true}},
		{Modes: normal, Names: []string{"n"}, Desc: "Next match", Action: "search.next", Options: motion},
		{Modes: normal, Names: []string{"N"}, Desc: "Previous match", Action: "search.previous", Options: motion},
		{Modes: normal, Names: []string{"*"}, Desc: "Search word under cursor", Action: "search.word"},
	}
}
