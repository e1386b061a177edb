package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/modalkey/mode"
)

func TestInstallDefaults(t *testing.T) {
	s := NewStore(nil)
	resolved := make(map[string]bool)
	err := InstallDefaults(s, func(name string) Action {
		resolved[name] = true
		return noop
	})
	if err != nil {
		t.Fatalf("InstallDefaults error = %v", err)
	}

	tests := []struct {
		mode mode.ID
		name string
	}{
		{mode: mode.Normal, name: "j"},
		{mode: mode.Normal, name: "<Down>"},
		{mode: mode.Normal, name: "dd"},
		{mode: mode.Normal, name: "<C-r>"},
		{mode: mode.Normal, name: RepeatToken},
		{mode: mode.Visual, name: "w"},
		{mode: mode.Visual, name: "<Esc>"},
		{mode: mode.VisualLine, name: "gg"},
	}
	for _, tt := range tests {
		if _, ok := s.GetDefault(tt.mode, tt.name); !ok {
			t.Errorf("default %q not reachable in %v mode", tt.name, tt.mode)
		}
	}

	// Operators carry the motion flag; motions carry only count.
	d, _ := s.GetDefault(mode.Normal, "d")
	if d == nil || !d.AcceptsMotion() || !d.AcceptsCount() {
		t.Error("operator d should accept motion and count")
	}
	j, _ := s.GetDefault(mode.Normal, "j")
	if j == nil || j.AcceptsMotion() || !j.AcceptsCount() {
		t.Error("motion j should accept count only")
	}
}

func TestInstallDefaultsUnknownAction(t *testing.T) {
	s := NewStore(nil)
	err := InstallDefaults(s, func(name string) Action { return nil })
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("InstallDefaults error = %v, want ErrUnknownAction", err)
	}
}

func TestDefaultsDoNotEnterUserLayer(t *testing.T) {
	s := NewStore(nil)
	if err := InstallDefaults(s, func(string) Action { return noop }); err != nil {
		t.Fatalf("InstallDefaults error = %v", err)
	}

	for _, m := range s.Modes() {
		if n := len(s.UserBindings(m)); n != 0 {
			t.Errorf("mode %v user layer holds %d bindings, want 0", m, n)
		}
	}
}
