package keymap

import (
	"testing"

	"github.com/dshills/modalkey/mode"
)

func collect(t *testing.T, s *Store, modes []mode.ID) []*Binding {
	t.Helper()
	var out []*Binding
	for b := range s.Consistent(modes) {
		out = append(out, b)
	}
	return out
}

func TestConsistentCrossMode(t *testing.T) {
	s := NewStore(nil)
	both := mode.NewSet(mode.Normal, mode.Visual)

	if err := s.AddUser(both, []string{"<Leader>w"}, "", noop, Options{RHS: "dw"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	got := collect(t, s, []mode.ID{mode.Normal, mode.Visual})
	if len(got) != 1 {
		t.Fatalf("Consistent yields %d entries, want 1", len(got))
	}
	if got[0].RHS() != "dw" {
		t.Errorf("yielded binding RHS = %q, want %q", got[0].RHS(), "dw")
	}

	// Removing the visual-mode copy breaks the replication.
	s.Remove(mode.Visual, got[0].PrimaryName())
	if got := collect(t, s, []mode.ID{mode.Normal, mode.Visual}); len(got) != 0 {
		t.Errorf("Consistent after removal yields %d entries, want 0", len(got))
	}
}

func TestConsistentExcludesSingleMode(t *testing.T) {
	s := NewStore(nil)

	if err := s.AddUser(mode.NewSet(mode.Normal), []string{"q"}, "", noop, Options{RHS: "x"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	if got := collect(t, s, []mode.ID{mode.Normal, mode.Visual}); len(got) != 0 {
		t.Errorf("binding present in one mode only should not be yielded, got %d", len(got))
	}

	// Against just its own mode it is trivially consistent.
	if got := collect(t, s, []mode.ID{mode.Normal}); len(got) != 1 {
		t.Errorf("single-mode view yields %d entries, want 1", len(got))
	}
}

func TestConsistentRequiresMatchingRHS(t *testing.T) {
	s := NewStore(nil)

	if err := s.AddUser(mode.NewSet(mode.Normal), []string{"q"}, "", noop, Options{RHS: "x"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}
	if err := s.AddUser(mode.NewSet(mode.Visual), []string{"q"}, "", noop, Options{RHS: "y"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	if got := collect(t, s, []mode.ID{mode.Normal, mode.Visual}); len(got) != 0 {
		t.Errorf("same name with different rhs should not be yielded, got %d", len(got))
	}
}

func TestConsistentRestartable(t *testing.T) {
	s := NewStore(nil)
	both := mode.NewSet(mode.Normal, mode.Visual)
	if err := s.AddUser(both, []string{"q"}, "", noop, Options{RHS: "x"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	seq := s.Consistent([]mode.ID{mode.Normal, mode.Visual})
	first := 0
	for range seq {
		first++
	}

	// A second registration shows up on the next restart.
	if err := s.AddUser(both, []string{"r"}, "", noop, Options{RHS: "y"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}
	second := 0
	for range seq {
		second++
	}

	if first != 1 || second != 2 {
		t.Errorf("restart yields %d then %d, want 1 then 2", first, second)
	}
}

func TestConsistentEarlyStop(t *testing.T) {
	s := NewStore(nil)
	both := mode.NewSet(mode.Normal, mode.Visual)
	for _, name := range []string{"a", "b", "c"} {
		if err := s.AddUser(both, []string{name}, "", noop, Options{RHS: "x" + name}); err != nil {
			t.Fatalf("AddUser error = %v", err)
		}
	}

	n := 0
	for range s.Consistent([]mode.ID{mode.Normal, mode.Visual}) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break consumed %d entries, want 2", n)
	}
}

func TestConsistentEmptyModeList(t *testing.T) {
	s := NewStore(nil)
	if got := collect(t, s, nil); len(got) != 0 {
		t.Errorf("empty mode list yields %d entries, want 0", len(got))
	}
}
