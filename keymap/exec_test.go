package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/modalkey/mode"
)

// recorder captures the argument lists an action is invoked with.
type recorder struct {
	calls [][]any
}

func (r *recorder) action(args ...any) (any, error) {
	r.calls = append(r.calls, args)
	return len(r.calls), nil
}

func TestExecuteForwardsArgs(t *testing.T) {
	s := NewStore(nil)
	d := NewDispatcher(s)
	rec := &recorder{}

	if err := s.AddUser(mode.NewSet(mode.Normal), []string{"q"}, "", rec.action,
		Options{Motion: true, Count: true}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	b, ok := d.Resolve(mode.Normal, "q")
	if !ok {
		t.Fatal("Resolve(q) not found")
	}
	if _, err := d.Execute(b, "w", 5, "x"); err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	if len(rec.calls) != 1 {
		t.Fatalf("action invoked %d times, want 1", len(rec.calls))
	}
	got := rec.calls[0]
	if len(got) != 2 || got[0] != "w" || got[1] != 5 {
		t.Errorf("action args = %v, want [w 5]", got)
	}
}

func TestRepeatReplaysIdenticalCall(t *testing.T) {
	s := NewStore(nil)
	d := NewDispatcher(s)
	rec := &recorder{}

	if err := s.AddUser(mode.NewSet(mode.Normal), []string{"q"}, "", rec.action,
		Options{Motion: true, Count: true}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	if _, found, err := d.Dispatch(mode.Normal, "q", "w", 3, ""); !found || err != nil {
		t.Fatalf("Dispatch = found %v, err %v", found, err)
	}
	if _, err := d.Repeat(); err != nil {
		t.Fatalf("Repeat error = %v", err)
	}

	if len(rec.calls) != 2 {
		t.Fatalf("action invoked %d times, want 2", len(rec.calls))
	}
	for i, call := range rec.calls {
		if len(call) != 2 || call[0] != "w" || call[1] != 3 {
			t.Errorf("call %d args = %v, want [w 3]", i, call)
		}
	}
}

func TestRepeatTokenDoesNotRecord(t *testing.T) {
	s := NewStore(nil)
	d := NewDispatcher(s)
	rec := &recorder{}

	if err := s.AddUser(mode.NewSet(mode.Normal), []string{"q"}, "", rec.action, Options{}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}
	repeatAction := func(args ...any) (any, error) { return d.Repeat() }
	if err := s.AddUser(mode.NewSet(mode.Normal), []string{RepeatToken}, "", repeatAction, Options{}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	if _, _, err := d.Dispatch(mode.Normal, "q", "", 1, ""); err != nil {
		t.Fatalf("Dispatch(q) error = %v", err)
	}
	// Running the repeat binding replays q without replacing the slot.
	if _, _, err := d.Dispatch(mode.Normal, RepeatToken, "", 1, ""); err != nil {
		t.Fatalf("Dispatch(.) error = %v", err)
	}
	if _, _, err := d.Dispatch(mode.Normal, RepeatToken, "", 1, ""); err != nil {
		t.Fatalf("Dispatch(.) error = %v", err)
	}

	if len(rec.calls) != 3 {
		t.Errorf("q invoked %d times, want 3 (direct + two repeats)", len(rec.calls))
	}
}

func TestRepeatEmpty(t *testing.T) {
	d := NewDispatcher(NewStore(nil))

	if d.CanRepeat() {
		t.Error("CanRepeat() = true on a fresh dispatcher")
	}
	if _, err := d.Repeat(); !errors.Is(err, ErrNothingToRepeat) {
		t.Errorf("Repeat() error = %v, want ErrNothingToRepeat", err)
	}
}

func TestDispatchAbsenceIsNotAnError(t *testing.T) {
	d := NewDispatcher(NewStore(nil))

	res, found, err := d.Dispatch(mode.Normal, "zz", "", 1, "")
	if found || err != nil || res != nil {
		t.Errorf("Dispatch of unmapped name = (%v, %v, %v), want (nil, false, nil)", res, found, err)
	}
}

func TestFailedActionKeepsRepeatSlot(t *testing.T) {
	s := NewStore(nil)
	d := NewDispatcher(s)
	boom := errors.New("boom")

	if err := s.AddUser(mode.NewSet(mode.Normal), []string{"q"}, "", func(args ...any) (any, error) {
		return nil, boom
	}, Options{}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}

	if _, _, err := d.Dispatch(mode.Normal, "q", "", 1, ""); !errors.Is(err, boom) {
		t.Fatalf("Dispatch error = %v, want boom", err)
	}
	// The slot is set before the action runs and is not rolled back.
	if !d.CanRepeat() {
		t.Error("failed action should still leave the repeat slot set")
	}
	if _, err := d.Repeat(); !errors.Is(err, boom) {
		t.Errorf("Repeat error = %v, want boom", err)
	}
}
