// Package luabind exposes Lua functions as binding actions.
//
// A Source wraps a gopher-lua state and mints keymap.Action values from
// global Lua function names. LStates are not goroutine-safe, so every
// call through a Source is serialized behind its mutex.
package luabind

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modalkey/keymap"
)

// ErrNotAFunction is returned when the named global is missing or not a
// Lua function.
var ErrNotAFunction = errors.New("luabind: global is not a function")

// Source mints binding actions from a Lua state. The caller owns the
// state's lifecycle; closing it invalidates all actions minted from it.
type Source struct {
	mu sync.Mutex
	L  *lua.LState
}

// New creates a Source over an existing Lua state.
func New(L *lua.LState) *Source {
	return &Source{L: L}
}

// Action returns a binding action that calls the named global Lua
// function. Call arguments marshal to Lua values; a single return value
// converts back to Go. Lua errors propagate as Go errors.
func (s *Source) Action(fn string) keymap.Action {
	return func(args ...any) (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		target := s.L.GetGlobal(fn)
		if target.Type() != lua.LTFunction {
			return nil, fmt.Errorf("%w: %q", ErrNotAFunction, fn)
		}

		s.L.Push(target)
		for _, a := range args {
			s.L.Push(toLua(a))
		}
		if err := s.L.PCall(len(args), 1, nil); err != nil {
			return nil, fmt.Errorf("calling %q: %w", fn, err)
		}

		ret := s.L.Get(-1)
		s.L.Pop(1)
		return fromLua(ret), nil
	}
}

// toLua converts a Go call argument to a Lua value.
func toLua(v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case bool:
		return lua.LBool(x)
	default:
		return lua.LString(fmt.Sprint(x))
	}
}

// fromLua converts a Lua return value to Go.
func fromLua(v lua.LValue) any {
	switch x := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(x)
	case lua.LNumber:
		f := float64(x)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case lua.LBool:
		return bool(x)
	default:
		return x.String()
	}
}
