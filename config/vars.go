// Package config holds process-wide named variables shared by the binding
// engine and its host. The only variable the engine itself reads is
// "mapleader", but hosts commonly stash their own flags here as well.
package config

import "sync"

// LeaderVar is the variable name the leader string lives under.
const LeaderVar = "mapleader"

// DefaultLeader is the leader used when mapleader is unset.
const DefaultLeader = `\`

// Vars is a mutex-guarded store of named variables.
// The zero value is not usable; call NewVars.
type Vars struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewVars creates an empty variable store.
func NewVars() *Vars {
	return &Vars{values: make(map[string]any)}
}

// Set assigns a variable.
func (v *Vars) Set(name string, value any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[name] = value
}

// Unset removes a variable.
func (v *Vars) Unset(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.values, name)
}

// Get returns a variable's raw value.
func (v *Vars) Get(name string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.values[name]
	return val, ok
}

// GetString returns a string variable, or def if unset or not a string.
func (v *Vars) GetString(name, def string) string {
	if val, ok := v.Get(name); ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return def
}

// GetBool returns a bool variable, or def if unset or not a bool.
func (v *Vars) GetBool(name string, def bool) bool {
	if val, ok := v.Get(name); ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return def
}

// GetInt returns an int variable, or def if unset or not an integer.
func (v *Vars) GetInt(name string, def int) int {
	if val, ok := v.Get(name); ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		}
	}
	return def
}

// Leader returns the current leader string.
func (v *Vars) Leader() string {
	return v.GetString(LeaderVar, DefaultLeader)
}

// SetLeader sets the leader string.
func (v *Vars) SetLeader(leader string) {
	v.Set(LeaderVar, leader)
}
