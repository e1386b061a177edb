package keymap

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/modalkey/key"
	"github.com/dshills/modalkey/mode"
)

// Replayer feeds a literal key expansion back to the host input layer as
// synthetic key input. remap controls whether the replayed keys may
// trigger further mapping lookups; silent suppresses echo.
type Replayer interface {
	Feed(keys string, remap, silent bool) error
}

// ReplayFunc adapts a function to the Replayer interface.
type ReplayFunc func(keys string, remap, silent bool) error

// Feed implements Replayer.
func (f ReplayFunc) Feed(keys string, remap, silent bool) error {
	return f(keys, remap, silent)
}

// mappingFile is the on-disk mapping configuration.
type mappingFile struct {
	Leader string     `toml:"leader"`
	Maps   []mapEntry `toml:"map"`
}

// mapEntry is one user mapping declaration.
type mapEntry struct {
	Modes   []string `toml:"modes"`
	LHS     string   `toml:"lhs"`
	RHS     string   `toml:"rhs"`
	NoRemap bool     `toml:"noremap"`
	Silent  bool     `toml:"silent"`
	Desc    string   `toml:"desc"`
}

// Loader registers user mappings from TOML configuration. Each entry
// becomes a simple remap: a user binding whose action replays the rhs
// through the host's Replayer.
type Loader struct {
	store  *Store
	replay Replayer
}

// NewLoader creates a loader registering into store and replaying through
// replay.
func NewLoader(store *Store, replay Replayer) *Loader {
	return &Loader{store: store, replay: replay}
}

// LoadFile loads mappings from a TOML file. A missing file is not an
// error.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading mapping file %s: %w", path, err)
	}
	return l.Load(data)
}

// Load parses TOML mapping data and registers every entry. The leader
// declaration, if present, applies to all entries in the same file.
func (l *Loader) Load(data []byte) error {
	var file mappingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decoding mapping file: %w", err)
	}

	if file.Leader != "" {
		l.store.Vars().SetLeader(file.Leader)
	}

	for _, entry := range file.Maps {
		if err := l.register(entry); err != nil {
			return fmt.Errorf("mapping %q: %w", entry.LHS, err)
		}
	}
	return nil
}

func (l *Loader) register(entry mapEntry) error {
	var modes mode.Set
	for _, name := range entry.Modes {
		id, ok := mode.FromName(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMode, name)
		}
		modes = modes.With(id)
	}

	// Bake the replayed expansion now, mirroring what AddUser stores.
	rhs, err := key.Canonicalize(ExpandLeader(entry.RHS, l.store.Vars().Leader()))
	if err != nil {
		return fmt.Errorf("canonicalizing rhs %q: %w", entry.RHS, err)
	}

	remap := !entry.NoRemap
	silent := entry.Silent
	replay := l.replay
	action := Action(func(args ...any) (any, error) {
		return nil, replay.Feed(rhs, remap, silent)
	})

	return l.store.AddUser(modes, []string{entry.LHS}, entry.Desc, action, Options{
		RHS:     entry.RHS,
		NoRemap: entry.NoRemap,
		Silent:  entry.Silent,
	})
}
