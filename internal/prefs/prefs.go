// Package prefs persists small viewer preferences across runs: the chosen
// theme and the last location, so a restart reopens where the viewer left
// off.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Prefs is the saved preference set.
type Prefs struct {
	Theme        string `json:"theme,omitempty"`
	LastLocation string `json:"lastLocation"`
}

// Store reads and writes the preference file.
type Store struct {
	path string
}

// NewStore locates the preference file under the user config directory.
// When no config directory is available the store is disabled: loads
// return zero prefs and saves do nothing.
func NewStore() *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &Store{}
	}
	return &Store{path: filepath.Join(dir, "dembrandt", "prefs.json")}
}

// NewStoreAt uses an explicit file path, for tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved preferences. A missing file is not an error; a
// corrupt one returns zero prefs alongside the error so the caller can log
// and continue.
func (s *Store) Load() (Prefs, error) {
	if s.path == "" {
		return Prefs{}, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("read prefs: %w", err)
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("decode prefs: %w", err)
	}
	return p, nil
}

// Save writes the preferences atomically via a temp file rename.
func (s *Store) Save(p Prefs) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "prefs-*.json")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
