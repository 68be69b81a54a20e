// Package store holds the per-session client state: shopping carts and the
// admin flag. Both are snapshotted to durable local storage on every
// mutation and rehydrated on process start.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Snapshot persists one namespace of state as a JSON file.
type Snapshot struct {
	path string
}

func NewSnapshot(dir, namespace string) *Snapshot {
	return &Snapshot{path: filepath.Join(dir, namespace+".json")}
}

// Load reads the snapshot into v. A missing file is not an error: the store
// simply starts empty.
func (s *Snapshot) Load(v interface{}) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Save writes v atomically: temp file first, then rename over the snapshot.
func (s *Snapshot) Save(v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
