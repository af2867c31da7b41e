// Package session persists the logged-in technician record across restarts.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sounicbehera/madina-technician-app/internal/api"
)

// Store is the interface for durable session persistence.
type Store interface {
	Load() (*api.Technician, error)
	Save(tech *api.Technician) error
	Clear() error
}

// FileStore keeps the session as a JSON file. The one key of durable state the
// client owns.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".madina-technician", "session.json"), nil
}

// Load reads the persisted session. An absent or malformed file means no
// session; neither is an error.
func (s *FileStore) Load() (*api.Technician, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var tech api.Technician
	if err := json.Unmarshal(data, &tech); err != nil {
		// Corrupt session file is treated as logged out
		return nil, nil
	}
	if tech.ID == "" {
		return nil, nil
	}
	return &tech, nil
}

// Save durably persists the session, overwriting any existing value.
func (s *FileStore) Save(tech *api.Technician) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tech, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the persisted session. Removing an absent file succeeds.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
