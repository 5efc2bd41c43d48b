package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the single username record.
type Store interface {
	// Load returns the saved name and whether one was present.
	Load() (string, bool, error)
	// Save overwrites the record with name.
	Save(name string) error
}

// FileStore keeps the record as a plain-text file holding only the name.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read username record %s: %w", s.path, err)
	}

	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}

func (s *FileStore) Save(name string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(name), 0o644); err != nil {
		return fmt.Errorf("write username record %s: %w", s.path, err)
	}
	return nil
}
