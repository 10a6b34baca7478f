package vault

import (
	"fmt"
	"log/slog"
	"os"
)

// DefaultPath is the backing file used when no database_path is configured.
const DefaultPath = "./database.json"

// FileStore reads and writes entries from a JSON file on disk.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// EnsureInitialized writes an empty array to the backing file if it is
// missing or unreadable.
func (s *FileStore) EnsureInitialized() error {
	if _, err := os.ReadFile(s.path); err == nil {
		return nil
	}
	slog.Debug("initializing vault", "path", s.path)
	return s.Save(nil)
}

// Load reads and decodes the backing file.
func (s *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading vault: %w", err)
	}

	entries, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing vault %s: %w", s.path, err)
	}
	slog.Debug("vault loaded", "path", s.path, "entries", len(entries))
	return entries, nil
}

// Save encodes entries and overwrites the backing file in place.
func (s *FileStore) Save(entries []Entry) error {
	data, err := Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding vault: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing vault: %w", err)
	}
	slog.Debug("vault saved", "path", s.path, "entries", len(entries))
	return nil
}
