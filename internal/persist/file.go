package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/facet/internal/selection"
)

// FileStore keeps the record in a TOML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

type fileRecord struct {
	Version int               `toml:"version"`
	Filters []selection.Entry `toml:"filters"`
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the record file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record. A missing file is an empty selection.
func (s *FileStore) Load() (selection.Selection, error) {
	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read selection: %w", err)
	}

	var rec fileRecord
	if err := toml.Unmarshal(bytes, &rec); err != nil {
		return nil, malformed("%s: %v", s.path, err)
	}
	if rec.Version != recordVersion {
		return nil, malformed("%s: unsupported version %d", s.path, rec.Version)
	}
	return selection.Selection(rec.Filters).Normalize(), nil
}

// Save replaces the record, creating directories as needed.
func (s *FileStore) Save(sel selection.Selection) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	bytes, err := toml.Marshal(fileRecord{Version: recordVersion, Filters: sel.Normalize()})
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace selection: %w", err)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
