// Package persist keeps the committed selection across sessions.
//
// Only the committed selection is stored, under a single record name
// ("filter-storage" unless configured otherwise). Drafts never reach disk.
// Two backends exist: a TOML file and a SQLite table. Both normalize what
// they load and both treat a record they cannot decode as ErrMalformed: the
// caller gets an empty selection and an error to log, never a crash.
package persist

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/five82/facet/internal/config"
	"github.com/five82/facet/internal/selection"
)

// ErrMalformed marks a stored record that could not be decoded.
var ErrMalformed = errors.New("malformed selection record")

// Store loads and saves the committed selection.
type Store interface {
	Load() (selection.Selection, error)
	Save(selection.Selection) error
	Close() error
}

// recordVersion is the current on-disk format.
const recordVersion = 1

// Open returns the backend selected by cfg.
func Open(cfg config.Config) (Store, error) {
	switch cfg.StateBackend {
	case config.BackendFile, "":
		return NewFileStore(filepath.Join(cfg.StateDir, cfg.StateName+".toml")), nil
	case config.BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.StateDir, "facet.db"), cfg.StateName)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
