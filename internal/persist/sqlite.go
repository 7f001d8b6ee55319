package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/five82/facet/internal/selection"
)

// SQLiteStore keeps the record as a JSON payload in a SQLite table.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

var _ Store = (*SQLiteStore)(nil)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS records (
	name TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// OpenSQLite opens (or creates) the database at path and stores the record
// under name.
func OpenSQLite(path, name string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	dsn := path + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(createRecordsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &SQLiteStore{db: db, name: name}, nil
}

// Load reads the record. A missing row is an empty selection.
func (s *SQLiteStore) Load() (selection.Selection, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM records WHERE name = ?", s.name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query selection: %w", err)
	}

	var sel selection.Selection
	if err := json.Unmarshal([]byte(payload), &sel); err != nil {
		return nil, malformed("record %q: %v", s.name, err)
	}
	return sel.Normalize(), nil
}

// Save upserts the record.
func (s *SQLiteStore) Save(sel selection.Selection) error {
	sel = sel.Normalize()
	if sel == nil {
		sel = selection.Selection{}
	}
	payload, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO records (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.name, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
