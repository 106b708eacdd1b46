// Package sqlitestore keeps the item collection in a SQLite database file.
// The table is replaced wholesale on every save, like the flat-file stores.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"

	_ "modernc.org/sqlite"
)

// FileName is the database file name inside the data directory.
const FileName = "data.db"

const schema = `
CREATE TABLE IF NOT EXISTS items (
	position    INTEGER PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL DEFAULT '',
	time        TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT ''
);`

// Store opens the database per call; no connection outlives an operation.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a Store for the database at path.
func New(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logging.OrNop(logger)}
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

// Load returns the stored items in position order. A missing database,
// a file that is not a database, or a database without the items table
// yields an empty collection.
func (s *Store) Load() ([]model.Item, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("stat: %w", err)
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	items, err := queryItems(db)
	if err != nil {
		s.logger.Warn("unreadable database, starting empty", "path", s.path, "err", err)
		return []model.Item{}, nil
	}
	return items, nil
}

func queryItems(db *sql.DB) ([]model.Item, error) {
	rows, err := db.Query(`SELECT description, date, time, status FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		var status string
		if err := rows.Scan(&it.Description, &it.Date, &it.Time, &status); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Status = model.Status(status)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Save replaces the stored collection with items in one transaction.
func (s *Store) Save(items []model.Item) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("exec pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO items (position, description, date, time, status) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, it := range items {
		if _, err := stmt.Exec(i, it.Description, it.Date, it.Time, string(it.Status)); err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("saved", "path", s.path, "items", len(items))
	return nil
}
