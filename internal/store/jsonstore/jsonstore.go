package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user tool.

// FileName is the data file name inside the data directory.
const FileName = "data.json"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Store reads and writes the whole collection as one JSON array.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a Store for the file at path.
func New(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logging.OrNop(logger)}
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Load returns the stored items. A missing file or content that is not a
// JSON array of items yields an empty collection.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	items, err := Decode(b)
	if err != nil {
		s.logger.Warn("unreadable data file, starting empty", "path", s.path, "err", err)
		return []model.Item{}, nil
	}
	return items, nil
}

// Save overwrites the file with items.
func (s *Store) Save(items []model.Item) error {
	b, err := Encode(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.logger.Debug("saved", "path", s.path, "items", len(items))
	return nil
}

// Decode parses a JSON array of items. A leading BOM is ignored and a
// literal null decodes to an empty collection.
func Decode(b []byte) ([]model.Item, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Encode renders items as an indented JSON array. Non-ASCII text and
// HTML-significant characters are written as-is.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return buf.Bytes(), nil
}
