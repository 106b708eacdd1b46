// Package store selects and composes the item collection backends.
//
// Every backend loads and saves the full collection; there is no
// incremental write path and no locking. Two processes writing the same
// file lose updates (last writer wins).
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/csvstore"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/store/sqlitestore"
)

// Format selects the on-disk representation.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatCSV, FormatSQLite}

// ParseFormat accepts a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, x := range Formats {
		if f == x {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown storage format %q (want json, csv or sqlite)", s)
}

// Backend is one on-disk representation of the collection.
type Backend interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
	Path() string
}

// Store loads from and saves to the backend chosen by format.
type Store struct {
	format   Format
	primary  Backend
	fallback Backend // read when primary's file does not exist
	logger   *log.Logger
}

// Open returns the Store for format with its files under dir.
// With CSV selected and no CSV file present, Load reads the JSON file.
func Open(format Format, dir string, logger *log.Logger) (*Store, error) {
	logger = logging.OrNop(logger)
	jsonBackend := jsonstore.New(filepath.Join(dir, jsonstore.FileName), logger)

	s := &Store{format: format, logger: logger}
	switch format {
	case FormatJSON:
		s.primary = jsonBackend
	case FormatCSV:
		s.primary = csvstore.New(filepath.Join(dir, csvstore.FileName), logger)
		s.fallback = jsonBackend
	case FormatSQLite:
		s.primary = sqlitestore.New(filepath.Join(dir, sqlitestore.FileName), logger)
	default:
		return nil, fmt.Errorf("unknown storage format %q", format)
	}
	return s, nil
}

// Format returns the active format.
func (s *Store) Format() Format { return s.format }

// Path returns the file that Save writes.
func (s *Store) Path() string { return s.primary.Path() }

// Source returns the backend Load reads from.
func (s *Store) Source() Backend {
	if s.fallback != nil {
		if _, err := os.Stat(s.primary.Path()); errors.Is(err, os.ErrNotExist) {
			return s.fallback
		}
	}
	return s.primary
}

// LoadRaw returns the collection exactly as stored, statuses unchecked.
func (s *Store) LoadRaw() ([]model.Item, error) {
	b := s.Source()
	if b != s.primary {
		s.logger.Debug("no data file, reading fallback", "missing", s.primary.Path(), "fallback", b.Path())
	}
	items, err := b.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.Path(), err)
	}
	return items, nil
}

// Load returns the full collection with every status normalized.
// Unrecognized statuses become Pending and are logged.
func (s *Store) Load() ([]model.Item, error) {
	items, err := s.LoadRaw()
	if err != nil {
		return nil, err
	}
	for _, c := range model.NormalizeStatuses(items) {
		s.logger.Warn("unknown status, treating as Pending", "position", c.Pos+1, "status", c.Raw)
	}
	return items, nil
}

// Save overwrites the active format's file with items.
func (s *Store) Save(items []model.Item) error {
	if err := s.primary.Save(items); err != nil {
		return fmt.Errorf("save %s: %w", s.primary.Path(), err)
	}
	return nil
}
