// Package csvstore keeps the item collection in a header-driven CSV file.
package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
)

// FileName is the data file name inside the data directory.
const FileName = "data.csv"

// Header is the fixed column order written on save.
var Header = []string{"description", "date", "time", "status"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Store reads and writes the whole collection as CSV.
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

// Load returns the stored items. A missing file, an empty file, a header
// with no rows, or malformed CSV all yield an empty collection.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	items, err := Decode(bytes.NewReader(b))
	if err != nil {
		s.logger.Warn("unreadable data file, starting empty", "path", s.path, "err", err)
		return []model.Item{}, nil
	}
	return items, nil
}

// Save overwrites the file with a header row and one row per item.
func (s *Store) Save(items []model.Item) error {
	var buf bytes.Buffer
	if err := Encode(&buf, items); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.logger.Debug("saved", "path", s.path, "items", len(items))
	return nil
}

// Decode reads CSV whose first row names the columns. Columns are matched
// by name; unknown columns are ignored and absent ones read as "".
func Decode(r io.Reader) ([]model.Item, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(b, utf8BOM)))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := col[name]; !dup {
			col[name] = i
		}
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	items := []model.Item{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv record: %w", err)
		}
		items = append(items, model.Item{
			Description: field(rec, "description"),
			Date:        field(rec, "date"),
			Time:        field(rec, "time"),
			Status:      model.Status(field(rec, "status")),
		})
	}
	return items, nil
}

// Encode writes the header and items with standard quoting. Rows end in
// "\n"; the writer's CRLF mode would drop a lone "\r" inside a field.
func Encode(w io.Writer, items []model.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, it := range items {
		if err := cw.Write([]string{it.Description, it.Date, it.Time, string(it.Status)}); err != nil {
			return fmt.Errorf("csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return nil
}
