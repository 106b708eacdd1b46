// Package todo runs the reload-mutate-save cycle over the item collection.
//
// Every operation reads the full collection from the store. Mutations then
// write the full collection back; nothing is cached between calls.
package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
)

// Store is the load/save capability the manager needs.
type Store interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// PositionError indicates a position outside the collection.
type PositionError struct {
	Pos int // zero-based
	Len int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Len, e.Pos+1)
}

// Manager applies user actions to the stored collection.
type Manager struct {
	store  Store
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides time.Now for default dates and due-today checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = logging.OrNop(l) }
}

// New returns a Manager over store.
func New(store Store, opts ...Option) *Manager {
	m := &Manager{store: store, now: time.Now, logger: logging.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Now returns the manager's current time.
func (m *Manager) Now() time.Time { return m.now() }

// Items returns the full collection.
func (m *Manager) Items() ([]model.Item, error) {
	items, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return items, nil
}

// List returns the filtered view and the tally over the full collection.
func (m *Manager) List(f model.Filter) ([]model.Entry, model.Tally, error) {
	items, err := m.Items()
	if err != nil {
		return nil, model.Tally{}, err
	}
	return model.Select(items, f), model.Count(items), nil
}

// Stats returns the tally over the full collection.
func (m *Manager) Stats() (model.Tally, error) {
	items, err := m.Items()
	if err != nil {
		return model.Tally{}, err
	}
	return model.Count(items), nil
}

// Add appends it and returns its position. Empty date, time and status
// default to today, the current minute and Pending.
func (m *Manager) Add(it model.Item) (int, error) {
	it = m.withDefaults(it)
	if err := validate(it); err != nil {
		return 0, err
	}
	items, err := m.Items()
	if err != nil {
		return 0, err
	}
	items = append(items, it)
	if err := m.save(items); err != nil {
		return 0, err
	}
	m.logger.Info("added", "position", len(items), "status", it.Status)
	return len(items) - 1, nil
}

// Edit applies fn to the item at pos and saves the result.
func (m *Manager) Edit(pos int, fn func(*model.Item)) (model.Item, error) {
	items, err := m.Items()
	if err != nil {
		return model.Item{}, err
	}
	if err := checkPos(pos, items); err != nil {
		return model.Item{}, err
	}
	it := items[pos]
	fn(&it)
	it.Description = strings.TrimSpace(it.Description)
	if err := validate(it); err != nil {
		return model.Item{}, err
	}
	items[pos] = it
	if err := m.save(items); err != nil {
		return model.Item{}, err
	}
	m.logger.Info("edited", "position", pos+1)
	return it, nil
}

// Replace overwrites the item at pos.
func (m *Manager) Replace(pos int, it model.Item) (model.Item, error) {
	return m.Edit(pos, func(dst *model.Item) { *dst = it })
}

// Toggle flips the item at pos between done and not done.
func (m *Manager) Toggle(pos int) (model.Item, error) {
	return m.Edit(pos, func(it *model.Item) { it.Toggle() })
}

// Remove deletes the item at pos and returns it.
func (m *Manager) Remove(pos int) (model.Item, error) {
	items, err := m.Items()
	if err != nil {
		return model.Item{}, err
	}
	if err := checkPos(pos, items); err != nil {
		return model.Item{}, err
	}
	removed := items[pos]
	items = append(items[:pos], items[pos+1:]...)
	if err := m.save(items); err != nil {
		return model.Item{}, err
	}
	m.logger.Info("removed", "position", pos+1)
	return removed, nil
}

func (m *Manager) save(items []model.Item) error {
	if err := m.store.Save(items); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func (m *Manager) withDefaults(it model.Item) model.Item {
	now := m.now()
	it.Description = strings.TrimSpace(it.Description)
	if it.Date == "" {
		it.Date = model.DateOf(now)
	}
	if it.Time == "" {
		it.Time = model.TimeOf(now)
	}
	if it.Status == "" {
		it.Status = model.StatusPending
	}
	return it
}

func validate(it model.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if !it.Status.Valid() {
		return &model.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", it.Status)}
	}
	return nil
}

func checkPos(pos int, items []model.Item) error {
	if pos < 0 || pos >= len(items) {
		return &PositionError{Pos: pos, Len: len(items)}
	}
	return nil
}
