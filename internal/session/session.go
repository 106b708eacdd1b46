// Package session holds the per-process view state: cursor, mode, filter
// and storage format. It is plain data owned by the view layer.
package session

import (
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// Mode is what the view is currently showing.
type Mode int

const (
	ModeList Mode = iota
	ModeAdd
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	}
	return "list"
}

// Session is the state carried between interactions.
// Pos indexes the visible (filtered) list.
type Session struct {
	Pos    int
	Mode   Mode
	Filter model.Filter
	Format store.Format
}

// New returns a session in list mode showing everything.
func New(format store.Format) *Session {
	return &Session{Mode: ModeList, Filter: model.FilterAll, Format: format}
}

// Clamp bounds Pos to [0, n-1], or 0 for an empty list.
func (s *Session) Clamp(n int) {
	if s.Pos > n-1 {
		s.Pos = n - 1
	}
	if s.Pos < 0 {
		s.Pos = 0
	}
}

// Up moves the cursor one row up if possible.
func (s *Session) Up() {
	if s.Pos > 0 {
		s.Pos--
	}
}

// Down moves the cursor one row down within a list of n rows.
func (s *Session) Down(n int) {
	if s.Pos < n-1 {
		s.Pos++
	}
}

// Current returns the entry under the cursor.
func (s *Session) Current(entries []model.Entry) (model.Entry, bool) {
	if s.Pos < 0 || s.Pos >= len(entries) {
		return model.Entry{}, false
	}
	return entries[s.Pos], true
}

// Focus moves the cursor onto the row showing collection position pos.
// It reports false, leaving the cursor alone, when pos is filtered out.
func (s *Session) Focus(entries []model.Entry, pos int) bool {
	for i, e := range entries {
		if e.Pos == pos {
			s.Pos = i
			return true
		}
	}
	return false
}

// StartAdd switches to add mode.
func (s *Session) StartAdd() { s.Mode = ModeAdd }

// StartEdit switches to edit mode when there is something to edit.
func (s *Session) StartEdit(n int) bool {
	if n == 0 {
		return false
	}
	s.Mode = ModeEdit
	return true
}

// Back returns to list mode.
func (s *Session) Back() { s.Mode = ModeList }

// CycleFilter advances to the next filter and resets the cursor.
func (s *Session) CycleFilter() {
	s.Filter = s.Filter.Next()
	s.Pos = 0
}

// CycleFormat advances to the next storage format and resets the cursor.
func (s *Session) CycleFormat() {
	next := store.Formats[0]
	for i, f := range store.Formats {
		if f == s.Format {
			next = store.Formats[(i+1)%len(store.Formats)]
			break
		}
	}
	s.Format = next
	s.Pos = 0
}
