package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), FileName), nil)
}

func TestRoundTrip(t *testing.T) {
	t.Run("buy milk", func(t *testing.T) {
		s := newTestStore(t)
		items := []model.Item{
			{Description: "Buy milk", Date: "2025-01-01", Time: "09:00:00", Status: model.StatusPending},
		}

		require.NoError(t, s.Save(items))
		got, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("order and every status survive", func(t *testing.T) {
		s := newTestStore(t)
		items := []model.Item{
			{Description: "우유 사기", Date: "2025-01-01", Time: "09:00:00", Status: model.StatusPriority},
			{Description: "a, \"quoted\" <tag> & more", Date: "2025-02-01", Time: "10:30:00", Status: model.StatusDone},
			{Description: "plain", Date: "2025-03-01", Time: "23:59:59", Status: model.StatusPending},
		}

		require.NoError(t, s.Save(items))
		got, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})
}

func TestSaveFormat(t *testing.T) {
	s := newTestStore(t)
	items := []model.Item{
		{Description: "우유 <b>", Date: "2025-01-01", Time: "09:00:00", Status: model.StatusPending},
	}
	require.NoError(t, s.Save(items))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, "우유 <b>", "non-ASCII and HTML characters are written verbatim")
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"description\""), "two-space indentation")
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]model.Item{{Description: "a", Status: model.StatusPending}, {Description: "b", Status: model.StatusDone}}))
	require.NoError(t, s.Save([]model.Item{{Description: "c", Status: model.StatusPriority}}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Description)
}

func TestSaveEmptyWritesArray(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(nil))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(b)))
}

func TestLoadTolerance(t *testing.T) {
	write := func(t *testing.T, content string) *Store {
		s := newTestStore(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))
		return s
	}

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid syntax", content: `[{"description": "x",`},
		{name: "empty file", content: ""},
		{name: "object instead of array", content: `{"description": "x"}`},
		{name: "wrong field type", content: `[{"description": 42}]`},
		{name: "null", content: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := write(t, tt.content).Load()
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		got, err := newTestStore(t).Load()
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("leading BOM", func(t *testing.T) {
		s := write(t, "\ufeff"+`[{"description":"x","date":"2025-01-01","time":"09:00:00","status":"Done"}]`)
		got, err := s.Load()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.StatusDone, got[0].Status)
	})
}

func TestSaveCreatesDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "dir", FileName), nil)
	require.NoError(t, s.Save([]model.Item{{Description: "x", Status: model.StatusPending}}))
	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}
