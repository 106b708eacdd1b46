package sqlitestore

import (
	"os"
	"path/filepath"
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
	s := newTestStore(t)
	items := []model.Item{
		{Description: "Buy milk", Date: "2025-01-01", Time: "09:00:00", Status: model.StatusPending},
		{Description: "우유", Date: "2025-01-02", Time: "10:00:00", Status: model.StatusPriority},
		{Description: "done thing", Date: "2025-01-03", Time: "11:00:00", Status: model.StatusDone},
	}

	require.NoError(t, s.Save(items))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSaveReplaces(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]model.Item{{Description: "a"}, {Description: "b"}, {Description: "c"}}))
	require.NoError(t, s.Save([]model.Item{{Description: "z", Status: model.StatusDone}}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Item{{Description: "z", Status: model.StatusDone}}, got)
}

func TestLoadMissingDoesNotCreate(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestLoadGarbageFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("this is not a database"), 0o644))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
