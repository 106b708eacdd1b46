package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func sample() []model.Item {
	return []model.Item{
		{Description: "Buy milk", Date: "2025-01-01", Time: "09:00:00", Status: model.StatusPending},
		{Description: "Pay rent, today", Date: "2025-01-05", Time: "12:00:00", Status: model.StatusPriority},
		{Description: "Laundry", Date: "2025-01-06", Time: "18:30:00", Status: model.StatusDone},
	}
}

func openTest(t *testing.T, dir string, f Format) *Store {
	t.Helper()
	s, err := Open(f, dir, nil)
	require.NoError(t, err)
	return s
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open("xml", t.TempDir(), nil)
	assert.Error(t, err)
}

func TestRoundTripEveryFormat(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			s := openTest(t, t.TempDir(), f)
			require.NoError(t, s.Save(sample()))

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, sample(), got)
		})
	}
}

func TestMissingFileEveryFormat(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			got, err := openTest(t, t.TempDir(), f).Load()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestFormatIndependence(t *testing.T) {
	dir := t.TempDir()
	jsonStore := openTest(t, dir, FormatJSON)
	csvStore := openTest(t, dir, FormatCSV)

	require.NoError(t, jsonStore.Save(sample()))
	require.NoError(t, csvStore.Save(sample()))

	fromJSON, err := jsonStore.Load()
	require.NoError(t, err)
	fromCSV, err := csvStore.Load()
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromCSV)
}

func TestCSVFallsBackToJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, openTest(t, dir, FormatJSON).Save(sample()))

	csvStore := openTest(t, dir, FormatCSV)
	got, err := csvStore.Load()
	require.NoError(t, err)
	assert.Equal(t, sample(), got, "csv selected without a csv file reads the json file")

	require.NoError(t, csvStore.Save(sample()[:1]))
	_, err = os.Stat(filepath.Join(dir, "data.csv"))
	require.NoError(t, err, "save writes the selected format")

	got, err = csvStore.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1, "once the csv file exists it wins")
}

func TestLoadNormalizesStatus(t *testing.T) {
	dir := t.TempDir()
	content := `[{"description":"a","date":"2025-01-01","time":"09:00:00","status":"done"},
{"description":"b","date":"2025-01-01","time":"09:00:00","status":"Someday"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(content), 0o644))

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	s, err := Open(FormatJSON, dir, logger)
	require.NoError(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.StatusDone, got[0].Status)
	assert.Equal(t, model.StatusPending, got[1].Status)
	assert.Contains(t, buf.String(), "Someday")
}

func TestSaveFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			s := openTest(t, filepath.Join(blocker, "sub"), f)
			assert.Error(t, s.Save(sample()))
		})
	}
}

func TestLoadRawKeepsStatus(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("description,status\nx,Someday\n"), 0o644))

	s := openTest(t, dir, FormatCSV)
	assert.Equal(t, filepath.Join(dir, "data.csv"), s.Source().Path())

	raw, err := s.LoadRaw()
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, model.Status("Someday"), raw[0].Status)
}
