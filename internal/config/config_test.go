package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/store"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, store.FormatJSON, cfg.StoreFormat())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, YAMLFileName), []byte("format: csv\ntheme: neon\n"), 0o644))

	cfg, err := Load(dir, "", env(nil))
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, DefaultDir, cfg.Dir, "partial files keep defaults")
	assert.Equal(t, filepath.Join(dir, YAMLFileName), cfg.Source)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("format = \"sqlite\"\nlog_level = \"debug\"\n"), 0o644))

	cfg, err := Load(dir, "", env(nil))
	require.NoError(t, err)
	assert.Equal(t, store.FormatSQLite, cfg.StoreFormat())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestYAMLWinsOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, YAMLFileName), []byte("format: csv\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("format = \"sqlite\"\n"), 0o644))

	cfg, err := Load(dir, "", env(nil))
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
}

func TestExplicitPath(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir, filepath.Join(dir, "missing.yaml"), env(nil))
	assert.Error(t, err)

	p := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(p, []byte("dir = \"/tmp/todos\"\n"), 0o644))
	cfg, err := Load(dir, p, env(nil))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/todos", cfg.DataDir(dir))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, YAMLFileName), []byte("format: csv\n"), 0o644))

	cfg, err := Load(dir, "", env(map[string]string{EnvFormat: "json", EnvDir: "data", EnvTheme: "mono"}))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir(dir))
}

func TestInvalidValues(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir, "", env(map[string]string{EnvFormat: "xml"}))
	require.NoError(t, err, "validation is left to the caller")
	assert.Error(t, cfg.Validate())

	cfg.Format = "csv"
	assert.NoError(t, cfg.Validate())

	require.NoError(t, os.WriteFile(filepath.Join(dir, YAMLFileName), []byte("format: [oops\n"), 0o644))
	_, err = Load(dir, "", env(nil))
	assert.Error(t, err)
}
