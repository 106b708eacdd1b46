// Package config resolves settings from defaults, an optional config file,
// and the environment. Command-line flags are applied last by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/store"
)

// Config file names looked up in the working directory, in order.
const (
	YAMLFileName = ".tada.yaml"
	TOMLFileName = ".tada.toml"
)

// Default configuration values.
const (
	DefaultFormat    = "json"
	DefaultDir       = "."
	DefaultTheme     = "classic"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Environment variables that override the config file.
const (
	EnvFormat   = "TADA_FORMAT"
	EnvDir      = "TADA_DIR"
	EnvTheme    = "TADA_THEME"
	EnvLogLevel = "TADA_LOG_LEVEL"
)

// Config is the user configuration. The file is user-managed and never
// written by tada.
type Config struct {
	// Format is the storage format: json, csv or sqlite.
	Format string `yaml:"format" toml:"format"`

	// Dir is the directory holding the data files.
	Dir string `yaml:"dir" toml:"dir"`

	// Theme is the color theme: classic, neon or mono.
	Theme string `yaml:"theme" toml:"theme"`

	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFormat string `yaml:"log_format" toml:"log_format"`

	// Source is the file the config was read from, "" for none.
	Source string `yaml:"-" toml:"-"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format:    DefaultFormat,
		Dir:       DefaultDir,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads the config file and applies environment overrides. Values
// are not validated; callers apply flags first, then call Validate.
// With explicit empty, .tada.yaml then .tada.toml in workDir are tried and
// their absence is not an error. An explicit path must exist.
func Load(workDir, explicit string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		for _, name := range []string{YAMLFileName, TOMLFileName} {
			p := filepath.Join(workDir, name)
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if getenv != nil {
		cfg.ApplyEnv(getenv)
	}
	return cfg, nil
}

// readFile merges the file at path into c. The format follows the
// extension; anything but .toml is parsed as YAML.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	c.Source = path
	return nil
}

// ApplyEnv overrides fields from non-empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Format, EnvFormat)
	set(&c.Dir, EnvDir)
	set(&c.Theme, EnvTheme)
	set(&c.LogLevel, EnvLogLevel)
}

// Validate checks the values that must be recognized.
func (c *Config) Validate() error {
	if _, err := store.ParseFormat(c.Format); err != nil {
		return err
	}
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	return nil
}

// StoreFormat returns the parsed storage format.
func (c *Config) StoreFormat() store.Format {
	f, err := store.ParseFormat(c.Format)
	if err != nil {
		return store.FormatJSON
	}
	return f
}

// DataDir resolves Dir against workDir.
func (c *Config) DataDir(workDir string) string {
	if filepath.IsAbs(c.Dir) {
		return filepath.Clean(c.Dir)
	}
	return filepath.Join(workDir, c.Dir)
}
