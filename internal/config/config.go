// Package config loads the optional .lintreport.yaml settings file and
// applies defaults. Flags override file values; the file overrides the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for settings the file may omit.
const (
	DefaultFormat   = "html"
	DefaultTheme    = "default"
	DefaultReporter = "json"
)

// DefaultFileName is searched in the working directory first, then under
// the user config directory in a lintreport/ subdirectory.
const DefaultFileName = ".lintreport.yaml"

// Config holds the file-configurable settings.
type Config struct {
	Title     string   `yaml:"title"`
	CSSFile   string   `yaml:"css_file"`
	Format    string   `yaml:"format"`
	Theme     string   `yaml:"theme"`
	Reporter  string   `yaml:"reporter"`
	NoColor   bool     `yaml:"no_color"`
	FailUnder *float64 `yaml:"fail_under"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:   DefaultFormat,
		Theme:    DefaultTheme,
		Reporter: DefaultReporter,
	}
}

// Load reads settings from path, or from the discovered config file when
// path is empty. A missing discovered file yields the defaults; a missing
// explicit path is an error, as is malformed YAML from either source.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findPath()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.Reporter == "" {
		cfg.Reporter = DefaultReporter
	}
	return cfg, nil
}

// findPath locates the config file: working directory first, then the
// user config directory.
func findPath() string {
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	candidate := filepath.Join(configHome, "lintreport", DefaultFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
