// Package config loads the optional vcqc.yaml run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls file discovery and output placement. Zero values fall back
// to the pipeline conventions via Defaults.
type Config struct {
	// Patterns are filename globs selecting candidate log files.
	Patterns []string `yaml:"patterns"`

	// Marker is the path-segment prefix holding the sample identifier.
	Marker string `yaml:"marker"`

	// OutputDir receives persisted data tables and the chart page.
	OutputDir string `yaml:"output_dir"`
}

// Defaults returns the pipeline-convention configuration.
func Defaults() Config {
	return Config{
		Patterns:  []string{"*.json"},
		Marker:    "Diag-",
		OutputDir: "vcqc-report",
	}
}

// Load reads path and merges it over Defaults. A missing file is not an
// error: the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if len(loaded.Patterns) > 0 {
		cfg.Patterns = loaded.Patterns
	}

	if loaded.Marker != "" {
		cfg.Marker = loaded.Marker
	}

	if loaded.OutputDir != "" {
		cfg.OutputDir = loaded.OutputDir
	}

	return cfg, nil
}
