// Package config loads optional tool settings from a wristcheck.toml file
// discovered upward from the project directory. The file only carries output
// preferences; it never changes what the validators check.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"wristcheck/internal/finding"
)

// Filename is the settings file looked up from the project directory toward
// the filesystem root.
const Filename = "wristcheck.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
}

type OutputConfig struct {
	Format      string `toml:"format"`
	Color       string `toml:"color"`
	Quiet       bool   `toml:"quiet"`
	MaxFindings int    `toml:"max_findings"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format:      "pretty",
			Color:       "auto",
			Quiet:       false,
			MaxFindings: finding.DefaultMaxFindings,
		},
	}
}

// Find walks from startDir toward the root looking for a settings file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the settings file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("output", "format") {
		switch cfg.Output.Format {
		case "pretty", "json":
		default:
			return Config{}, fmt.Errorf("%s: [output].format must be pretty or json, got %q", path, cfg.Output.Format)
		}
	}
	if meta.IsDefined("output", "color") {
		switch cfg.Output.Color {
		case "auto", "on", "off":
		default:
			return Config{}, fmt.Errorf("%s: [output].color must be auto, on or off, got %q", path, cfg.Output.Color)
		}
	}
	if meta.IsDefined("output", "max_findings") && cfg.Output.MaxFindings <= 0 {
		return Config{}, fmt.Errorf("%s: [output].max_findings must be positive, got %d", path, cfg.Output.MaxFindings)
	}
	return cfg, nil
}

// Discover finds and loads the settings applying to startDir, falling back
// to defaults when no file exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
