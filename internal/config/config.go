// Package config loads optional workspace settings from .wflint.yaml at the
// workspace root. A missing file yields the defaults; command-line flags
// override whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the workspace settings file name.
const File = ".wflint.yaml"

// Config holds formatter and scan settings.
type Config struct {
	// Indent is the formatter indentation width in spaces.
	Indent int `yaml:"indent"`
	// Width is the maximum line width, -1 for unlimited.
	Width int `yaml:"width"`
	// Exclude lists extra ignore globs applied during workspace scans.
	Exclude []string `yaml:"exclude"`
}

// Default returns the built-in settings: two-space indent, unlimited width.
func Default() Config {
	return Config{Indent: 2, Width: -1}
}

// Load reads .wflint.yaml relative to root. A missing file is not an error.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, File)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if cfg.Indent <= 0 {
		cfg.Indent = 2
	}
	if cfg.Width == 0 {
		cfg.Width = -1
	}
	return cfg, nil
}
