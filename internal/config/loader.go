package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "config.toml"

// Loader finds and decodes the configuration file.
type Loader struct {
	OverridePath string // from the -config flag
}

func NewLoader(overridePath string) *Loader {
	return &Loader{OverridePath: overridePath}
}

// Load decodes the config file over the defaults. A missing file is not an
// error unless it was named explicitly.
func (l *Loader) Load() (*Config, error) {
	if l.OverridePath != "" {
		return Load(l.OverridePath)
	}
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	return Load(path)
}

// GetConfigPath returns the per-user config file, or "" if there is none.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		return l.OverridePath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "vectorboard", fileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func Load(path string) (*Config, error) {
	cfg := New()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "key", key.String(), "file", path)
	}
	if _, err := cfg.InitialTool(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if _, err := cfg.ExportFormat(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if _, err := cfg.ShapeStyle(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	slog.Debug("config loaded", "file", path)
	return cfg, nil
}
