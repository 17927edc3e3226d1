package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "pl"

type Config struct {
	ProjectDirs   []string `toml:"project_dirs"`
	EditorCommand string   `toml:"editor_command"`
	LogLevel      string   `toml:"log_level,omitempty"`
	LogFile       string   `toml:"log_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		ProjectDirs:   []string{"~/Projects"},
		EditorCommand: "nvim",
		LogLevel:      "warn",
	}
}

// DefaultPath returns <user config dir>/pl/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config directory not found: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load reads the config at configPath, or at DefaultPath when configPath is
// empty. A missing file yields the defaults. Keys absent from the file keep
// their default values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config at %s: %w", configPath, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", configPath, err)
	}

	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "path", configPath, "key", key.String())
	}

	return cfg, nil
}

// LogPath returns the configured log file, falling back to
// <user cache dir>/pl/pl.log. It returns "" when no cache dir is known.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, appName+".log")
}
