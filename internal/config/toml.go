// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	App AppConfig `toml:"app"`
}

// AppConfig maps application-level settings.
type AppConfig struct {
	DataDir *string `toml:"data-dir"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ResolveDataDir applies precedence: explicit flag, config file, XDG default.
func ResolveDataDir(flagValue string, cfg FileConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.App.DataDir != nil && *cfg.App.DataDir != "" {
		return *cfg.App.DataDir
	}
	return DefaultDataDir()
}
