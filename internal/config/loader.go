package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads an Override from a TOML file. A missing file is not
// an error: it yields an empty override.
func LoadFile(path string) (Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Override{}, nil
		}
		return Override{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var o Override
	if err := toml.Unmarshal(data, &o); err != nil {
		return Override{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return o, nil
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/keycast/keycast.toml or its home fallback.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "keycast", "keycast.toml")
}

// Load builds the effective configuration: defaults, then the config
// file, then environment overrides, then validation.
func Load(path string) (Config, error) {
	cfg := Default()

	fileOverride, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg = fileOverride.Apply(cfg)
	cfg = FromEnv().Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
