// Package config holds the keycast configuration: explicit defaults,
// an override merge, and TOML/environment loaders.
package config

import (
	"errors"
	"fmt"

	"github.com/dshills/keycast/internal/overlay"
)

// Config is the full keycast configuration. It is set once at startup
// and read-only for the rest of the session.
type Config struct {
	// Width is the overlay width in display columns.
	Width int `toml:"width"`

	// Height is the overlay height in rows.
	Height int `toml:"height"`

	// CompressAfter is the run length at which consecutive repeats
	// collapse into a single "sym..xN" token.
	CompressAfter int `toml:"compress_after"`

	// Anchor places the overlay: "bottom" (default) or "top".
	Anchor string `toml:"anchor"`

	// Toggle is the key that flips the overlay on and off, in Vim
	// notation.
	Toggle string `toml:"toggle"`

	// Symbols extends or overrides the built-in glyph table. Keys are
	// canonical key names, values the glyphs to display.
	Symbols map[string]string `toml:"symbols"`

	// Style holds the overlay colors.
	Style StyleConfig `toml:"style"`

	// Log configures diagnostic logging.
	Log LogConfig `toml:"log"`

	// Script is the path of an optional Lua customization script.
	Script string `toml:"script"`
}

// StyleConfig holds hex color strings for the overlay.
type StyleConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// File is the log destination; empty discards log output, since
	// stderr belongs to the terminal surface.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:         60,
		Height:        1,
		CompressAfter: 3,
		Anchor:        "bottom",
		Toggle:        "<F10>",
		Log:           LogConfig{Level: "info"},
	}
}

// Validate rejects configurations that would misbehave at runtime,
// in particular width or threshold values that could make the
// compressor loop.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("height must be at least 1, got %d", c.Height)
	}
	if c.CompressAfter < 1 {
		return fmt.Errorf("compress_after must be at least 1, got %d", c.CompressAfter)
	}
	if _, err := overlay.ParseAnchor(c.Anchor); err != nil {
		return fmt.Errorf("anchor: %w", err)
	}
	if c.Toggle == "" {
		return errors.New("toggle key must not be empty")
	}
	if _, err := overlay.ParseStyle(c.Style.Foreground, c.Style.Background); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	return nil
}
