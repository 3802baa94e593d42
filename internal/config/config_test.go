package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative width", func(c *Config) { c.Width = -3 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero compress_after", func(c *Config) { c.CompressAfter = 0 }},
		{"bad anchor", func(c *Config) { c.Anchor = "left" }},
		{"empty toggle", func(c *Config) { c.Toggle = "" }},
		{"bad foreground", func(c *Config) { c.Style.Foreground = "red-ish" }},
		{"bad background", func(c *Config) { c.Style.Background = "#zzz" }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestOverrideApply(t *testing.T) {
	width := 30
	toggle := "<F9>"
	fg := "#ff0000"

	o := Override{
		Width:   &width,
		Toggle:  &toggle,
		Style:   StyleOverride{Foreground: &fg},
		Symbols: map[string]string{"TAB": "Tab!"},
	}

	cfg := o.Apply(Default())

	if cfg.Width != 30 {
		t.Errorf("Width = %d, want 30", cfg.Width)
	}
	if cfg.Toggle != "<F9>" {
		t.Errorf("Toggle = %q, want %q", cfg.Toggle, "<F9>")
	}
	if cfg.Style.Foreground != "#ff0000" {
		t.Errorf("Style.Foreground = %q, want %q", cfg.Style.Foreground, "#ff0000")
	}
	if cfg.Symbols["TAB"] != "Tab!" {
		t.Errorf("Symbols[TAB] = %q, want %q", cfg.Symbols["TAB"], "Tab!")
	}

	// Unset fields keep their defaults.
	if cfg.Height != Default().Height {
		t.Errorf("Height = %d, want default %d", cfg.Height, Default().Height)
	}
	if cfg.CompressAfter != Default().CompressAfter {
		t.Errorf("CompressAfter = %d, want default %d", cfg.CompressAfter, Default().CompressAfter)
	}
}

// An explicit zero in an override is applied, not confused with
// "unspecified"; Validate is what rejects it.
func TestOverrideAppliesExplicitZero(t *testing.T) {
	zero := 0
	cfg := Override{Width: &zero}.Apply(Default())
	if cfg.Width != 0 {
		t.Errorf("Width = %d, want 0", cfg.Width)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for zero width")
	}
}

func TestOverrideSymbolMergeKeepsBase(t *testing.T) {
	base := Default()
	base.Symbols = map[string]string{"TAB": "t", "CR": "r"}

	cfg := Override{Symbols: map[string]string{"TAB": "T"}}.Apply(base)

	if cfg.Symbols["TAB"] != "T" {
		t.Errorf("Symbols[TAB] = %q, want %q", cfg.Symbols["TAB"], "T")
	}
	if cfg.Symbols["CR"] != "r" {
		t.Errorf("Symbols[CR] = %q, want %q", cfg.Symbols["CR"], "r")
	}
	if base.Symbols["TAB"] != "t" {
		t.Errorf("base Symbols[TAB] = %q after Apply, want untouched", base.Symbols["TAB"])
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keycast.toml")

	content := `
width = 42
compress_after = 5
toggle = "<F8>"

[style]
foreground = "#00ff00"

[symbols]
CR = "RET"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	o, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	cfg := o.Apply(Default())
	if cfg.Width != 42 {
		t.Errorf("Width = %d, want 42", cfg.Width)
	}
	if cfg.CompressAfter != 5 {
		t.Errorf("CompressAfter = %d, want 5", cfg.CompressAfter)
	}
	if cfg.Toggle != "<F8>" {
		t.Errorf("Toggle = %q, want %q", cfg.Toggle, "<F8>")
	}
	if cfg.Style.Foreground != "#00ff00" {
		t.Errorf("Style.Foreground = %q, want %q", cfg.Style.Foreground, "#00ff00")
	}
	if cfg.Symbols["CR"] != "RET" {
		t.Errorf("Symbols[CR] = %q, want %q", cfg.Symbols["CR"], "RET")
	}
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	o, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile(missing) error = %v, want nil", err)
	}
	cfg := o.Apply(Default())
	def := Default()
	if cfg.Width != def.Width || cfg.Toggle != def.Toggle || cfg.CompressAfter != def.CompressAfter {
		t.Errorf("missing file changed config: %+v", cfg)
	}
}

func TestLoadFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("width = ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile(bad toml) error = nil, want error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(envWidth, "25")
	t.Setenv(envToggle, "<F7>")
	t.Setenv(envLogLevel, "debug")

	cfg := FromEnv().Apply(Default())

	if cfg.Width != 25 {
		t.Errorf("Width = %d, want 25", cfg.Width)
	}
	if cfg.Toggle != "<F7>" {
		t.Errorf("Toggle = %q, want %q", cfg.Toggle, "<F7>")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestFromEnvIgnoresUnparsableInt(t *testing.T) {
	t.Setenv(envWidth, "wide")
	cfg := FromEnv().Apply(Default())
	if cfg.Width != Default().Width {
		t.Errorf("Width = %d, want default %d", cfg.Width, Default().Width)
	}
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycast.toml")
	if err := os.WriteFile(path, []byte("width = 0\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "width") {
		t.Errorf("Load() error = %v, want mention of width", err)
	}
}
