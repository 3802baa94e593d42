// Package symbol provides the mapping from canonical key names to the
// glyphs shown in the keycast overlay.
package symbol

import "strings"

// Table maps uppercase canonical key names to display glyphs.
// A missing entry is a normal, expected case: single printable
// characters never need one.
type Table map[string]string

// Default returns the built-in glyph table.
func Default() Table {
	return Table{
		"TAB":      "⇥",
		"CR":       "⏎",
		"ENTER":    "⏎",
		"RETURN":   "⏎",
		"ESC":      "Esc",
		"ESCAPE":   "Esc",
		"SPACE":    "␣",
		"BS":       "⌫",
		"DEL":      "⌦",
		"INS":      "Ins",
		"UP":       "↑",
		"DOWN":     "↓",
		"LEFT":     "←",
		"RIGHT":    "→",
		"HOME":     "Home",
		"END":      "End",
		"PAGEUP":   "PgUp",
		"PAGEDOWN": "PgDn",
		"F1":       "F1",
		"F2":       "F2",
		"F3":       "F3",
		"F4":       "F4",
		"F5":       "F5",
		"F6":       "F6",
		"F7":       "F7",
		"F8":       "F8",
		"F9":       "F9",
		"F10":      "F10",
		"F11":      "F11",
		"F12":      "F12",
		"LT":       "<",
		"CTRL":     "Ctrl",
		"ALT":      "Alt",
		"SHIFT":    "Shift",
		"META":     "Meta",
	}
}

// Lookup returns the glyph for a canonical key name.
// The name is uppercased before lookup, so callers may pass any case.
func (t Table) Lookup(name string) (string, bool) {
	glyph, ok := t[strings.ToUpper(name)]
	return glyph, ok
}

// Merge returns a copy of t with the entries of overrides applied on top.
// Override keys are uppercased; existing entries with the same key are
// replaced. The receiver is not modified.
func (t Table) Merge(overrides map[string]string) Table {
	merged := make(Table, len(t)+len(overrides))
	for name, glyph := range t {
		merged[name] = glyph
	}
	for name, glyph := range overrides {
		merged[strings.ToUpper(name)] = glyph
	}
	return merged
}

// Clone returns a copy of the table.
func (t Table) Clone() Table {
	return t.Merge(nil)
}
