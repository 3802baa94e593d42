package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press delivered by the host.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Notation returns the Vim-style notation chunk for the event.
//
// Plain characters are themselves ("a", "A", "!"), with "<Space>" and
// "<lt>" for the two characters notation reserves. Special keys use
// their bracketed names ("<Tab>", "<CR>", "<Left>"), and modified keys
// carry a modifier prefix ("<C-a>", "<C-S-p>", "<A-Left>").
func (e Event) Notation() string {
	if e.IsRune() && !e.Modifiers.Has(ModCtrl|ModAlt|ModMeta) {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		default:
			return string(e.Rune)
		}
	}

	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "D")
	}
	if e.Modifiers.HasShift() {
		parts = append(parts, "S")
	}

	switch {
	case e.Key == KeyRune:
		parts = append(parts, string(unicode.ToLower(e.Rune)))
	case e.IsSpecial():
		parts = append(parts, e.Key.String())
	default:
		return ""
	}

	return "<" + strings.Join(parts, "-") + ">"
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}
