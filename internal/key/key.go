// Package key models keyboard events delivered by the terminal host
// and formats them as the Vim-style notation chunks the caster
// pipeline consumes.
package key

import "fmt"

// Key identifies a keyboard key. Character keys use KeyRune with the
// character carried in Event.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for character keys.
	KeyRune
)

// notationNames maps special keys to their bracketed-notation names.
var notationNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyEnter:     "CR",
	KeyTab:       "Tab",
	KeyBackspace: "BS",
	KeyDelete:    "Del",
	KeyInsert:    "Ins",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyF1:       "F1",
	KeyF2:       "F2",
	KeyF3:       "F3",
	KeyF4:       "F4",
	KeyF5:       "F5",
	KeyF6:       "F6",
	KeyF7:       "F7",
	KeyF8:       "F8",
	KeyF9:       "F9",
	KeyF10:      "F10",
	KeyF11:      "F11",
	KeyF12:      "F12",
}

// String returns the notation name for special keys, or a generic
// form for anything else.
func (k Key) String() string {
	if name, ok := notationNames[k]; ok {
		return name
	}
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}
