// Package translate converts key-notation tokens into the display
// symbols shown in the overlay.
package translate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dshills/keycast/internal/symbol"
)

// pointerNames identifies bracketed notation units that describe
// pointer-device events rather than keyboard keys. Matching is done
// against the notation name, not bare directions, so the arrow keys
// "<Left>" and "<Right>" are not caught.
var pointerNames = []string{"Mouse", "Scroll", "Drag", "Release"}

// ctrlCombo matches control-combo notation: "<C-x>" or "<C-S-x>" where
// x is a single character.
var ctrlCombo = regexp.MustCompile(`^<C-(S-)?(.)>$`)

// Translator maps notation tokens to display symbols.
type Translator struct {
	table symbol.Table
}

// New creates a Translator backed by the given symbol table.
func New(table symbol.Table) *Translator {
	return &Translator{table: table}
}

// Translate converts one token into its display symbol. The second
// return value is false when the token produces no symbol: pointer
// events are filtered out and unrecognized notation is dropped.
func (tr *Translator) Translate(token string) (string, bool) {
	if isPointerEvent(token) {
		return "", false
	}

	// Ordinary characters display as themselves.
	if runes := []rune(token); len(runes) == 1 {
		return token, true
	}

	// Named keys resolve through the symbol table.
	name := strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
	if glyph, ok := tr.table.Lookup(name); ok {
		return glyph, true
	}

	// Control combos: "<C-a>" shows as "Ctrl+a", "<C-S-a>" as "Ctrl+A".
	if m := ctrlCombo.FindStringSubmatch(token); m != nil {
		letter := []rune(m[2])[0]
		if m[1] != "" {
			letter = unicode.ToUpper(letter)
		} else {
			letter = unicode.ToLower(letter)
		}
		glyph, _ := tr.table.Lookup("CTRL")
		return glyph + "+" + string(letter), true
	}

	return "", false
}

// TranslateAll converts a sequence of tokens, dropping the ones that
// produce no symbol. The result preserves token order.
func (tr *Translator) TranslateAll(tokens []string) []string {
	var symbols []string
	for _, token := range tokens {
		if sym, ok := tr.Translate(token); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// isPointerEvent reports whether the token names a pointer-device
// event in Vim notation, e.g. "<LeftMouse>" or "<ScrollWheelUp>".
func isPointerEvent(token string) bool {
	if !strings.HasPrefix(token, "<") {
		return false
	}
	for _, name := range pointerNames {
		if strings.Contains(token, name) {
			return true
		}
	}
	return false
}
