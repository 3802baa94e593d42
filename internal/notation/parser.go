// Package notation splits raw key input into individual key-notation
// tokens. A token is either a single ordinary character or a bracketed
// unit like "<Tab>" or "<C-a>" in Vim notation.
package notation

// Split breaks a raw input chunk into notation tokens, in order.
//
// Hosts may coalesce fast sequential input into one chunk, so a single
// call can yield several tokens: "ab<CR>" splits into "a", "b", "<CR>".
// Brackets do not nest; the closing '>' belongs to its token.
//
// A '<' with no matching '>' before the end of input is dropped. Split
// never fails; an empty input yields a nil slice.
func Split(raw string) []string {
	var tokens []string
	var pending []rune
	inBracket := false

	for _, r := range raw {
		switch r {
		case '<':
			inBracket = true
		case '>':
			inBracket = false
		}
		pending = append(pending, r)

		if !inBracket {
			tokens = append(tokens, string(pending))
			pending = pending[:0]
		}
	}

	return tokens
}
