// Package display maintains the ordered history of display symbols and
// renders it as a single fixed-width line.
package display

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// margin is the number of display columns reserved at the edges of the
// rendered line.
const margin = 2

// token is one rendered unit of the output line. count records how many
// queue elements the token stands for, so eviction never has to parse
// the rendered text back apart.
type token struct {
	text  string
	count int
}

// Queue is an append-only history of display symbols rendered into a
// width-budgeted line. Consecutive repeats at or above the compress
// threshold collapse into a single "sym..xN" token; when the line
// overflows the budget, the oldest entries are evicted permanently.
//
// Queue is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
type Queue struct {
	width         int
	compressAfter int
	symbols       []string
}

// New creates an empty queue with the given display width budget and
// compression threshold. Both must be at least 1.
func New(width, compressAfter int) *Queue {
	return &Queue{
		width:         width,
		compressAfter: compressAfter,
	}
}

// Append adds symbols to the end of the queue in order. Compression is
// deferred to render time, so repeats are stored as-is.
func (q *Queue) Append(symbols ...string) {
	q.symbols = append(q.symbols, symbols...)
}

// Len returns the number of symbols currently held.
func (q *Queue) Len() int {
	return len(q.symbols)
}

// Reset discards all buffered symbols.
func (q *Queue) Reset() {
	q.symbols = nil
}

// Render produces the current line of text. The result's display width
// never exceeds width−2; older entries are evicted from the front of
// the queue, a whole run at a time, until the line fits. Eviction is a
// real mutation: evicted entries cannot reappear. With no intervening
// Append, Render is idempotent.
func (q *Queue) Render() string {
	tokens := q.tokenize()

	text := joinTokens(tokens)
	for runewidth.StringWidth(text) > q.width-margin && len(tokens) > 0 {
		q.symbols = q.symbols[tokens[0].count:]
		tokens = tokens[1:]
		text = joinTokens(tokens)
	}

	return text
}

// tokenize groups the queue into maximal runs of equal symbols and
// renders each run: compressed when the run length reaches the
// threshold, literal repeats otherwise.
func (q *Queue) tokenize() []token {
	var tokens []token

	for i := 0; i < len(q.symbols); {
		j := i
		for j < len(q.symbols) && q.symbols[j] == q.symbols[i] {
			j++
		}
		n := j - i
		if n >= q.compressAfter {
			tokens = append(tokens, token{
				text:  q.symbols[i] + "..x" + strconv.Itoa(n),
				count: n,
			})
		} else {
			for k := 0; k < n; k++ {
				tokens = append(tokens, token{text: q.symbols[i], count: 1})
			}
		}
		i = j
	}

	return tokens
}

func joinTokens(tokens []token) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}
