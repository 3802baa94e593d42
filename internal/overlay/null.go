package overlay

import "strings"

// Null is an in-memory Backend for testing. It records drawn cells
// and replays posted events.
type Null struct {
	width  int
	height int
	cells  [][]rune
	events chan Event

	// InitErr, when set, is returned by Init to simulate a surface
	// that cannot be created.
	InitErr error
}

// NewNull creates a null backend with a fixed surface size.
func NewNull(width, height int) *Null {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = blankRow(width)
	}
	return &Null{
		width:  width,
		height: height,
		cells:  cells,
		events: make(chan Event, 100),
	}
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for x := range row {
		row[x] = ' '
	}
	return row
}

func (n *Null) Init() error {
	return n.InitErr
}

func (n *Null) Fini() {}

func (n *Null) Size() (int, int) {
	return n.width, n.height
}

func (n *Null) SetContent(x, y int, r rune, _ Style) {
	if y < 0 || y >= n.height || x < 0 || x >= n.width {
		return
	}
	n.cells[y][x] = r
}

func (n *Null) Show() {}

func (n *Null) PollEvent() Event {
	return <-n.events
}

// PostEvent queues an event for PollEvent. Events are dropped if the
// queue is full, keeping tests non-blocking.
func (n *Null) PostEvent(event Event) {
	select {
	case n.events <- event:
	default:
	}
}

// Line returns the contents of a row with trailing spaces trimmed.
func (n *Null) Line(y int) string {
	if y < 0 || y >= n.height {
		return ""
	}
	return strings.TrimRight(string(n.cells[y]), " ")
}
