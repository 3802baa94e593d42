// Package overlay draws the keycast line into a small fixed-size
// region of a terminal surface.
package overlay

import "github.com/dshills/keycast/internal/key"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// MouseButton identifies a pointer-device button or wheel direction.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
)

// Notation returns the Vim-style notation for the button, e.g.
// "<LeftMouse>". ButtonNone has no notation.
func (b MouseButton) Notation() string {
	switch b {
	case ButtonLeft:
		return "<LeftMouse>"
	case ButtonMiddle:
		return "<MiddleMouse>"
	case ButtonRight:
		return "<RightMouse>"
	case WheelUp:
		return "<ScrollWheelUp>"
	case WheelDown:
		return "<ScrollWheelDown>"
	default:
		return ""
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key key.Event

	// Mouse event fields
	Button MouseButton

	// Resize event fields
	Width, Height int
}

// Backend abstracts the terminal surface the overlay draws on. The
// production implementation is Terminal; tests use Null.
type Backend interface {
	// Init prepares the surface for drawing.
	Init() error

	// Fini releases the surface and restores the terminal.
	Fini()

	// Size returns the surface dimensions in columns and rows.
	Size() (width, height int)

	// SetContent places a rune at the given position.
	SetContent(x, y int, r rune, style Style)

	// Show flushes pending drawing to the surface.
	Show()

	// PollEvent waits for and returns the next terminal event.
	PollEvent() Event

	// PostEvent queues a synthetic event for PollEvent. Only key
	// events are supported.
	PostEvent(event Event)
}
