package overlay

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrSurfaceTooSmall is returned when the configured overlay region
// does not fit on the backend surface.
var ErrSurfaceTooSmall = errors.New("surface too small for overlay")

// Anchor selects the vertical placement of the overlay region.
type Anchor int

const (
	// AnchorBottom places the overlay at the bottom of the surface.
	AnchorBottom Anchor = iota

	// AnchorTop places the overlay at the top of the surface.
	AnchorTop
)

// ParseAnchor parses an anchor name. The empty string means bottom.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "bottom":
		return AnchorBottom, nil
	case "top":
		return AnchorTop, nil
	default:
		return AnchorBottom, fmt.Errorf("unknown anchor %q", s)
	}
}

// Overlay is a fixed-size region of the backend surface holding the
// keycast line. The text is centered horizontally on the region's
// middle row.
type Overlay struct {
	backend Backend
	width   int
	height  int
	anchor  Anchor
	style   Style
}

// New creates an overlay region on an initialized backend. It fails
// when the requested region does not fit the surface.
func New(backend Backend, width, height int, anchor Anchor, style Style) (*Overlay, error) {
	sw, sh := backend.Size()
	if width > sw || height > sh {
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrSurfaceTooSmall, width, height, sw, sh)
	}

	o := &Overlay{
		backend: backend,
		width:   width,
		height:  height,
		anchor:  anchor,
		style:   style,
	}
	o.fill()
	backend.Show()
	return o, nil
}

// Size returns the overlay dimensions.
func (o *Overlay) Size() (int, int) {
	return o.width, o.height
}

// Draw replaces the overlay content with text centered on the middle
// row. Text wider than the region is written from the left edge and
// truncated at the right.
func (o *Overlay) Draw(text string) {
	o.fill()

	ox, oy := o.origin()
	row := oy + o.height/2

	pad := (o.width - runewidth.StringWidth(text)) / 2
	if pad < 0 {
		pad = 0
	}

	x := ox + pad
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > ox+o.width {
			break
		}
		o.backend.SetContent(x, row, r, o.style)
		x += w
	}

	o.backend.Show()
}

// Clear blanks the overlay region.
func (o *Overlay) Clear() {
	o.fill()
	o.backend.Show()
}

// origin returns the top-left corner of the overlay region. The
// region spans the full anchored rows; horizontal placement is the
// left edge since width normally matches the surface.
func (o *Overlay) origin() (int, int) {
	_, sh := o.backend.Size()
	switch o.anchor {
	case AnchorTop:
		return 0, 0
	default:
		return 0, sh - o.height
	}
}

// fill paints the whole region with the background style.
func (o *Overlay) fill() {
	ox, oy := o.origin()
	for y := oy; y < oy+o.height; y++ {
		for x := ox; x < ox+o.width; x++ {
			o.backend.SetContent(x, y, ' ', o.style)
		}
	}
}
