package overlay

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the overlay colors.
type Style struct {
	Foreground tcell.Color
	Background tcell.Color
}

// DefaultStyle uses the terminal's own colors.
func DefaultStyle() Style {
	return Style{
		Foreground: tcell.ColorDefault,
		Background: tcell.ColorDefault,
	}
}

// ParseStyle builds a Style from hex color strings like "#rrggbb".
// An empty string keeps the terminal default for that side.
func ParseStyle(foreground, background string) (Style, error) {
	style := DefaultStyle()

	if foreground != "" {
		c, err := parseColor(foreground)
		if err != nil {
			return Style{}, fmt.Errorf("foreground: %w", err)
		}
		style.Foreground = c
	}
	if background != "" {
		c, err := parseColor(background)
		if err != nil {
			return Style{}, fmt.Errorf("background: %w", err)
		}
		style.Background = c
	}

	return style, nil
}

func parseColor(s string) (tcell.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// tcellStyle converts to the tcell representation.
func (s Style) tcellStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Foreground).Background(s.Background)
}
