package layout

import (
	"os"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/util"
	"golang.org/x/term"
)

// Grid geometry bounds. The timeline needs room for the hour gutter plus
// a usable card column; anything wider than maxGridWidth wastes space on
// large monitors.
const (
	minGridWidth = 40
	maxGridWidth = 100

	hourGutterWidth = 7 // "HH:00 │"
)

// Sizer resolves the grid geometry for the current terminal.
type Sizer struct {
	// FixedWidth overrides terminal detection when non-zero. Tests and
	// non-tty output (pipes) use it.
	FixedWidth int
}

// GridWidth returns the total width of the rendered timeline, derived
// from the terminal size and clamped to the grid bounds.
func (s Sizer) GridWidth() int {
	width := s.FixedWidth
	if width == 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = maxGridWidth
		} else {
			width = termWidth - 2
		}
	}

	if width < minGridWidth {
		width = minGridWidth
	}
	if width > maxGridWidth {
		width = maxGridWidth
	}

	util.LogDebugf("timeline grid width %d", width)
	return width
}

// CardWidth returns the width available to event cards, after the hour
// gutter is carved off.
func (s Sizer) CardWidth() int {
	return s.GridWidth() - hourGutterWidth
}

// Pad pads text to a display width, left or right aligned, and truncates
// it when it would overflow.
func (s Sizer) Pad(text string, width int, leftAlign bool) string {
	text = util.TruncateToWidth(text, width)
	gap := width - util.GetDisplayWidth(text)
	if gap <= 0 {
		return text
	}
	padding := strings.Repeat(" ", gap)
	if leftAlign {
		return text + padding
	}
	return padding + text
}
