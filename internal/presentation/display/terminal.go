package display

import (
	"fmt"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/util"
)

// TerminalDisplay owns the alternate screen buffer while watch mode runs.
// Frames are redrawn in place with a home-cursor reset instead of a full
// clear, so the terminal does not flicker on refresh.
type TerminalDisplay struct {
	inAlternateScreen bool
	isFirstFrame      bool
}

func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{isFirstFrame: true}
}

// EnterAlternateScreen switches to the alternate screen buffer and hides
// the cursor. Safe to call twice.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Print(util.AlternateScreen)
	fmt.Print(util.ClearScreen)
	fmt.Print(util.ClearScrollback)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.HideCursor)
	td.inAlternateScreen = true
	td.isFirstFrame = true
}

// ExitAlternateScreen restores the normal screen buffer and cursor.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.ShowCursor)
	fmt.Print(util.MainScreen)
	td.inAlternateScreen = false
}

// RenderFrame draws a full frame of lines. After the first frame the
// cursor is homed and each line cleared before rewriting, which keeps
// text selection usable during refreshes.
func (td *TerminalDisplay) RenderFrame(lines []string) {
	if td.isFirstFrame {
		fmt.Print(util.ClearScreen)
		td.isFirstFrame = false
	}
	fmt.Print(util.MoveCursorHome)

	var frame strings.Builder
	for _, line := range lines {
		frame.WriteString(util.ClearLine)
		frame.WriteString(line)
		frame.WriteString("\n")
	}
	frame.WriteString(util.ClearToEnd)
	fmt.Print(frame.String())
}

// RenderStatusBar pins a short hint line to the bottom of the screen.
func (td *TerminalDisplay) RenderStatusBar(message string) {
	fmt.Print(util.SaveCursor)
	fmt.Print(util.MoveCursor(999, 1))
	fmt.Print(util.ClearLine)
	fmt.Print(util.FormatMuted(message))
	fmt.Print(util.RestoreCursor)
}
