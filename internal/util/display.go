package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorDim     = "\033[2m"
	ColorBold    = "\033[1m"

	// Terminal control sequences
	ClearScreen     = "\033[2J" // Clear entire screen
	ClearLine       = "\033[2K" // Clear entire line
	ClearScrollback = "\033[3J" // Clear scrollback buffer
	MoveCursorHome  = "\033[H"  // Move cursor to home position
	HideCursor      = "\033[?25l"
	ShowCursor      = "\033[?25h"
	SaveCursor      = "\033[s"
	RestoreCursor   = "\033[u"
	ClearToEnd      = "\033[J" // Clear from cursor to end of screen
	AlternateScreen = "\033[?1049h"
	MainScreen      = "\033[?1049l"
)

// GetDisplayWidth calculates the actual display width of a string, accounting for emojis
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text to fit the given display width, adding an ellipsis
func TruncateToWidth(text string, width int) string {
	if GetDisplayWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "…")
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorMagenta, title, ColorReset)
}

// FormatOverviewTitle formats overview/summary titles (Cyan + Bold)
func FormatOverviewTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// FormatDataTitle formats data section titles (Green + Bold)
func FormatDataTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorGreen, title, ColorReset)
}

// FormatMuted renders secondary text dimmed
func FormatMuted(text string) string {
	return fmt.Sprintf("%s%s%s", ColorDim, text, ColorReset)
}

// FormatSectionSeparator creates a visual separator line of the given width
func FormatSectionSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, strings.Repeat("─", width), ColorReset)
}

// MoveCursor returns ANSI sequence to move cursor to specific position
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// CenterText centers text within the given width
func CenterText(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return TruncateToWidth(text, width)
	}
	padding := (width - w) / 2
	return fmt.Sprintf("%s%s%s", strings.Repeat(" ", padding), text, strings.Repeat(" ", width-padding-w))
}
