package display

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 79

// MinWidth is the floor applied to detected terminal widths.
const MinWidth = 50

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && isatty.IsTerminal(f.Fd())
}

// DetectWidth probes the terminal attached to f and returns a usable render
// width. Non-terminals and probe failures fall back to DefaultWidth. One
// column is subtracted from the detected width to avoid automatic line
// wrapping, and the result is clamped to MinWidth.
func DetectWidth(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	width--
	if width < MinWidth {
		width = MinWidth
	}
	return width
}
