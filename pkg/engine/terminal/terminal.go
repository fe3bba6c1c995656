// Package terminal reports what the attached terminal can show.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback size used when output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// SizeOf returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func SizeOf(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal on stdout.
func GetWidth() int {
	width, _ := SizeOf(os.Stdout)
	return width
}

// IsTerminal reports whether w is an interactive terminal. Anything that is
// not an *os.File (buffers, HTTP bodies) never is.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a block of the given column count fits on one line
// of the terminal on stdout.
func Fits(columns int) bool {
	return columns <= GetWidth()
}
