package diagfmt

import (
	"os"

	"golang.org/x/term"
)

// Opts configures pretty-printing of diagnostics.
type Opts struct {
	Color           bool
	ShowNotes       bool
	ShowSuggestions bool
	// MaxWidth truncates rendered source lines; 0 means no limit.
	MaxWidth int
}

// DefaultOpts shows everything, colored when w is a terminal.
func DefaultOpts(f *os.File) Opts {
	return Opts{
		Color:           term.IsTerminal(int(f.Fd())),
		ShowNotes:       true,
		ShowSuggestions: true,
		MaxWidth:        DetectWidth(f),
	}
}

// DetectWidth returns the terminal width of f, or 0 when f is not a
// terminal.
func DetectWidth(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
