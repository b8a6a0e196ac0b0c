package render

import (
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes for ANSI output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists every color mode.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// IsColorMode reports whether mode is one of ColorModes.
func IsColorMode(mode string) bool {
	return slices.Contains(ColorModes, mode)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectProfile picks the color profile for output written to f.
func DetectProfile(mode string, f *os.File) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if p := termenv.NewOutput(f).EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.TrueColor
	}

	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	// Check if we're being piped or redirected
	if !IsTerminal(f) {
		return termenv.Ascii
	}

	return termenv.NewOutput(f).ColorProfile()
}
