// Package output builds the termenv outputs used by the result renderer and
// the log handler.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the profile advertised by the terminal, or Ascii when
// NO_COLOR is set.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the 16-color profile used for linear output, which
// CI log viewers render reliably. NO_COLOR still selects Ascii.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates the output of the log handler, colored for the current terminal.
// A nil w writes to stderr.
func New(w io.Writer) *termenv.Output {
	return WithProfile(w, ColorProfile())
}

// WithProfile creates an output that renders with profile regardless of what w
// is connected to. A nil w writes to stderr.
func WithProfile(w io.Writer, profile termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true))
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
