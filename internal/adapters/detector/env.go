// Package detector inspects the environment to decide how output is colored.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/frob/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents how rendered output is styled.
type OutputMode int

const (
	// ModeAuto defers to DetectEnvironment.
	ModeAuto OutputMode = iota
	// ModeColor uses the full color range the terminal reports.
	ModeColor
	// ModeLinear uses basic ANSI colors, which CI log viewers understand.
	ModeLinear
	// ModePlain writes no escape sequences.
	ModePlain
)

// DetectEnvironment returns the recommended output mode.
// NO_COLOR wins, CI logs get ANSI colors, and anything that is not a terminal is plain.
func DetectEnvironment() OutputMode {
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModeLinear
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeColor
	}
	return ModePlain
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "color", "linear", "ci", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "color":
		return ModeColor
	case "linear", "ci":
		return ModeLinear
	case "plain":
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile returns the termenv profile for mode. NO_COLOR is honored in every mode.
func Profile(mode OutputMode) termenv.Profile {
	switch mode {
	case ModeColor:
		return output.ColorProfile()
	case ModeLinear:
		return output.ColorProfileANSI()
	default:
		return termenv.Ascii
	}
}
