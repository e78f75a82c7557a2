// Package style holds the colors and status icons shared by the result
// renderer and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Colors. Renderers downsample them to the active termenv profile.
const (
	// Iris marks set labels, headings and debug records.
	Iris = lipgloss.Color("#8B5CF6")
	// Slate is used for secondary text such as thread counts and stage timings.
	Slate = lipgloss.Color("#667085")
	// Green marks solved sets and passed checks.
	Green = lipgloss.Color("#22A06B")
	// Red marks failures.
	Red = lipgloss.Color("#D93025")
	// Yellow marks warnings and skipped sieve runs.
	Yellow = lipgloss.Color("#F59E0B")
)

// Line prefixes.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
)
