// Package linear provides a synchronous, line-oriented renderer for solver results.
package linear

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
	"go.trai.ch/frob/internal/ui/output"
	"go.trai.ch/frob/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. Results go to stdout; stage timings go
// to stderr and are printed only in verbose mode.
type Renderer struct {
	outW io.Writer
	errW io.Writer

	mu      sync.Mutex
	stdout  *termenv.Output
	stderr  *termenv.Output
	verbose bool
}

// NewRenderer creates a new Renderer. Nil writers select the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r := &Renderer{outW: stdout, errW: stderr}
	r.setProfile(output.ColorProfileANSI())
	return r
}

// SetProfile changes the color profile of both streams.
func (r *Renderer) SetProfile(profile termenv.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setProfile(profile)
}

func (r *Renderer) setProfile(profile termenv.Profile) {
	r.stdout = output.WithProfile(r.outW, profile)
	r.stderr = output.WithProfile(r.errW, profile)
}

// SetVerbose enables stage timings.
func (r *Renderer) SetVerbose(enable bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verbose = enable
}

// OnHeader prints the banner of the demo run.
func (r *Renderer) OnHeader(threads int, verbose bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.stdout, r.paint(r.stdout, "frob · Frobenius number solver", style.Iris).Bold().String())
	if verbose {
		r.println(r.stdout, r.paint(r.stdout, "verbose mode on", style.Slate).String())
	}
	r.println(r.stdout, r.paint(r.stdout, fmt.Sprintf("using %d %s", threads, plural(threads, "thread")), style.Slate).String())
}

// OnResult prints a solved coin set.
func (r *Renderer) OnResult(label string, coins domain.CoinSet, value *big.Int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("%s → %s %s", describe(label, coins), value, formatDuration(elapsed))
	r.println(r.stdout, r.icon(r.stdout, style.Check, style.Green)+" "+line)
}

// OnFailure prints a coin set that could not be solved.
func (r *Renderer) OnFailure(label string, coins domain.CoinSet, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := describe(label, coins) + " failed: " + err.Error()
	r.println(r.stdout, r.icon(r.stdout, style.Cross, style.Red)+" "+r.paint(r.stdout, line, style.Red).String())
}

// OnCheck prints one known case of the self-check.
func (r *Renderer) OnCheck(result domain.CheckResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coins := result.Case.Coins.String()
	if result.Passed() {
		line := fmt.Sprintf("%s = %d", coins, result.Case.Expected)
		r.println(r.stdout, r.icon(r.stdout, style.Check, style.Green)+" "+line)
		return
	}

	var line string
	if result.Err != nil {
		line = fmt.Sprintf("%s: %v (want %d)", coins, result.Err, result.Case.Expected)
	} else {
		line = fmt.Sprintf("%s = %s (want %d)", coins, result.Got, result.Case.Expected)
	}
	r.println(r.stdout, r.icon(r.stdout, style.Cross, style.Red)+" "+r.paint(r.stdout, line, style.Red).String())
}

// OnBenchmark prints both algorithm timings for one coin set.
func (r *Renderer) OnBenchmark(label string, report domain.BenchmarkReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.stdout, r.paint(r.stdout, describe(label, report.Coins), style.Iris).Bold().String())
	r.println(r.stdout, fmt.Sprintf("  round-robin  %-10s → %s", report.RoundRobin.Round(time.Microsecond), report.RoundRobinResult))

	if report.SieveErr != nil {
		r.println(r.stdout, r.paint(r.stdout, "  sieve        skipped: "+report.SieveErr.Error(), style.Yellow).String())
	} else {
		r.println(r.stdout, fmt.Sprintf("  sieve        %-10s → %s", report.Sieve.Round(time.Microsecond), report.SieveResult))
	}

	if ratio := report.Ratio(); ratio > 0 {
		r.println(r.stdout, fmt.Sprintf("  ratio        %.2fx", ratio))
	}
	if report.Compared && !report.Agree {
		r.println(r.stdout, "  "+r.icon(r.stdout, style.Cross, style.Red)+" "+r.paint(r.stdout, "results disagree", style.Red).String())
	}
}

// OnSpan prints the timing of a finished stage in verbose mode.
func (r *Renderer) OnSpan(name string, elapsed time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.verbose {
		return
	}

	line := fmt.Sprintf("%s %s %s", style.Tilde, name, formatDuration(elapsed))
	if err != nil {
		line += ": " + err.Error()
	}
	r.println(r.stderr, r.paint(r.stderr, line, style.Slate).Faint().String())
}

func (r *Renderer) paint(out *termenv.Output, s string, color lipgloss.Color) termenv.Style {
	return out.String(s).Foreground(out.Color(string(color)))
}

func (r *Renderer) icon(out *termenv.Output, icon string, color lipgloss.Color) string {
	return r.paint(out, icon, color).String()
}

func (r *Renderer) println(out *termenv.Output, line string) {
	_, _ = out.WriteString(line + "\n")
}

func describe(label string, coins domain.CoinSet) string {
	if label == "" {
		return coins.String()
	}
	return label + " " + coins.String()
}

func formatDuration(d time.Duration) string {
	return "(" + d.Round(time.Microsecond).String() + ")"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
