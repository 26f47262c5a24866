// Package progress prints throttled progress updates during the trials loop.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Tracker reports trial progress to stderr. It implements sim.Observer and
// rate-limits its own output so a tight simulation loop cannot flood the
// terminal. Not safe for concurrent use; the simulation is single-threaded.
type Tracker struct {
	startTime time.Time
	limiter   *rate.Limiter
	quiet     bool
	output    io.Writer
}

// NewTracker creates a Tracker writing to stderr, printing at most a few
// updates per second.
func NewTracker(quiet bool) *Tracker {
	return &Tracker{
		startTime: time.Now(),
		limiter:   rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		quiet:     quiet,
		output:    os.Stderr,
	}
}

// SetOutput redirects progress output (used in tests).
func (t *Tracker) SetOutput(w io.Writer) {
	t.output = w
}

// TrialSampled prints a progress line for the given trial. The final trial
// is always printed; intermediate trials only when the limiter allows.
func (t *Tracker) TrialSampled(trial, total int) {
	if t.quiet {
		return
	}
	if trial != total && !t.limiter.Allow() {
		return
	}
	elapsed := time.Since(t.startTime)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	fmt.Fprintf(t.output, "\033[K[%02d:%02d] trial %d/%d (%.1f%%)\r",
		mins, secs, trial, total, float64(trial)/float64(total)*100)
}

// Finish clears any pending progress line.
func (t *Tracker) Finish() {
	if t.quiet {
		return
	}
	fmt.Fprintf(t.output, "\033[K")
}

// Printf prints a message line, clearing any pending progress line first.
func (t *Tracker) Printf(format string, args ...interface{}) {
	if t.quiet {
		return
	}
	fmt.Fprintf(t.output, "\033[K"+format+"\n", args...)
}
