// Package search - progress reporting sinks.
//
// Reporting is a side effect only: a Reporter observes Snapshot values at a
// caller-chosen interval and once more at termination, and must never feed
// anything back into the search. Engines tolerate a nil Reporter.
package search

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"
)

// Snapshot is one observation of a running (or just-finished) search.
type Snapshot struct {
	// Algorithm is the engine's display name, e.g. "TABU SEARCH".
	Algorithm string

	// Step is the number of steps completed so far.
	Step int

	// Temperature is the current temperature, or NaN for engines that do
	// not own one (tabu search).
	Temperature float64

	// BestLabel names the tracked quantity: "ENERGY", "OBJECTIVE" or
	// "SCORE".
	BestLabel string

	// Best is the best value seen so far (energy, objective or score).
	Best any

	// BestState is the best state's display representation.
	BestState string

	// Final marks the snapshot emitted at termination; Reason is only
	// meaningful when Final is true.
	Final  bool
	Reason TerminationReason
}

// Reporter consumes progress snapshots. Implementations must not block for
// long and must not mutate anything the engine owns.
type Reporter interface {
	Report(Snapshot)
}

// Every reports whether a step falls on the reporting interval.
// A non-positive interval disables periodic reporting.
func Every(step, interval int) bool {
	return interval > 0 && step%interval == 0
}

// WriterReporter prints the upstream multi-line snapshot block to an
// io.Writer, e.g.:
//
//	TABU SEARCH:
//	CURRENT STEPS: 300
//	BEST SCORE: 5
//	BEST STATE: clout
type WriterReporter struct {
	W io.Writer
}

// NewWriterReporter wraps w in a WriterReporter.
func NewWriterReporter(w io.Writer) *WriterReporter { return &WriterReporter{W: w} }

// Report writes the snapshot block; on Final it appends the termination
// notice. Write errors are ignored: reporting never fails a run.
func (r *WriterReporter) Report(s Snapshot) {
	if r == nil || r.W == nil {
		return
	}
	fmt.Fprintf(r.W, "%s: \n", s.Algorithm)
	fmt.Fprintf(r.W, "CURRENT STEPS: %d \n", s.Step)
	if !math.IsNaN(s.Temperature) {
		fmt.Fprintf(r.W, "CURRENT TEMPERATURE: %v \n", s.Temperature)
	}
	fmt.Fprintf(r.W, "BEST %s: %v \n", s.BestLabel, s.Best)
	fmt.Fprintf(r.W, "BEST STATE: %s \n\n", s.BestState)
	if s.Final {
		fmt.Fprintf(r.W, "TERMINATING - %s\n", s.Reason)
	}
}

// LogReporter emits snapshots as structured zerolog events, one event per
// snapshot. Periodic snapshots log at debug, the final one at info.
type LogReporter struct {
	log zerolog.Logger
}

// NewLogReporter builds a LogReporter on top of an existing logger.
func NewLogReporter(log zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs one event carrying the snapshot fields.
func (r *LogReporter) Report(s Snapshot) {
	if r == nil {
		return
	}
	ev := r.log.Debug()
	if s.Final {
		ev = r.log.Info().Stringer("reason", s.Reason)
	}
	ev = ev.
		Str("algorithm", s.Algorithm).
		Int("step", s.Step).
		Interface("best", s.Best).
		Str("best_state", s.BestState)
	if !math.IsNaN(s.Temperature) {
		ev = ev.Float64("temperature", s.Temperature)
	}
	ev.Msg("search progress")
}
