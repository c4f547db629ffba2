// Package tabu - options, policies and sentinel errors.
//
// Errors (sentinel):
//
//	– ErrNonPositiveTabuSize  if TabuSize < 1.
//	– ErrNonPositiveNeighbors if NNeighbors < 1.
//	– ErrNonPositiveMaxSteps  if MaxSteps <= 0.
//	– ErrUnknownPolicy        if Policy is not one of the two constants.
//	– ErrNilScore             if the score func is nil.
//	– ErrNilNeighbor          if the neighbor func is nil.
//
// All validation happens in New, before any search step executes. Run can
// additionally fail only while opening the optional run log file.
package tabu

import (
	"cmp"
	"errors"

	"github.com/greenlsi/solidgo/search"
)

// Sentinel errors returned by New.
var (
	// ErrNonPositiveTabuSize indicates TabuSize < 1.
	ErrNonPositiveTabuSize = errors.New("tabu: tabu size must be a positive integer")

	// ErrNonPositiveNeighbors indicates NNeighbors < 1.
	ErrNonPositiveNeighbors = errors.New("tabu: neighborhood size must be a positive integer")

	// ErrNonPositiveMaxSteps indicates MaxSteps <= 0.
	ErrNonPositiveMaxSteps = errors.New("tabu: max steps must be a positive integer")

	// ErrUnknownPolicy indicates an unrecognized selection policy.
	ErrUnknownPolicy = errors.New("tabu: policy must be filter-then-score or score-then-backtrack")

	// ErrNilScore indicates a nil score function.
	ErrNilScore = errors.New("tabu: score function is nil")

	// ErrNilNeighbor indicates a nil neighbor function.
	ErrNilNeighbor = errors.New("tabu: neighbor function is nil")
)

// ScoreFunc evaluates a state into any ordered fitness value; the engine
// only compares scores, never does arithmetic on them.
type ScoreFunc[S any, F cmp.Ordered] func(state S) F

// Policy selects how a round turns a generated neighborhood into a winner.
type Policy int

const (
	// FilterThenScore removes tabu candidates before scoring and picks the
	// best of the remainder.
	FilterThenScore Policy = iota

	// ScoreThenBacktrack scores the whole batch first and walks it
	// best-first, admitting a tabu candidate only under the aspiration rule
	// (its score beats the best known).
	ScoreThenBacktrack
)

// Options configures a tabu search.
//
// TabuSize    – capacity of the FIFO visited-state history; must be >= 1.
// NNeighbors  – candidates generated per round; must be >= 1.
// MaxSteps    – round budget; must be > 0.
// Policy      – FilterThenScore or ScoreThenBacktrack.
// Parallel    – when true, candidate scoring goes through package parallel;
//
//	neighbor generation always stays on the search goroutine.
//
// Workers     – cap on concurrent scoring goroutines; <= 0 means one
//
//	goroutine per candidate.
//
// Seed        – RNG seed; 0 selects the fixed default stream.
// ReportEvery – snapshot interval in rounds; <=0 disables periodic
//
//	reporting (the final snapshot is still emitted).
//
// Reporter    – progress sink; nil disables reporting entirely.
// LogPath     – optional progress file, truncated at the start of each Run
//
//	and appended one fixed-width line per round; "" disables it.
type Options struct {
	TabuSize    int
	NNeighbors  int
	MaxSteps    int
	Policy      Policy
	Parallel    bool
	Workers     int
	Seed        int64
	ReportEvery int
	Reporter    search.Reporter
	LogPath     string
}

// DefaultOptions returns Options with the conventional defaults: the given
// history capacity, neighborhood size and budget, filter-then-score policy,
// sequential scoring, reporting every 100 rounds (to a nil Reporter, i.e.
// off).
func DefaultOptions(tabuSize, nNeighbors, maxSteps int) Options {
	return Options{
		TabuSize:    tabuSize,
		NNeighbors:  nNeighbors,
		MaxSteps:    maxSteps,
		Policy:      FilterThenScore,
		ReportEvery: 100,
	}
}

// Result is the outcome of one Run.
type Result[S any, F cmp.Ordered] struct {
	// Best is an independent snapshot of the highest-scoring state seen.
	Best S

	// BestScore is Best's score.
	BestScore F

	// Steps is the number of rounds executed.
	Steps int

	// LastImprovedStep is the round index at which Best last improved;
	// 0 when the initial state was never beaten.
	LastImprovedStep int

	// Reason identifies the stop condition that ended the run.
	Reason search.TerminationReason
}

// validate applies the construction-time checks.
func (o Options) validate() error {
	if o.TabuSize < 1 {
		return ErrNonPositiveTabuSize
	}
	if o.NNeighbors < 1 {
		return ErrNonPositiveNeighbors
	}
	if o.MaxSteps <= 0 {
		return ErrNonPositiveMaxSteps
	}
	if o.Policy != FilterThenScore && o.Policy != ScoreThenBacktrack {
		return ErrUnknownPolicy
	}
	return nil
}
