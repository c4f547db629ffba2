// Package hillclimb - options and sentinel errors.
//
// Errors (sentinel):
//
//	– ErrBadTemperature      if Temp is NaN.
//	– ErrNonPositiveMaxSteps if MaxSteps <= 0.
//	– ErrNilObjective        if the objective func is nil.
//	– ErrNilNeighbor         if the neighbor func is nil.
//
// All validation happens in New, before any search step executes.
package hillclimb

import (
	"errors"
	"math"

	"github.com/greenlsi/solidgo/search"
)

// Sentinel errors returned by New.
var (
	// ErrBadTemperature indicates a NaN temperature.
	ErrBadTemperature = errors.New("hillclimb: temperature must be numeric")

	// ErrNonPositiveMaxSteps indicates MaxSteps <= 0.
	ErrNonPositiveMaxSteps = errors.New("hillclimb: max steps must be a positive integer")

	// ErrNilObjective indicates a nil objective function.
	ErrNilObjective = errors.New("hillclimb: objective function is nil")

	// ErrNilNeighbor indicates a nil neighbor function.
	ErrNilNeighbor = errors.New("hillclimb: neighbor function is nil")
)

// Options configures a stochastic hill climb.
//
// Temp         – fixed temperature of the logistic acceptance rule
//
//	(must not be NaN).
//
// MaxSteps     – step budget; must be > 0.
// MaxObjective – stop once the best objective strictly exceeds this.
//
//	NaN (the default) disables the threshold.
//
// Seed         – RNG seed; 0 selects the fixed default stream.
// ReportEvery  – snapshot interval in steps; <=0 disables periodic
//
//	reporting (the final snapshot is still emitted).
//
// Reporter     – progress sink; nil disables reporting entirely.
type Options struct {
	Temp         float64
	MaxSteps     int
	MaxObjective float64
	Seed         int64
	ReportEvery  int
	Reporter     search.Reporter
}

// DefaultOptions returns Options with the conventional defaults: the given
// temperature and budget, no objective threshold, reporting every 100 steps
// (to a nil Reporter, i.e. off).
func DefaultOptions(temp float64, maxSteps int) Options {
	return Options{
		Temp:         temp,
		MaxSteps:     maxSteps,
		MaxObjective: math.NaN(),
		ReportEvery:  100,
	}
}

// Result is the outcome of one Run.
type Result[S any] struct {
	// Best is an independent snapshot of the highest-objective state seen,
	// or the zero value of S when the objective never exceeded the 0 floor.
	Best S

	// BestObjective is Best's objective, starting from the explicit 0 floor.
	BestObjective float64

	// Steps is the number of steps executed.
	Steps int

	// Reason identifies the stop condition that ended the run.
	Reason search.TerminationReason
}

// validate applies the construction-time checks.
func (o Options) validate() error {
	if math.IsNaN(o.Temp) {
		return ErrBadTemperature
	}
	if o.MaxSteps <= 0 {
		return ErrNonPositiveMaxSteps
	}
	return nil
}
