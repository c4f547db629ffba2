// Package anneal - options, schedules and sentinel errors.
//
// Errors (sentinel):
//
//	– ErrBadStartTemp        if StartTemp is NaN.
//	– ErrBadScheduleConstant if ScheduleConstant is NaN.
//	– ErrNonPositiveMaxSteps if MaxSteps <= 0.
//	– ErrUnknownSchedule     if Schedule is not Exponential or Linear.
//	– ErrNilEnergy           if the energy func is nil.
//	– ErrNilNeighbor         if the neighbor func is nil.
//
// All validation happens in New, before any search step executes.
package anneal

import (
	"errors"
	"math"

	"github.com/greenlsi/solidgo/search"
)

// Sentinel errors returned by New.
var (
	// ErrBadStartTemp indicates a NaN starting temperature.
	ErrBadStartTemp = errors.New("anneal: starting temperature must be numeric")

	// ErrBadScheduleConstant indicates a NaN schedule constant.
	ErrBadScheduleConstant = errors.New("anneal: schedule constant must be numeric")

	// ErrNonPositiveMaxSteps indicates MaxSteps <= 0.
	ErrNonPositiveMaxSteps = errors.New("anneal: max steps must be a positive integer")

	// ErrUnknownSchedule indicates an unrecognized annealing schedule.
	ErrUnknownSchedule = errors.New("anneal: schedule must be either exponential or linear")

	// ErrNilEnergy indicates a nil energy function.
	ErrNilEnergy = errors.New("anneal: energy function is nil")

	// ErrNilNeighbor indicates a nil neighbor function.
	ErrNilNeighbor = errors.New("anneal: neighbor function is nil")
)

// temperatureFloor is the cutoff below which a run stops with
// ReachedTemperatureFloor; it guards the acceptance rule against division
// by a vanishing temperature.
const temperatureFloor = 1e-6

// Schedule selects the temperature decay rule applied once per step.
type Schedule int

const (
	// Exponential multiplies the temperature by ScheduleConstant each step.
	Exponential Schedule = iota

	// Linear subtracts ScheduleConstant from the temperature each step.
	Linear
)

// Options configures a simulated annealing run.
//
// StartTemp        – beginning temperature (must not be NaN).
// ScheduleConstant – the constant c in T←T·c (Exponential) or T←T−c (Linear).
// Schedule         – Exponential or Linear.
// MaxSteps         – step budget; must be > 0.
// MinEnergy        – stop once the current energy drops strictly below this.
//
//	NaN (the default) disables the threshold.
//
// Seed             – RNG seed; 0 selects the fixed default stream.
// ReportEvery      – snapshot interval in steps; <=0 disables periodic
//
//	reporting (the final snapshot is still emitted).
//
// Reporter         – progress sink; nil disables reporting entirely.
type Options struct {
	StartTemp        float64
	ScheduleConstant float64
	Schedule         Schedule
	MaxSteps         int
	MinEnergy        float64
	Seed             int64
	ReportEvery      int
	Reporter         search.Reporter
}

// DefaultOptions returns Options with the conventional defaults:
// exponential cooling by 0.99 from the given start temperature, no minimum
// energy, reporting every 100 steps (to a nil Reporter, i.e. off).
func DefaultOptions(startTemp float64, maxSteps int) Options {
	return Options{
		StartTemp:        startTemp,
		ScheduleConstant: 0.99,
		Schedule:         Exponential,
		MaxSteps:         maxSteps,
		MinEnergy:        math.NaN(),
		ReportEvery:      100,
	}
}

// Result is the outcome of one Run.
type Result[S any] struct {
	// Best is an independent snapshot of the lowest-energy state seen.
	Best S

	// BestEnergy is Best's energy.
	BestEnergy float64

	// Steps is the number of steps executed.
	Steps int

	// Reason identifies the stop condition that ended the run.
	Reason search.TerminationReason
}

// validate applies the construction-time checks. Fail fast: a bad
// configuration must never reach the search loop.
func (o Options) validate() error {
	if math.IsNaN(o.StartTemp) {
		return ErrBadStartTemp
	}
	if math.IsNaN(o.ScheduleConstant) {
		return ErrBadScheduleConstant
	}
	if o.MaxSteps <= 0 {
		return ErrNonPositiveMaxSteps
	}
	if o.Schedule != Exponential && o.Schedule != Linear {
		return ErrUnknownSchedule
	}
	return nil
}
