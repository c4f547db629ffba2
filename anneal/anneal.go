// Package anneal - the annealing engine.
//
// Contracts:
//   - Options are validated once, in New; Run never fails.
//   - The engine owns current/best state exclusively; no concurrency.
//   - Each Run is an independent session: it restarts from the initial
//     state with a fresh RNG stream, so an Engine is reusable.
package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/greenlsi/solidgo/search"
)

// Engine conducts simulated annealing over states of type S.
type Engine[S any] struct {
	initial  S
	energy   search.EvalFunc[S]
	neighbor search.NeighborFunc[S]
	clone    search.CloneFunc[S]
	opts     Options
}

// New builds an Engine for the given problem. The energy function is
// minimized. Construction fails fast on configuration errors (see the
// sentinels in types.go); a constructed Engine always runs.
func New[S any](initial S, energy search.EvalFunc[S], neighbor search.NeighborFunc[S], opts Options) (*Engine[S], error) {
	if energy == nil {
		return nil, ErrNilEnergy
	}
	if neighbor == nil {
		return nil, ErrNilNeighbor
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine[S]{
		initial:  initial,
		energy:   energy,
		neighbor: neighbor,
		opts:     opts,
	}, nil
}

// WithClone sets the state snapshot function; supply one whenever S has
// reference semantics (slices, maps, pointers). Returns the engine for
// chaining.
func (e *Engine[S]) WithClone(fn search.CloneFunc[S]) *Engine[S] {
	e.clone = fn
	return e
}

// Run executes one annealing session and returns the best state found, its
// energy, the number of steps taken and the termination reason.
//
// Session state (current, temperature, step count) is created here and
// discarded at return; successive Runs are independent and identical for
// the same seed.
func (e *Engine[S]) Run() Result[S] {
	rng := search.NewRand(e.opts.Seed)

	cur := search.Clone(e.clone, e.initial)
	curEnergy := e.energy(cur)
	temp := e.opts.StartTemp

	best := search.Clone(e.clone, e.initial)
	bestEnergy := curEnergy

	useMinEnergy := !math.IsNaN(e.opts.MinEnergy)

	var steps int
	for step := 1; step <= e.opts.MaxSteps; step++ {
		steps = step

		if search.Every(step, e.opts.ReportEvery) {
			e.report(steps, temp, bestEnergy, best, false, 0)
		}

		nb := e.neighbor(cur, rng)
		if e.acceptNeighbor(cur, nb, temp, rng) {
			cur = nb
		}
		curEnergy = e.energy(cur)

		if curEnergy < bestEnergy {
			bestEnergy = curEnergy
			best = search.Clone(e.clone, cur)
		}

		if useMinEnergy && curEnergy < e.opts.MinEnergy {
			return e.finish(best, bestEnergy, steps, temp, search.ReachedMinEnergy)
		}

		temp = e.adjustTemp(temp)
		if temp < temperatureFloor {
			return e.finish(best, bestEnergy, steps, temp, search.ReachedTemperatureFloor)
		}
	}
	return e.finish(best, bestEnergy, steps, temp, search.ReachedMaxSteps)
}

// acceptNeighbor applies the Metropolis rule. math.Exp saturates to +Inf on
// large exponents, which the p >= 1 clamp turns into "always accept" - an
// overflowing exponential means an overwhelmingly favorable transition.
func (e *Engine[S]) acceptNeighbor(cur, nb S, temp float64, rng *rand.Rand) bool {
	p := math.Exp(-(e.energy(nb) - e.energy(cur)) / temp)
	if p >= 1 {
		return true
	}
	return p >= rng.Float64()
}

// adjustTemp applies the configured schedule once. Schedule validity was
// checked in New.
func (e *Engine[S]) adjustTemp(temp float64) float64 {
	if e.opts.Schedule == Linear {
		return temp - e.opts.ScheduleConstant
	}
	return temp * e.opts.ScheduleConstant
}

// finish emits the final snapshot and assembles the Result.
func (e *Engine[S]) finish(best S, bestEnergy float64, steps int, temp float64, reason search.TerminationReason) Result[S] {
	e.report(steps, temp, bestEnergy, best, true, reason)
	return Result[S]{
		Best:       best,
		BestEnergy: bestEnergy,
		Steps:      steps,
		Reason:     reason,
	}
}

func (e *Engine[S]) report(step int, temp, bestEnergy float64, best S, final bool, reason search.TerminationReason) {
	if e.opts.Reporter == nil {
		return
	}
	e.opts.Reporter.Report(search.Snapshot{
		Algorithm:   "SIMULATED ANNEALING",
		Step:        step,
		Temperature: temp,
		BestLabel:   "ENERGY",
		Best:        bestEnergy,
		BestState:   fmt.Sprint(best),
		Final:       final,
		Reason:      reason,
	})
}
