// Package hillclimb - the hill climbing engine.
//
// Contracts:
//   - Options are validated once, in New; Run never fails.
//   - The engine owns current/best state exclusively; no concurrency.
//   - Each Run is an independent session with a fresh RNG stream.
package hillclimb

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/greenlsi/solidgo/search"
)

// overflowExponent is the threshold beyond which exp(x) exceeds
// math.MaxFloat64. Upstream treats the overflow as "always accept"; we test
// the exponent directly instead of letting 1/(1+Inf) collapse to 0.
const overflowExponent = 709.7827128933840

// Engine conducts stochastic hill climbing over states of type S.
type Engine[S any] struct {
	initial   S
	objective search.EvalFunc[S]
	neighbor  search.NeighborFunc[S]
	clone     search.CloneFunc[S]
	opts      Options
}

// New builds an Engine for the given problem. The objective function is
// maximized. Construction fails fast on configuration errors (see the
// sentinels in types.go).
func New[S any](initial S, objective search.EvalFunc[S], neighbor search.NeighborFunc[S], opts Options) (*Engine[S], error) {
	if objective == nil {
		return nil, ErrNilObjective
	}
	if neighbor == nil {
		return nil, ErrNilNeighbor
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine[S]{
		initial:   initial,
		objective: objective,
		neighbor:  neighbor,
		opts:      opts,
	}, nil
}

// WithClone sets the state snapshot function; supply one whenever S has
// reference semantics. Returns the engine for chaining.
func (e *Engine[S]) WithClone(fn search.CloneFunc[S]) *Engine[S] {
	e.clone = fn
	return e
}

// Run executes one hill climbing session and returns the best state found,
// its objective, the number of steps taken and the termination reason.
func (e *Engine[S]) Run() Result[S] {
	rng := search.NewRand(e.opts.Seed)

	cur := search.Clone(e.clone, e.initial)

	var best S
	bestObjective := 0.0 // explicit initial floor, not absence-of-value

	useMaxObjective := !math.IsNaN(e.opts.MaxObjective)

	var steps int
	for step := 1; step <= e.opts.MaxSteps; step++ {
		steps = step

		if search.Every(step, e.opts.ReportEvery) {
			e.report(steps, bestObjective, best, false, 0)
		}

		nb := e.neighbor(cur, rng)
		if e.acceptNeighbor(cur, nb, rng) {
			cur = nb
		}

		if obj := e.objective(cur); obj > bestObjective {
			bestObjective = obj
			best = search.Clone(e.clone, cur)
		}

		if useMaxObjective && bestObjective > e.opts.MaxObjective {
			return e.finish(best, bestObjective, steps, search.ReachedMaxObjective)
		}
	}
	return e.finish(best, bestObjective, steps, search.ReachedMaxSteps)
}

// acceptNeighbor applies the logistic rule
// p = 1/(1+exp((obj(cur)-obj(nb))/T)). An exponent past the float64 range
// means "always accept" (see overflowExponent).
func (e *Engine[S]) acceptNeighbor(cur, nb S, rng *rand.Rand) bool {
	x := (e.objective(cur) - e.objective(nb)) / e.opts.Temp
	if x > overflowExponent {
		return true
	}
	p := 1. / (1 + math.Exp(x))
	if p >= 1 {
		return true
	}
	return p >= rng.Float64()
}

// finish emits the final snapshot and assembles the Result.
func (e *Engine[S]) finish(best S, bestObjective float64, steps int, reason search.TerminationReason) Result[S] {
	e.report(steps, bestObjective, best, true, reason)
	return Result[S]{
		Best:          best,
		BestObjective: bestObjective,
		Steps:         steps,
		Reason:        reason,
	}
}

func (e *Engine[S]) report(step int, bestObjective float64, best S, final bool, reason search.TerminationReason) {
	if e.opts.Reporter == nil {
		return
	}
	e.opts.Reporter.Report(search.Snapshot{
		Algorithm:   "STOCHASTIC HILL CLIMB",
		Step:        step,
		Temperature: math.NaN(),
		BestLabel:   "OBJECTIVE",
		Best:        bestObjective,
		BestState:   fmt.Sprint(best),
		Final:       final,
		Reason:      reason,
	})
}
