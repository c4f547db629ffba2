// Package search - shared function contracts and termination reasons.
//
// Design:
//   - Problem hooks are plain generic function types, not an interface
//     hierarchy: a caller wires three or four funcs and runs.
//   - Clone/Equal have nil-means-default semantics so value-typed states
//     (strings, ints, small structs) need zero ceremony.
package search

import (
	"math/rand"
	"reflect"
)

// NeighborFunc produces one candidate state reachable from current by a
// single problem-defined perturbation. It must not mutate current; return a
// fresh value (or clone first) when S has reference semantics.
type NeighborFunc[S any] func(current S, rng *rand.Rand) S

// EvalFunc evaluates a state. Annealing reads it as energy (lower is
// better); hill climbing reads it as an objective (higher is better).
// It is trusted to be total: a panic propagates to the caller of Run.
type EvalFunc[S any] func(state S) float64

// CloneFunc returns an independent copy of a state. Engines call it before
// storing a best snapshot so the snapshot cannot alias the still-mutating
// current state. nil is allowed when S already has value semantics.
type CloneFunc[S any] func(state S) S

// EqualFunc reports whether two states are the same state. Used for history
// membership (tabu lists). nil falls back to reflect.DeepEqual.
type EqualFunc[S any] func(a, b S) bool

// Clone applies fn, or returns s unchanged when fn is nil (value semantics).
func Clone[S any](fn CloneFunc[S], s S) S {
	if fn == nil {
		return s
	}
	return fn(s)
}

// Equal applies fn, or reflect.DeepEqual when fn is nil.
func Equal[S any](fn EqualFunc[S], a, b S) bool {
	if fn == nil {
		return reflect.DeepEqual(a, b)
	}
	return fn(a, b)
}

// TerminationReason identifies which stop condition ended a run.
// Reaching a threshold or exhausting a budget is a normal outcome, not an
// error; engines surface the reason in their Result for programmatic checks.
type TerminationReason int

const (
	// ReachedMaxSteps - the step budget was exhausted.
	ReachedMaxSteps TerminationReason = iota

	// ReachedMinEnergy - annealing found a state below the configured
	// minimum energy.
	ReachedMinEnergy

	// ReachedTemperatureFloor - the annealing schedule cooled the
	// temperature below the floor.
	ReachedTemperatureFloor

	// ReachedMaxObjective - hill climbing exceeded the configured maximum
	// objective.
	ReachedMaxObjective

	// ReachedMaxScore - tabu search reached the configured maximum score.
	ReachedMaxScore

	// NoSuitableNeighbors - tabu search found every candidate forbidden and
	// none admissible by aspiration.
	NoSuitableNeighbors
)

// String returns the upstream-style notice text for the reason.
func (r TerminationReason) String() string {
	switch r {
	case ReachedMaxSteps:
		return "REACHED MAXIMUM STEPS"
	case ReachedMinEnergy:
		return "REACHED MINIMUM ENERGY"
	case ReachedTemperatureFloor:
		return "REACHED TEMPERATURE OF 0"
	case ReachedMaxObjective:
		return "REACHED MAXIMUM OBJECTIVE"
	case ReachedMaxScore:
		return "REACHED MAXIMUM SCORE"
	case NoSuitableNeighbors:
		return "NO SUITABLE NEIGHBORS"
	default:
		return "UNKNOWN"
	}
}
