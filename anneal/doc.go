// Package anneal implements simulated annealing: temperature-controlled
// stochastic minimization of an energy function over a caller-defined state
// space.
//
// Per step the engine draws one neighbor of the current state and accepts it
// with probability
//
//	p = exp(-(E(neighbor) - E(current)) / T)
//
// clamped to 1 for downhill moves; an overflowing exponent means "always
// accept". The temperature T decays each step under a schedule:
//
//   - Exponential: T ← T·c
//   - Linear:      T ← T−c
//
// A run terminates when the energy drops below Options.MinEnergy (if set),
// when T falls below the 1e-6 floor, or when the step budget is exhausted -
// each with its own search.TerminationReason.
//
// Use this package when the energy landscape has local minima a greedy
// descent would get stuck in; early high-temperature steps escape them.
//
// Complexity: O(MaxSteps) neighbor generations and up to 3·MaxSteps energy
// evaluations; O(1) extra space beyond the best-state snapshot.
package anneal
