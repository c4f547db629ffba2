// Package hillclimb implements stochastic hill climbing: maximization of an
// objective function by single-neighbor moves accepted through a logistic
// rule at a fixed temperature.
//
// Per step the engine draws one neighbor and accepts it with probability
//
//	p = 1 / (1 + exp((obj(current) - obj(neighbor)) / T))
//
// so uphill moves are likely, downhill moves unlikely, and T controls how
// sharp that bias is. An overflowing exponent means "always accept".
//
// The best objective starts from an explicit floor of 0, not from
// "unset": a problem whose objective never exceeds 0 finishes with a
// zero-valued best state and BestObjective == 0.
//
// A run terminates once the best objective exceeds Options.MaxObjective
// (if set) or when the step budget is exhausted, each with its own
// search.TerminationReason.
//
// Complexity: O(MaxSteps) neighbor generations and up to 3·MaxSteps
// objective evaluations; O(1) extra space beyond the best-state snapshot.
package hillclimb
