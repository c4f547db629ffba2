// Package search defines the shared contracts for solidgo's local-search
// engines (anneal, hillclimb, tabu).
//
// A search engine explores a caller-defined state space: it repeatedly asks
// the problem for a neighbor of the current state, evaluates it, decides
// whether to move, and tracks the best state seen. The engines never inspect
// a state's internals; everything problem-specific arrives as plain function
// values:
//
//   - NeighborFunc[S] — produce one candidate reachable from the current state
//   - EvalFunc[S]     — energy (minimized) or objective (maximized)
//   - CloneFunc[S]    — snapshot a state so stored bests never alias a
//     still-mutating current state (nil ⇒ value semantics)
//   - EqualFunc[S]    — state equality for history membership
//     (nil ⇒ reflect.DeepEqual)
//
// Determinism:
//   - All randomness flows through a single *rand.Rand created by NewRand;
//     same seed ⇒ identical runs across platforms. Seed 0 selects a fixed
//     default stream, never the wall clock.
//
// Termination:
//   - Every run ends with a symbolic TerminationReason so callers can branch
//     programmatically instead of parsing progress output.
//
// Progress:
//   - Reporter is a side-effect-only sink for periodic Snapshot values; it
//     must never influence search decisions.
package search
