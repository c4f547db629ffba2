// Package tabu implements tabu search: neighborhood-based maximization of a
// caller-supplied score while forbidding recently visited states.
//
// Each round the engine
//
//  1. generates Options.NNeighbors candidates from the current state,
//  2. evaluates them under the configured Policy (sequentially or through
//     package parallel),
//  3. selects a winner, records it in the bounded FIFO tabu list and makes
//     it the current state,
//  4. updates the best-known state on strict improvement (clone semantics),
//     remembering the step of the last improvement.
//
// Policies (§ types.go):
//
//   - FilterThenScore    - drop tabu candidates before scoring; an empty
//     remainder ends the run with NoSuitableNeighbors.
//   - ScoreThenBacktrack - score the whole batch, walk it best-first; a tabu
//     candidate is admitted only when it beats the best-known score (the
//     aspiration rule), otherwise it is discarded and the next-best is
//     tried; an exhausted pool ends the run with NoSuitableNeighbors.
//
// The score type is any ordered type (cmp.Ordered): the engine only ever
// compares scores with ">" and ">=".
//
// A run terminates on NoSuitableNeighbors, on BestScore >= the configured
// maximum (WithMaxScore), or on step budget exhaustion - each with its own
// search.TerminationReason.
//
// An optional run log (Options.LogPath) appends one fixed-width progress
// line per step to a file that is truncated at the start of every Run and
// closed on every exit path. Logging and reporting are side effects only
// and never influence the search.
package tabu
