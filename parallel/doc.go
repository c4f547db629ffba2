// Package parallel evaluates a batch of candidate states concurrently and
// joins on a full barrier before returning.
//
// Contract:
//   - Given a scoring function and a list of candidates, return one
//     (state, score) pair per input. Callers must not rely on any ordering
//     of the result relative to the input.
//   - Fan-out then fan-in: the call blocks until every worker has finished.
//     No partial results, no cancellation - once dispatched, a worker runs
//     to completion.
//   - Workers share no mutable state beyond a write-once slot each in the
//     results slice.
//
// Two dispatch shapes with identical barrier semantics:
//
//   - Evaluate        - one goroutine per candidate, joined by a
//     sync.WaitGroup. Matches neighborhood-sized batches
//     (tens of candidates).
//   - EvaluateBounded - at most `workers` goroutines in flight via an
//     errgroup limit; same results, bounded fan-out for
//     expensive scoring functions.
//
// The scoring function is trusted to be total; a panic inside a worker
// propagates and crashes the run, as it would sequentially.
package parallel
