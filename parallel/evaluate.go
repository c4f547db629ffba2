// Package parallel - batch scoring with a synchronous barrier.
package parallel

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scored pairs a candidate state with its computed score.
type Scored[S, F any] struct {
	State S
	Score F
}

// Evaluate scores every state with one goroutine per candidate and blocks
// until all of them finish. Each worker writes exactly one slot of the
// result, so no further synchronization is needed beyond the barrier.
//
// Complexity: O(len(states)) goroutines; wall time ~ max single score.
func Evaluate[S, F any](score func(S) F, states []S) []Scored[S, F] {
	if len(states) == 0 {
		return nil
	}

	out := make([]Scored[S, F], len(states))
	var wg sync.WaitGroup
	for i, s := range states {
		wg.Add(1)
		go func(i int, s S) {
			defer wg.Done()
			out[i] = Scored[S, F]{State: s, Score: score(s)}
		}(i, s)
	}
	wg.Wait() // full barrier: the next round never starts early

	return out
}

// EvaluateBounded behaves exactly like Evaluate but keeps at most workers
// goroutines in flight. workers <= 0 falls back to the unbounded shape.
//
// The group carries no errors - scoring is total by contract - it is used
// purely for its concurrency limit and barrier.
func EvaluateBounded[S, F any](score func(S) F, states []S, workers int) []Scored[S, F] {
	if workers <= 0 {
		return Evaluate(score, states)
	}
	if len(states) == 0 {
		return nil
	}

	out := make([]Scored[S, F], len(states))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range states {
		i, s := i, s
		g.Go(func() error {
			out[i] = Scored[S, F]{State: s, Score: score(s)}
			return nil
		})
	}
	_ = g.Wait() // barrier; no worker ever returns an error

	return out
}
