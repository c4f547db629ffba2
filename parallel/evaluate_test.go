package parallel_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlsi/solidgo/parallel"
)

// TestEvaluate_OnePairPerInput verifies the contract: one (state, score)
// pair per candidate, scores computed by the supplied function.
func TestEvaluate_OnePairPerInput(t *testing.T) {
	states := []int{3, 1, 4, 1, 5, 9, 2, 6}
	out := parallel.Evaluate(func(x int) int { return x * x }, states)
	require.Len(t, out, len(states))

	// Order is not part of the contract; compare as multisets.
	got := map[[2]int]int{}
	for _, p := range out {
		got[[2]int{p.State, p.Score}]++
	}
	want := map[[2]int]int{}
	for _, s := range states {
		want[[2]int{s, s * s}]++
	}
	assert.Equal(t, want, got)
}

// TestEvaluate_FullBarrier proves the fan-in: every worker has finished by
// the time the call returns.
func TestEvaluate_FullBarrier(t *testing.T) {
	var done atomic.Int32
	states := make([]int, 64)
	parallel.Evaluate(func(int) int {
		done.Add(1)
		return 0
	}, states)
	assert.EqualValues(t, 64, done.Load(), "no worker may still be running after return")
}

// TestEvaluate_Empty returns nil without spawning anything.
func TestEvaluate_Empty(t *testing.T) {
	assert.Nil(t, parallel.Evaluate(func(int) int { return 0 }, nil))
	assert.Nil(t, parallel.Evaluate(func(int) int { return 0 }, []int{}))
}

// TestEvaluateBounded_MatchesUnbounded verifies both shapes produce the
// same pairs, and that the worker cap is honored.
func TestEvaluateBounded_MatchesUnbounded(t *testing.T) {
	states := []string{"a", "bb", "ccc", "dddd", "eeeee"}
	score := func(s string) int { return len(s) }

	unbounded := parallel.Evaluate(score, states)
	bounded := parallel.EvaluateBounded(score, states, 2)
	fallback := parallel.EvaluateBounded(score, states, 0) // <=0 ⇒ unbounded shape

	asSet := func(pairs []parallel.Scored[string, int]) map[string]int {
		m := map[string]int{}
		for _, p := range pairs {
			m[p.State] = p.Score
		}
		return m
	}
	assert.Equal(t, asSet(unbounded), asSet(bounded))
	assert.Equal(t, asSet(unbounded), asSet(fallback))
}

// TestEvaluateBounded_HonorsLimit tracks peak concurrency under a cap of 3.
func TestEvaluateBounded_HonorsLimit(t *testing.T) {
	var mu sync.Mutex
	inFlight, peak := 0, 0

	score := func(int) int {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
		return 0
	}
	parallel.EvaluateBounded(score, make([]int, 100), 3)

	assert.LessOrEqual(t, peak, 3, "no more than `workers` scoring calls in flight")
	assert.Zero(t, inFlight)
}
