// Package tabu - the tabu search engine.
//
// Contracts:
//   - Options are validated once, in New; Run fails only on run log I/O.
//   - current/best state and the tabu list are owned exclusively by the
//     single search goroutine and mutated only between rounds; the only
//     parallelism is the scoring fan-out behind a full barrier.
//   - Each Run is an independent session: fresh tabu list, fresh RNG
//     stream, restart from the initial state. Engines are reusable.
package tabu

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"

	"github.com/greenlsi/solidgo/parallel"
	"github.com/greenlsi/solidgo/search"
)

// Engine conducts tabu search over states of type S scored as F.
type Engine[S any, F cmp.Ordered] struct {
	initial  S
	score    ScoreFunc[S, F]
	neighbor search.NeighborFunc[S]
	clone    search.CloneFunc[S]
	equal    search.EqualFunc[S]
	maxScore *F
	opts     Options
}

// New builds an Engine for the given problem. The score function is
// supplied externally (not via embedding) so any ordered fitness type
// works. Construction fails fast on configuration errors (see the
// sentinels in types.go).
func New[S any, F cmp.Ordered](initial S, score ScoreFunc[S, F], neighbor search.NeighborFunc[S], opts Options) (*Engine[S, F], error) {
	if score == nil {
		return nil, ErrNilScore
	}
	if neighbor == nil {
		return nil, ErrNilNeighbor
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine[S, F]{
		initial:  initial,
		score:    score,
		neighbor: neighbor,
		opts:     opts,
	}, nil
}

// WithClone sets the state snapshot function; supply one whenever S has
// reference semantics. Returns the engine for chaining.
func (e *Engine[S, F]) WithClone(fn search.CloneFunc[S]) *Engine[S, F] {
	e.clone = fn
	return e
}

// WithEqual sets the state equality used for tabu membership; nil keeps the
// reflect.DeepEqual default. Returns the engine for chaining.
func (e *Engine[S, F]) WithEqual(fn search.EqualFunc[S]) *Engine[S, F] {
	e.equal = fn
	return e
}

// WithMaxScore sets the stop threshold: a run terminates once
// BestScore >= max. Returns the engine for chaining.
func (e *Engine[S, F]) WithMaxScore(max F) *Engine[S, F] {
	e.maxScore = &max
	return e
}

// Run executes one tabu search session and returns the best state found,
// its score, round statistics and the termination reason. The only error
// source is opening the optional run log file.
func (e *Engine[S, F]) Run() (Result[S, F], error) {
	rng := search.NewRand(e.opts.Seed)
	list := NewList[S](e.opts.TabuSize, e.equal)

	var log *runLog
	if e.opts.LogPath != "" {
		var err error
		if log, err = openRunLog(e.opts.LogPath); err != nil {
			return Result[S, F]{}, err
		}
	}
	defer log.close() // flush on every exit path, including early ones

	cur := search.Clone(e.clone, e.initial)
	best := search.Clone(e.clone, e.initial)
	bestScore := e.score(best)
	lastImproved := 0

	var steps int
	for step := 1; step <= e.opts.MaxSteps; step++ {
		steps = step

		if search.Every(step, e.opts.ReportEvery) {
			e.report(step, bestScore, best, false, 0)
		}

		winner, winnerScore, ok := e.selectMove(cur, list, bestScore, rng)
		if !ok {
			log.line(step, bestScore, lastImproved)
			return e.finish(best, bestScore, steps, lastImproved, search.NoSuitableNeighbors), nil
		}

		list.Push(winner)
		cur = winner

		if winnerScore > bestScore {
			bestScore = winnerScore
			best = search.Clone(e.clone, cur)
			lastImproved = step
		}

		log.line(step, bestScore, lastImproved)

		if e.maxScore != nil && bestScore >= *e.maxScore {
			return e.finish(best, bestScore, steps, lastImproved, search.ReachedMaxScore), nil
		}
	}
	return e.finish(best, bestScore, steps, lastImproved, search.ReachedMaxSteps), nil
}

// selectMove generates one neighborhood and picks the round's winner under
// the configured policy. ok == false means the neighborhood offered no
// admissible move.
func (e *Engine[S, F]) selectMove(cur S, list *List[S], bestScore F, rng *rand.Rand) (winner S, winnerScore F, ok bool) {
	hood := make([]S, e.opts.NNeighbors)
	for i := range hood {
		hood[i] = e.neighbor(cur, rng)
	}

	if e.opts.Policy == FilterThenScore {
		admissible := make([]S, 0, len(hood))
		for _, s := range hood {
			if !list.Contains(s) {
				admissible = append(admissible, s)
			}
		}
		if len(admissible) == 0 {
			return winner, winnerScore, false
		}
		pool := e.scoreBatch(admissible)
		top := argBest(pool)
		return pool[top].State, pool[top].Score, true
	}

	// ScoreThenBacktrack: walk the scored batch best-first. Every
	// aspiration rejection removes its candidate, so the pool strictly
	// shrinks and the empty-pool exit is guaranteed to fire.
	pool := e.scoreBatch(hood)
	for len(pool) > 0 {
		top := argBest(pool)
		cand := pool[top]
		if !list.Contains(cand.State) {
			return cand.State, cand.Score, true
		}
		if cand.Score > bestScore {
			// Aspiration rule: a tabu move is admitted because it beats
			// the best score seen so far.
			return cand.State, cand.Score, true
		}
		pool = append(pool[:top], pool[top+1:]...)
	}
	return winner, winnerScore, false
}

// scoreBatch evaluates the candidates sequentially or through package
// parallel, per Options. Both parallel shapes join on a full barrier, so
// round N+1 never starts before round N's evaluations complete.
func (e *Engine[S, F]) scoreBatch(states []S) []parallel.Scored[S, F] {
	if e.opts.Parallel {
		score := func(s S) F { return e.score(s) }
		if e.opts.Workers > 0 {
			return parallel.EvaluateBounded(score, states, e.opts.Workers)
		}
		return parallel.Evaluate(score, states)
	}
	out := make([]parallel.Scored[S, F], len(states))
	for i, s := range states {
		out[i] = parallel.Scored[S, F]{State: s, Score: e.score(s)}
	}
	return out
}

// argBest returns the index of the first highest-scoring entry.
func argBest[S any, F cmp.Ordered](pool []parallel.Scored[S, F]) int {
	top := 0
	for i := 1; i < len(pool); i++ {
		if pool[i].Score > pool[top].Score {
			top = i
		}
	}
	return top
}

// finish emits the final snapshot and assembles the Result.
func (e *Engine[S, F]) finish(best S, bestScore F, steps, lastImproved int, reason search.TerminationReason) Result[S, F] {
	e.report(steps, bestScore, best, true, reason)
	return Result[S, F]{
		Best:             best,
		BestScore:        bestScore,
		Steps:            steps,
		LastImprovedStep: lastImproved,
		Reason:           reason,
	}
}

func (e *Engine[S, F]) report(step int, bestScore F, best S, final bool, reason search.TerminationReason) {
	if e.opts.Reporter == nil {
		return
	}
	e.opts.Reporter.Report(search.Snapshot{
		Algorithm:   "TABU SEARCH",
		Step:        step,
		Temperature: math.NaN(),
		BestLabel:   "SCORE",
		Best:        bestScore,
		BestState:   fmt.Sprint(best),
		Final:       final,
		Reason:      reason,
	})
}
