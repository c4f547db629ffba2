package tabu_test

import (
	"fmt"
	"math/rand"

	"github.com/greenlsi/solidgo/tabu"
)

// ExampleEngine_Run demonstrates the classic string-guessing drill:
//
// Scenario:
//
//	Start from "aaaaa" and try to reach the target "clout". A neighbor
//	rewrites one random letter; the score counts positional matches.
//
// Options:
//   - TabuSize = 50    (remember the last fifty visited strings)
//   - NNeighbors = 10  (ten candidates per round)
//   - MaxSteps = 500   (round budget)
//   - MaxScore = 5     (stop at a full match)
//
// Complexity: O(MaxSteps · NNeighbors) score calls.
func ExampleEngine_Run() {
	neighbor := func(s string, rng *rand.Rand) string {
		b := []byte(s)
		b[rng.Intn(len(b))] = byte('a' + rng.Intn(26))
		return string(b)
	}
	score := func(s string) int {
		n := 0
		for i := range s {
			if s[i] == "clout"[i] {
				n++
			}
		}
		return n
	}

	opts := tabu.DefaultOptions(50, 10, 500)
	opts.Seed = 1

	eng, err := tabu.New("aaaaa", score, neighbor, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := eng.WithMaxScore(5).Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("best=%s score=%d reason=%v\n", res.Best, res.BestScore, res.Reason)
	// Output: best=clout score=5 reason=REACHED MAXIMUM SCORE
}

// ExampleEngine_Run_parallel scores each round's neighborhood concurrently;
// the fan-out joins on a full barrier, so results are identical to the
// sequential run for the same seed.
func ExampleEngine_Run_parallel() {
	neighbor := func(s string, rng *rand.Rand) string {
		b := []byte(s)
		b[rng.Intn(len(b))] = byte('a' + rng.Intn(26))
		return string(b)
	}
	score := func(s string) int {
		n := 0
		for i := range s {
			if s[i] == "clout"[i] {
				n++
			}
		}
		return n
	}

	opts := tabu.DefaultOptions(50, 10, 500)
	opts.Seed = 1
	opts.Parallel = true
	opts.Workers = 4

	eng, err := tabu.New("aaaaa", score, neighbor, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := eng.WithMaxScore(5).Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("best=%s reason=%v\n", res.Best, res.Reason)
	// Output: best=clout reason=REACHED MAXIMUM SCORE
}
