// Package solidgo is a small library of generic, pluggable local-search
// metaheuristics for gradient-free optimization.
//
// 🚀 What is solidgo?
//
//	A library of search-loop engines that explore a caller-defined state
//	space by generating neighbors and deciding whether to move:
//		• Simulated annealing: temperature-controlled energy minimization
//		• Stochastic hill climbing: logistic acceptance at fixed temperature
//		• Tabu search: neighborhood selection under a bounded forbidden-move
//		  history, with optional parallel scoring
//
// ✨ Why choose solidgo?
//
//   - Plug-in problems – wire a neighbor func, an evaluation func and go;
//     engines never inspect a state's internals
//   - Deterministic – every run is reproducible from a seed
//   - Explicit outcomes – every run ends with a symbolic termination reason
//   - Observable – injected progress reporters and a fixed-width run log,
//     never feeding back into the search
//
// Everything is organized under flat subpackages:
//
//	search/    — shared contracts: problem funcs, termination reasons,
//	             deterministic RNG, progress reporting
//	anneal/    — simulated annealing engine and schedules
//	hillclimb/ — stochastic hill climbing engine
//	tabu/      — tabu search engine, policies, FIFO history, run log
//	parallel/  — fan-out/fan-in batch evaluation with a full barrier
//	config/    — YAML tuning files → engine options
//
// Quick example (guess the string "clout"):
//
//	neighbor := func(s string, rng *rand.Rand) string {
//		b := []byte(s)
//		b[rng.Intn(len(b))] = byte('a' + rng.Intn(26))
//		return string(b)
//	}
//	score := func(s string) int {
//		n := 0
//		for i := range s {
//			if s[i] == "clout"[i] {
//				n++
//			}
//		}
//		return n
//	}
//	eng, _ := tabu.New("aaaaa", score, neighbor, tabu.DefaultOptions(50, 10, 500))
//	res, _ := eng.WithMaxScore(5).Run()
//	fmt.Println(res.Best, res.Reason) // clout REACHED MAXIMUM SCORE
package solidgo
