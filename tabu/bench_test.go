package tabu_test

import (
	"math/rand"
	"testing"

	"github.com/greenlsi/solidgo/tabu"
)

// BenchmarkList_PushContains measures the steady-state cost of the ring
// buffer at a realistic capacity.
func BenchmarkList_PushContains(b *testing.B) {
	l := tabu.NewList[int](50, func(a, c int) bool { return a == c })
	for i := 0; i < 50; i++ {
		l.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Push(i)
		_ = l.Contains(i - 25)
	}
}

// BenchmarkRun_Sequential is the clout scenario without the score threshold,
// so every benchmark iteration runs the full budget.
func BenchmarkRun_Sequential(b *testing.B) {
	benchmarkRun(b, false, 0)
}

// BenchmarkRun_Parallel is the same workload with goroutine-per-candidate
// scoring; with a score this cheap the fan-out overhead dominates, which is
// exactly what the comparison is for.
func BenchmarkRun_Parallel(b *testing.B) {
	benchmarkRun(b, true, 0)
}

func benchmarkRun(b *testing.B, parallel bool, workers int) {
	neighbor := func(s string, rng *rand.Rand) string {
		bs := []byte(s)
		bs[rng.Intn(len(bs))] = byte('a' + rng.Intn(26))
		return string(bs)
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

	opts := tabu.DefaultOptions(50, 10, 100)
	opts.Parallel = parallel
	opts.Workers = workers
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng, err := tabu.New("aaaaa", score, neighbor, opts)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = eng.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
