// Package partition_test - benchmarks for the partition pipeline.
//
// Policy:
//   - Inputs are built outside the timer with fixed seeds.
//   - Sizes stay small enough for CI.
package partition_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cliquepart/partition"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{50, 200, 500} {
		g := randomGraph(b, 42, n, 8, 0.3, 0, 100)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := partition.Solve(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBuild_Workers compares the sequential candidate scan with the
// chunked parallel one on a dense instance.
func BenchmarkBuild_Workers(b *testing.B) {
	g := randomGraph(b, 7, 1000, 16, 0.8, 0, 100)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			opts := []partition.Option{partition.WithWorkers(w), partition.WithParallelThreshold(64)}
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := partition.Build(g, opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	g := randomGraph(b, 3, 500, 8, 0.3, 0, 100)
	cl, err := partition.Build(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = partition.Validate(g, cl)
	}
}
