package partition_test

import (
	"fmt"

	"github.com/katalvlaran/cliquepart/partition"
	"github.com/katalvlaran/cliquepart/wgraph"
)

// ExampleComputePartition partitions a five-vertex instance into cliques of
// size at most 4. The triangle 0-1-2 and the pair 3-4 cover four of six edges.
func ExampleComputePartition() {
	const X = wgraph.NoEdge
	weights := [][]int{
		{0, 3, 5, X, 1},
		{3, 0, 4, X, 5},
		{5, 4, 0, X, X},
		{X, X, X, 0, 7},
		{1, 5, X, 7, 0},
	}

	res, err := partition.ComputePartition(weights, 5, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Cliques)
	fmt.Println(res.Sizes)
	fmt.Println("weight:", res.Stats.TotalWeight, "valid:", res.Valid())
	// Output:
	// [[0 2 1] [4 3]]
	// [3 2]
	// weight: 19 valid: true
}

// ExampleValidate shows how a broken partition is reported.
func ExampleValidate() {
	const X = wgraph.NoEdge
	g, _ := wgraph.New([][]int{
		{0, 1, X},
		{1, 0, 1},
		{X, 1, 0},
	}, 3)

	fmt.Println(partition.Validate(g, [][]int{{0, 1, 2}}))
	fmt.Println(partition.Validate(g, [][]int{{0, 1}, {2}}))
	// Output:
	// vertices 0 and 2 in clique 0 are not connected: partition: constraint violation: clique is not complete
	// <nil>
}

// ExampleWithOnRelocate traces every repair move.
func ExampleWithOnRelocate() {
	const X = wgraph.NoEdge
	g, _ := wgraph.New([][]int{
		{0, 5, 3},
		{5, 0, X},
		{3, X, 0},
	}, 2)

	built, _ := partition.Build(g)
	repaired, stats, _ := partition.Repair(g, built, partition.WithOnRelocate(func(v, from, to int) {
		fmt.Printf("move %d: clique %d -> %d\n", v, from, to)
	}))

	fmt.Println(built, "->", repaired, "rounds:", stats.Rounds)
	// Output:
	// move 0: clique 0 -> 1
	// [[0 1] [2]] -> [[1] [2 0]] rounds: 2
}
