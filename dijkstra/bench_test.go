package dijkstra_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	g, err := gridgraph.GenerateRandom(n, n, 0.2, 0.1, rand.New(rand.NewPCG(7, 11)))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkSolveGrid_Heap64(b *testing.B) {
	g := benchGrid(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.SolveGrid(g, dijkstra.WithStrategy(dijkstra.StrategyHeap))
	}
}

func BenchmarkSolveGrid_Scan64(b *testing.B) {
	g := benchGrid(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.SolveGrid(g, dijkstra.WithStrategy(dijkstra.StrategyScan))
	}
}
