// Package dijkstra_test provides examples demonstrating how to solve terrain
// grids. Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSolveGrid solves a small warehouse floor and prints the overlay.
// Complexity: O(E log V) with the default heap strategy.
func ExampleSolveGrid() {
	// 1) Parse the grid: S start, D destination, X wall, P slow zone, . open.
	g := gridgraph.MustParse(`
S . . . .
X X . X .
. P P . .
. X . . D
. . . X .
`)
	// 2) Solve between the grid's own Start and Destination cells.
	res, err := dijkstra.SolveGrid(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print cost and the path overlay ('*' marks intermediate cells).
	fmt.Println(res)
	fmt.Print(res.Render(g))
	// Output:
	// cost=6.5 length=8
	// S * * . .
	// X X * X .
	// . P * * *
	// . X . . D
	// . . . X .
}

// ExampleShortestPath_directional shows that North and West steps are cheap
// while South and East steps pay the entered cell's base cost.
func ExampleShortestPath_directional() {
	g := gridgraph.MustParse(". . .\n")

	east, _ := dijkstra.ShortestPath(g, gridgraph.At(0, 0), gridgraph.At(0, 2))
	west, _ := dijkstra.ShortestPath(g, gridgraph.At(0, 2), gridgraph.At(0, 0))

	fmt.Printf("east=%g west=%g\n", east.Cost, west.Cost)
	// Output: east=2 west=1
}

// ExampleWithStrategy runs the linear-scan strategy on an enclosed grid.
func ExampleWithStrategy() {
	g := gridgraph.MustParse(`
S . .
. X X
. X D
`)
	res, err := dijkstra.SolveGrid(g, dijkstra.WithStrategy(dijkstra.StrategyScan))
	fmt.Println(res.Reachable(), err)
	// Output: false <nil>
}
