// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and endpoint lookup
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates reading the grid text form and locating the
// unique Start and Destination cells.
func ExampleParse() {
	g, err := gridgraph.Parse(`
S . X
. P .
X . D
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.FindStart()
	dest, _ := g.FindDestination()
	fmt.Println("size:", g.Rows(), "x", g.Cols())
	fmt.Println("start:", start, "destination:", dest)

	// Output:
	// size: 3 x 3
	// start: (0,0) destination: (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: single-endpoint invariant
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Set shows that a second Start is rejected until the first one
// is erased.
func ExampleGrid_Set() {
	g, _ := gridgraph.NewGrid(2, 3)
	_ = g.Set(gridgraph.At(0, 0), gridgraph.Start)

	err := g.Set(gridgraph.At(1, 2), gridgraph.Start)
	fmt.Println(err)

	_ = g.Set(gridgraph.At(0, 0), gridgraph.Open)
	err = g.Set(gridgraph.At(1, 2), gridgraph.Start)
	fmt.Println(err)
	fmt.Print(g)

	// Output:
	// gridgraph: endpoint already placed
	// <nil>
	// . . .
	// . . S
}
