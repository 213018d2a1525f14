package hexcoord_test

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hexcoord"
)

// ExampleDistance shows the hex distance between two cells.
func ExampleDistance() {
	a := hexcoord.Cube(0, 0, 0)
	b := hexcoord.Cube(2, -3, 1)
	fmt.Println(hexcoord.Distance(a, b))
	// Output: 3
}

// ExampleNeighbors lists the six neighbors of the origin in direction order.
func ExampleNeighbors() {
	for _, n := range hexcoord.Neighbors(hexcoord.New(0, 0)) {
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output: (1,-1,0) (1,0,-1) (0,1,-1) (-1,1,0) (-1,0,1) (0,-1,1)
}
