package astar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexpath/astar"
	"github.com/katalvlaran/hexpath/grid"
	"github.com/katalvlaran/hexpath/hexcoord"
)

// ExampleFindPath searches a three-cell line.
func ExampleFindPath() {
	g := grid.New()
	_ = g.AddCell(hexcoord.Cube(0, 0, 0), grid.Open)
	_ = g.AddCell(hexcoord.Cube(1, -1, 0), grid.Open)
	_ = g.AddCell(hexcoord.Cube(2, -2, 0), grid.Open)

	res, err := astar.FindPath(g, hexcoord.Cube(0, 0, 0), hexcoord.Cube(2, -2, 0), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [(0,0,0) (1,-1,0) (2,-2,0)] 2
}

// ExampleFindPath_blocked shows the negative result when the only route is impassable.
func ExampleFindPath_blocked() {
	g := grid.New()
	_ = g.AddCell(hexcoord.Cube(0, 0, 0), grid.Open)
	_ = g.AddCell(hexcoord.Cube(1, -1, 0), grid.Impassable)
	_ = g.AddCell(hexcoord.Cube(2, -2, 0), grid.Open)

	res, err := astar.FindPath(g, hexcoord.Cube(0, 0, 0), hexcoord.Cube(2, -2, 0), 1)
	fmt.Println(errors.Is(err, astar.ErrNoPath), res.Outcome)
	// Output: true exhausted
}

// ExamplePathfinder_FindPath routes a heavy unit around a full cell.
func ExamplePathfinder_FindPath() {
	g, _ := grid.NewHexagon(2)
	mid := hexcoord.New(0, 0)
	_ = g.SetCapacity(mid, 4)
	_, _ = g.AdjustWeight(mid, 4)

	pf, _ := astar.New(g)
	light, _ := pf.FindPath(hexcoord.New(-1, 0), hexcoord.New(1, 0), 1)
	heavy, _ := pf.FindPath(hexcoord.New(-1, 0), hexcoord.New(1, 0), 3)
	fmt.Println("light:", light.Cost, "heavy:", heavy.Cost)
	// Output: light: 2 heavy: 3
}
