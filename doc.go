// Package hexpath is a hex-grid pathfinding library: cube coordinates, a terrain
// and weight-capacity grid model, an indexed min-heap with decrease-key, and an A*
// pathfinder on top of them.
//
// Packages, leaves first:
//
//	hexcoord/    cube coordinates (q, r, s), distance, neighbors, rings, discs
//	pqueue/      indexed binary min-heap over integer ids with in-place Decrease
//	grid/        cells, terrain cost table, weight acceptance, generation, components
//	astar/       A* search, batch queries, slog logging, Prometheus metrics, OTel spans
//	config/      YAML settings → grid and pathfinder options
//	cmd/hexpath  command-line front end
//
// Quick start:
//
//	g, _ := grid.NewHexagon(5)
//	res, err := astar.FindPath(g, hexcoord.New(-5, 0), hexcoord.New(5, 0), 1)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable for a unit of that weight
//	}
//	fmt.Println(res.Path, res.Cost)
//
// A unit of weight w may enter a cell when the cell is passable and either
// current+w <= capacity or w < 2. Move costs come from the grid's CostTable and are
// always >= 1, which keeps the hex-distance heuristic admissible.
package hexpath
