package grid

import "github.com/katalvlaran/hexpath/hexcoord"

// Components groups the cells that accept a unit of unitWeight into connected
// regions. Two such cells are connected when they are neighbors. Each component
// lists its coordinates in breadth-first order from its smallest coordinate;
// components are ordered by that smallest coordinate.
//
// A start and goal in different components have no path for that weight, which
// callers can use to skip a search entirely.
//
// Time:   O(N·6), Memory: O(N) where N = Len().
func (g *Grid) Components(unitWeight int) [][]hexcoord.Coord {
	coords := g.Coords()
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[hexcoord.Coord]bool, len(coords))
	var comps [][]hexcoord.Coord
	for _, c0 := range coords {
		if seen[c0] || !g.cells[c0].AcceptsWeight(unitWeight) {
			continue
		}
		queue := []hexcoord.Coord{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range hexcoord.Neighbors(queue[qi]) {
				cell, ok := g.cells[n]
				if !ok || seen[n] || !cell.AcceptsWeight(unitWeight) {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentIndex returns, for every accepting cell, the index of its component in
// Components(unitWeight).
func (g *Grid) ComponentIndex(unitWeight int) map[hexcoord.Coord]int {
	comps := g.Components(unitWeight)
	idx := make(map[hexcoord.Coord]int)
	for i, comp := range comps {
		for _, c := range comp {
			idx[c] = i
		}
	}

	return idx
}
