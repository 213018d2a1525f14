package grid

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hexpath/hexcoord"
)

// rollTerrain draws a class with 45% Open, 20% Rough, 30% Difficult and 5% Impassable.
func rollTerrain(rng *rand.Rand) Terrain {
	switch v := rng.Float64(); {
	case v < 0.20:
		return Rough
	case v < 0.50:
		return Difficult
	case v < 0.55:
		return Impassable
	default:
		return Open
	}
}

// Randomize re-rolls the terrain of every cell. Cells are visited in Coords order,
// so a seeded rng always produces the same map.
func (g *Grid) Randomize(rng *rand.Rand) {
	coords := g.Coords()
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range coords {
		cell := g.cells[c]
		cell.Terrain = rollTerrain(rng)
		cell.MoveCost = g.costs.Cost(cell.Terrain)
	}
}

// Expand grows the grid along the ring of the given radius around center.
// Ring coordinates with no cell get a new Impassable cell; existing cells are
// re-rolled uniformly among Open, Rough and Difficult. It returns the number of
// cells created.
func (g *Grid) Expand(center hexcoord.Coord, radius int, rng *rand.Rand) (int, error) {
	if !center.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCoord, center)
	}
	if radius < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	created := 0
	for _, c := range hexcoord.Ring(center, radius) {
		cell, ok := g.cells[c]
		if !ok {
			g.cells[c] = g.newCell(c, Impassable)
			created++
			continue
		}
		cell.Terrain = Terrain(rng.Intn(int(Impassable)))
		cell.MoveCost = g.costs.Cost(cell.Terrain)
	}

	return created, nil
}
