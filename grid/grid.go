package grid

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/hexpath/hexcoord"
)

// Grid is a mutable coordinate → cell map guarded by an RWMutex.
type Grid struct {
	mu              sync.RWMutex
	cells           map[hexcoord.Coord]*Cell
	costs           CostTable
	defaultCapacity int
}

// New creates an empty Grid. Without options it uses DefaultCostTable and DefaultCapacity.
func New(opts ...Option) *Grid {
	g := &Grid{
		cells:           make(map[hexcoord.Coord]*Cell),
		costs:           DefaultCostTable(),
		defaultCapacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewHexagon creates a hexagon-shaped grid of all cells within radius of the origin,
// each with terrain Open. It holds 3*radius*(radius+1)+1 cells.
func NewHexagon(radius int, opts ...Option) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	g := New(opts...)
	for _, c := range hexcoord.Disc(hexcoord.New(0, 0), radius) {
		g.cells[c] = g.newCell(c, Open)
	}

	return g, nil
}

// newCell builds a cell using the grid's cost table and default capacity.
func (g *Grid) newCell(c hexcoord.Coord, t Terrain) *Cell {
	return &Cell{
		Coord:             c,
		Terrain:           t,
		MoveCost:          g.costs.Cost(t),
		MaxWeightCapacity: g.defaultCapacity,
	}
}

// Costs returns the grid's terrain cost table.
func (g *Grid) Costs() CostTable {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.costs
}

// AddCell inserts a new cell with terrain t at c.
func (g *Grid) AddCell(c hexcoord.Coord, t Terrain) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidCoord, c)
	}
	if int(t) >= terrainCount {
		return fmt.Errorf("%w: %d", ErrUnknownTerrain, t)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.cells[c]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateCell, c)
	}
	g.cells[c] = g.newCell(c, t)

	return nil
}

// CellAt returns a copy of the cell at c. ok is false when c is not part of the grid.
func (g *Grid) CellAt(c hexcoord.Coord) (Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cell, ok := g.cells[c]
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// Contains reports whether c is part of the grid.
func (g *Grid) Contains(c hexcoord.Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cells[c]
	return ok
}

// NeighborsPresent returns the neighbors of c that exist in the grid, in direction order.
func (g *Grid) NeighborsPresent(c hexcoord.Coord) []hexcoord.Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]hexcoord.Coord, 0, len(hexcoord.Directions))
	for _, n := range hexcoord.Neighbors(c) {
		if _, ok := g.cells[n]; ok {
			out = append(out, n)
		}
	}

	return out
}

// NeighborCount returns how many of c's six neighbors exist.
func (g *Grid) NeighborCount(c hexcoord.Coord) int {
	return len(g.NeighborsPresent(c))
}

// AcceptsWeight applies the weight-acceptance rule at c. Missing cells never accept.
func (g *Grid) AcceptsWeight(c hexcoord.Coord, unitWeight int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cell, ok := g.cells[c]
	if !ok {
		return false
	}
	return cell.AcceptsWeight(unitWeight)
}

// MoveCost returns the cost of entering c, or InfiniteCost if c is impassable or missing.
func (g *Grid) MoveCost(c hexcoord.Coord) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cell, ok := g.cells[c]
	if !ok {
		return InfiniteCost
	}
	return cell.MoveCost
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cells)
}

// MaxNodes is the most search nodes a single query can create: one per cell.
func (g *Grid) MaxNodes() int { return g.Len() }

// Coords returns every cell coordinate sorted by (q, r).
func (g *Grid) Coords() []hexcoord.Coord {
	g.mu.RLock()
	out := make([]hexcoord.Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	g.mu.RUnlock()
	sortCoords(out)

	return out
}

// SetTerrain changes the terrain at c and recomputes its move cost.
func (g *Grid) SetTerrain(c hexcoord.Coord, t Terrain) error {
	if int(t) >= terrainCount {
		return fmt.Errorf("%w: %d", ErrUnknownTerrain, t)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, ok := g.cells[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	cell.Terrain = t
	cell.MoveCost = g.costs.Cost(t)

	return nil
}

// CycleTerrain advances the terrain at c to the next class and returns it.
func (g *Grid) CycleTerrain(c hexcoord.Coord) (Terrain, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, ok := g.cells[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	cell.Terrain = cell.Terrain.Next()
	cell.MoveCost = g.costs.Cost(cell.Terrain)

	return cell.Terrain, nil
}

// AdjustWeight adds delta to the current weight at c, clamping the result at zero.
// It returns the new weight.
func (g *Grid) AdjustWeight(c hexcoord.Coord, delta int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, ok := g.cells[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	cell.CurrentWeight = max(0, cell.CurrentWeight+delta)

	return cell.CurrentWeight, nil
}

// SetCapacity sets MaxWeightCapacity at c.
func (g *Grid) SetCapacity(c hexcoord.Coord, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, ok := g.cells[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	cell.MaxWeightCapacity = capacity

	return nil
}

// Snapshot returns a deep copy that later mutations of g do not affect.
func (g *Grid) Snapshot() *Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cp := &Grid{
		cells:           make(map[hexcoord.Coord]*Cell, len(g.cells)),
		costs:           g.costs,
		defaultCapacity: g.defaultCapacity,
	}
	for c, cell := range g.cells {
		dup := *cell
		cp.cells[c] = &dup
	}

	return cp
}

func sortCoords(cs []hexcoord.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Q != cs[j].Q {
			return cs[i].Q < cs[j].Q
		}
		return cs[i].R < cs[j].R
	})
}
