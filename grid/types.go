package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/hexpath/hexcoord"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidCoord indicates a coordinate with q + r + s != 0.
	ErrInvalidCoord = errors.New("grid: invalid cube coordinate")

	// ErrDuplicateCell indicates a cell already exists at the coordinate.
	ErrDuplicateCell = errors.New("grid: cell already exists")

	// ErrCellNotFound indicates no cell exists at the coordinate.
	ErrCellNotFound = errors.New("grid: cell not found")

	// ErrBadRadius indicates a negative radius.
	ErrBadRadius = errors.New("grid: radius must be non-negative")

	// ErrNegativeCapacity indicates a weight capacity below zero.
	ErrNegativeCapacity = errors.New("grid: weight capacity must be non-negative")

	// ErrNonPositiveCost indicates a terrain cost below 1.
	ErrNonPositiveCost = errors.New("grid: terrain cost must be positive")

	// ErrCostTooLarge indicates a terrain cost above MaxCost.
	ErrCostTooLarge = errors.New("grid: terrain cost exceeds MaxCost")

	// ErrEmptyCostTable indicates WithCostTable was given the zero CostTable.
	ErrEmptyCostTable = errors.New("grid: cost table is the zero value")

	// ErrMissingCost indicates a passable terrain class has no cost entry.
	ErrMissingCost = errors.New("grid: missing cost for passable terrain")

	// ErrUnknownTerrain indicates an unrecognized terrain name.
	ErrUnknownTerrain = errors.New("grid: unknown terrain")
)

// InfiniteCost is the move cost reported for impassable or missing cells.
const InfiniteCost = math.MaxInt

// MaxCost bounds a single terrain cost. Path costs are sums of cell costs, and
// MaxCost times any realistic cell count stays far below math.MaxInt.
const MaxCost = 1 << 24

// DefaultCapacity is the weight capacity given to new cells unless overridden.
const DefaultCapacity = 10

// Terrain is one of the four traversal tiers.
type Terrain uint8

const (
	Open       Terrain = iota // cheapest ground
	Rough                     // slower ground
	Difficult                 // slowest passable ground
	Impassable                // never traversable
)

// terrainCount is the number of Terrain classes.
const terrainCount = 4

var terrainNames = [terrainCount]string{"open", "rough", "difficult", "impassable"}

// String returns the lower-case name of t.
func (t Terrain) String() string {
	if int(t) < terrainCount {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// Next returns the class after t in the cycle Open → Rough → Difficult → Impassable → Open.
func (t Terrain) Next() Terrain {
	return Terrain((int(t) + 1) % terrainCount)
}

// ParseTerrain maps a case-insensitive name to its Terrain.
func ParseTerrain(name string) (Terrain, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range terrainNames {
		if s == n {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}

// CostTable maps each terrain class to the cost of entering a cell of that class.
// The zero value is not usable; build one with NewCostTable or DefaultCostTable.
type CostTable struct {
	costs      [terrainCount]int
	impassable [terrainCount]bool
}

// NewCostTable validates costs for every class not listed as impassable.
// Impassable is always added to the impassable set. Costs must lie in [1, MaxCost]:
// the lower bound keeps the hex-distance heuristic admissible, the upper bound keeps
// path sums from overflowing.
func NewCostTable(costs map[Terrain]int, impassable ...Terrain) (CostTable, error) {
	var ct CostTable
	ct.impassable[Impassable] = true
	for _, t := range impassable {
		if int(t) >= terrainCount {
			return CostTable{}, fmt.Errorf("%w: %d", ErrUnknownTerrain, t)
		}
		ct.impassable[t] = true
	}
	for t, c := range costs {
		if int(t) >= terrainCount {
			return CostTable{}, fmt.Errorf("%w: %d", ErrUnknownTerrain, t)
		}
		if ct.impassable[t] {
			continue
		}
		if c < 1 {
			return CostTable{}, fmt.Errorf("%w: %s=%d", ErrNonPositiveCost, t, c)
		}
		if c > MaxCost {
			return CostTable{}, fmt.Errorf("%w: %s=%d", ErrCostTooLarge, t, c)
		}
		ct.costs[t] = c
	}
	for i := 0; i < terrainCount; i++ {
		if ct.impassable[i] {
			ct.costs[i] = InfiniteCost
			continue
		}
		if ct.costs[i] == 0 {
			return CostTable{}, fmt.Errorf("%w: %s", ErrMissingCost, Terrain(i))
		}
	}

	return ct, nil
}

// DefaultCostTable returns Open=1, Rough=2, Difficult=3, Impassable=∞.
func DefaultCostTable() CostTable {
	ct, err := NewCostTable(map[Terrain]int{Open: 1, Rough: 2, Difficult: 3})
	if err != nil {
		panic(err)
	}
	return ct
}

// Cost returns the move cost of t, or InfiniteCost when t is impassable.
func (ct CostTable) Cost(t Terrain) int {
	if int(t) >= terrainCount || ct.impassable[t] {
		return InfiniteCost
	}
	return ct.costs[t]
}

// IsImpassable reports whether t can never be entered.
func (ct CostTable) IsImpassable(t Terrain) bool {
	return int(t) >= terrainCount || ct.impassable[t]
}

// Cell is a snapshot of one hex cell's state.
type Cell struct {
	Coord             hexcoord.Coord
	Terrain           Terrain
	MoveCost          int // InfiniteCost when impassable
	CurrentWeight     int
	MaxWeightCapacity int
}

// Passable reports whether the cell's move cost is finite.
func (c Cell) Passable() bool { return c.MoveCost != InfiniteCost }

// AcceptsWeight applies the weight-acceptance rule to a unit of weight w.
func (c Cell) AcceptsWeight(w int) bool {
	if !c.Passable() {
		return false
	}
	// Written as a difference: current + w can overflow for huge w.
	if w <= c.MaxWeightCapacity-c.CurrentWeight {
		return true
	}
	// Overloaded: only units lighter than 2 may still enter.
	return w < 2
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithCostTable sets the terrain cost table used for every cell.
// Panics with ErrEmptyCostTable if ct is the zero value.
func WithCostTable(ct CostTable) Option {
	return func(g *Grid) {
		if ct == (CostTable{}) {
			panic(ErrEmptyCostTable.Error())
		}
		g.costs = ct
	}
}

// WithDefaultCapacity sets MaxWeightCapacity for newly added cells.
// Panics with ErrNegativeCapacity if capacity < 0.
func WithDefaultCapacity(capacity int) Option {
	return func(g *Grid) {
		if capacity < 0 {
			panic(ErrNegativeCapacity.Error())
		}
		g.defaultCapacity = capacity
	}
}
