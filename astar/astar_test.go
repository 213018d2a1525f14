// Package astar_test covers the pathfinder's public behaviour: the reference
// scenarios, validation errors, weight filtering, terrain costs, iteration cap,
// and optimality against an exhaustive reference search on random grids.
package astar_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/hexpath/astar"
	"github.com/katalvlaran/hexpath/grid"
	"github.com/katalvlaran/hexpath/hexcoord"
)

// quiet discards log output so tests stay readable.
var quiet = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

// lineGrid builds the three-cell line (0,0,0)-(1,-1,0)-(2,-2,0), all Open.
func lineGrid(t *testing.T) (*grid.Grid, []hexcoord.Coord) {
	t.Helper()
	g := grid.New()
	line := []hexcoord.Coord{hexcoord.Cube(0, 0, 0), hexcoord.Cube(1, -1, 0), hexcoord.Cube(2, -2, 0)}
	for _, c := range line {
		require.NoError(t, g.AddCell(c, grid.Open))
	}
	return g, line
}

func newPathfinder(t *testing.T, g astar.Grid, opts ...astar.Option) *astar.Pathfinder {
	t.Helper()
	opts = append([]astar.Option{astar.WithLogger(quiet), astar.WithStrictConsistency()}, opts...)
	pf, err := astar.New(g, opts...)
	require.NoError(t, err)
	return pf
}

// pathCost sums the move cost of every cell after the first.
func pathCost(g *grid.Grid, path []hexcoord.Coord) int {
	total := 0
	for _, c := range path[1:] {
		total += g.MoveCost(c)
	}
	return total
}

// requireWalkable checks adjacency, existence, and weight acceptance along path.
func requireWalkable(t *testing.T, g *grid.Grid, path []hexcoord.Coord, w int) {
	t.Helper()
	for i, c := range path {
		_, ok := g.CellAt(c)
		require.True(t, ok, "path cell %v not in grid", c)
		if i == 0 {
			continue
		}
		require.Equal(t, 1, hexcoord.Distance(path[i-1], c), "step %d is not adjacent", i)
		require.True(t, g.AcceptsWeight(c, w), "cell %v rejects weight %d", c, w)
		require.NotEqual(t, grid.InfiniteCost, g.MoveCost(c), "impassable cell %v in path", c)
	}
}

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

func TestNew_NilGrid(t *testing.T) {
	pf, err := astar.New(nil)
	assert.Nil(t, pf)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	_, err = astar.FindPath(nil, hexcoord.New(0, 0), hexcoord.New(0, 0), 1)
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

func TestWithMaxIterations_Panics(t *testing.T) {
	g, _ := lineGrid(t)
	assert.Panics(t, func() { _, _ = astar.New(g, astar.WithMaxIterations(0)) })
	assert.Panics(t, func() { _, _ = astar.New(g, astar.WithMaxIterations(-5)) })
}

func TestFindPath_InvalidEndpoints(t *testing.T) {
	g, line := lineGrid(t)
	pf := newPathfinder(t, g)

	cases := []struct {
		name       string
		start, end hexcoord.Coord
		weight     int
		err        error
	}{
		{"StartNotInGrid", hexcoord.New(5, 5), line[2], 1, astar.ErrInvalidEndpoint},
		{"EndNotInGrid", line[0], hexcoord.New(-4, 0), 1, astar.ErrInvalidEndpoint},
		{"StartNotCube", hexcoord.Cube(1, 0, 0), line[2], 1, astar.ErrInvalidEndpoint},
		{"EndNotCube", line[0], hexcoord.Cube(2, -2, 1), 1, astar.ErrInvalidEndpoint},
		{"NegativeWeight", line[0], line[2], -1, astar.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pf.FindPath(tc.start, tc.end, tc.weight)
			require.ErrorIs(t, err, tc.err)
			assert.False(t, errors.Is(err, astar.ErrNoPath))
			assert.Equal(t, astar.OutcomeRejected, res.Outcome)
			assert.Nil(t, res.Path)
			assert.Zero(t, res.Iterations)
		})
	}
}

//----------------------------------------------------------------------------//
// Reference scenarios
//----------------------------------------------------------------------------//

func TestFindPath_LineGrid(t *testing.T) {
	g, line := lineGrid(t)
	res, err := newPathfinder(t, g).FindPath(line[0], line[2], 1)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, line, res.Path)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, 3, res.Iterations)
}

func TestFindPath_LineGridBlocked(t *testing.T) {
	g, line := lineGrid(t)
	require.NoError(t, g.SetTerrain(line[1], grid.Impassable))

	res, err := newPathfinder(t, g).FindPath(line[0], line[2], 1)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.False(t, errors.Is(err, astar.ErrIterationCap))
	assert.Equal(t, astar.OutcomeExhausted, res.Outcome)
	assert.Nil(t, res.Path)
	assert.Equal(t, 1, res.Iterations)
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	g, line := lineGrid(t)
	res, err := newPathfinder(t, g).FindPath(line[1], line[1], 9)
	require.NoError(t, err)
	assert.Equal(t, []hexcoord.Coord{line[1]}, res.Path)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 0, res.Iterations, "no queue operations")
}

func TestFindPath_ImpassableEndpoints(t *testing.T) {
	g, line := lineGrid(t)
	pf := newPathfinder(t, g)

	// An impassable goal is never relaxed.
	require.NoError(t, g.SetTerrain(line[2], grid.Impassable))
	_, err := pf.FindPath(line[0], line[2], 1)
	assert.ErrorIs(t, err, astar.ErrNoPath)

	// An impassable start is not re-validated; its neighbors are still explored.
	require.NoError(t, g.SetTerrain(line[2], grid.Open))
	require.NoError(t, g.SetTerrain(line[0], grid.Impassable))
	res, err := pf.FindPath(line[0], line[2], 1)
	require.NoError(t, err)
	assert.Equal(t, line, res.Path)
}

//----------------------------------------------------------------------------//
// Weight capacity and terrain cost
//----------------------------------------------------------------------------//

// TestFindPath_WeightDetour fills the straight-line middle cell so heavy units
// must detour while light units use the overload exception.
func TestFindPath_WeightDetour(t *testing.T) {
	g, err := grid.NewHexagon(2)
	require.NoError(t, err)
	start, end := hexcoord.New(-1, 0), hexcoord.New(1, 0)
	mid := hexcoord.New(0, 0)
	require.NoError(t, g.SetCapacity(mid, 4))
	_, err = g.AdjustWeight(mid, 4)
	require.NoError(t, err)
	pf := newPathfinder(t, g)

	light, err := pf.FindPath(start, end, 1)
	require.NoError(t, err)
	assert.Equal(t, []hexcoord.Coord{start, mid, end}, light.Path)
	assert.Equal(t, 2, light.Cost)

	heavy, err := pf.FindPath(start, end, 3)
	require.NoError(t, err)
	assert.NotContains(t, heavy.Path, mid)
	assert.Equal(t, 3, heavy.Cost)
	requireWalkable(t, g, heavy.Path, 3)
}

func TestFindPath_WeightBlocksEntirely(t *testing.T) {
	g, line := lineGrid(t)
	require.NoError(t, g.SetCapacity(line[1], 2))
	pf := newPathfinder(t, g)

	_, err := pf.FindPath(line[0], line[2], 3)
	assert.ErrorIs(t, err, astar.ErrNoPath)

	// Capacity that fits the unit exactly is fine.
	res, err := pf.FindPath(line[0], line[2], 2)
	require.NoError(t, err)
	assert.Equal(t, line, res.Path)
}

func TestFindPath_PrefersCheapTerrain(t *testing.T) {
	g, err := grid.NewHexagon(2)
	require.NoError(t, err)
	start, end := hexcoord.New(-2, 0), hexcoord.New(2, 0)
	// Straight row r == 0 is Difficult (cost 3); the detour through r == -1 stays Open.
	for q := -1; q <= 1; q++ {
		require.NoError(t, g.SetTerrain(hexcoord.New(q, 0), grid.Difficult))
	}
	res, err := newPathfinder(t, g).FindPath(start, end, 1)
	require.NoError(t, err)
	requireWalkable(t, g, res.Path, 1)
	assert.Equal(t, pathCost(g, res.Path), res.Cost)
	assert.Equal(t, 5, res.Cost, "five Open steps beat four steps with three Difficult cells")
}

// hugeCostGrid reports a move cost near math.MaxInt/2 for every passable cell.
type hugeCostGrid struct{ *grid.Grid }

func (h hugeCostGrid) MoveCost(c hexcoord.Coord) int {
	if cost := h.Grid.MoveCost(c); cost == grid.InfiniteCost {
		return cost
	}
	return math.MaxInt/2 + 1
}

// TestFindPath_CostOverflowIsNotAPath checks that a second huge step, whose sum
// would wrap negative, is never taken.
func TestFindPath_CostOverflowIsNotAPath(t *testing.T) {
	g, line := lineGrid(t)
	pf := newPathfinder(t, hugeCostGrid{g})

	res, err := pf.FindPath(line[0], line[1], 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/2+1, res.Cost)

	res, err = pf.FindPath(line[0], line[2], 1)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Nil(t, res.Path)
	assert.Zero(t, res.Cost)
}

//----------------------------------------------------------------------------//
// Iteration cap and logging
//----------------------------------------------------------------------------//

func TestFindPath_IterationCap(t *testing.T) {
	g, err := grid.NewHexagon(8)
	require.NoError(t, err)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pf, err := astar.New(g, astar.WithMaxIterations(3), astar.WithLogger(logger))
	require.NoError(t, err)

	res, err := pf.FindPath(hexcoord.New(-8, 0), hexcoord.New(8, 0), 1)
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.ErrorIs(t, err, astar.ErrIterationCap)
	assert.Equal(t, astar.OutcomeIterationCap, res.Outcome)
	assert.Equal(t, 3, res.Iterations)
	assert.Contains(t, buf.String(), "iteration cap reached")
}

func TestFindPath_ExhaustionLoggedSeparately(t *testing.T) {
	g, line := lineGrid(t)
	require.NoError(t, g.SetTerrain(line[1], grid.Impassable))
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pf, err := astar.New(g, astar.WithLogger(logger))
	require.NoError(t, err)

	_, err = pf.FindPath(line[0], line[2], 1)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Contains(t, buf.String(), "no path")
	assert.NotContains(t, buf.String(), "iteration cap")
}

func TestFindPathContext_CancelledBeforeStart(t *testing.T) {
	g, line := lineGrid(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := newPathfinder(t, g).FindPathContext(ctx, line[0], line[2], 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.OutcomeRejected, res.Outcome)
}

func TestFindPath_WithTracer(t *testing.T) {
	g, line := lineGrid(t)
	pf := newPathfinder(t, g, astar.WithTracer(noop.NewTracerProvider().Tracer("test")))
	res, err := pf.FindPath(line[0], line[2], 1)
	require.NoError(t, err)
	assert.Len(t, res.Path, 3)
}

//----------------------------------------------------------------------------//
// Optimality against a reference search
//----------------------------------------------------------------------------//

// referenceCost is a plain O(N²) Dijkstra over the same traversal rules.
// It returns -1 when end is unreachable.
func referenceCost(g *grid.Grid, start, end hexcoord.Coord, w int) int {
	const unset = -1
	dist := map[hexcoord.Coord]int{start: 0}
	done := map[hexcoord.Coord]bool{}
	for {
		best, bestD := hexcoord.Coord{}, unset
		for c, d := range dist {
			if done[c] {
				continue
			}
			if bestD == unset || d < bestD || (d == bestD && lessCoord(c, best)) {
				best, bestD = c, d
			}
		}
		if bestD == unset {
			return unset
		}
		if best == end {
			return bestD
		}
		done[best] = true
		for _, n := range g.NeighborsPresent(best) {
			if done[n] || !g.AcceptsWeight(n, w) || g.MoveCost(n) == grid.InfiniteCost {
				continue
			}
			nd := bestD + g.MoveCost(n)
			if old, ok := dist[n]; !ok || nd < old {
				dist[n] = nd
			}
		}
	}
}

func lessCoord(a, b hexcoord.Coord) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}

func TestFindPath_OptimalOnRandomGrids(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := grid.NewHexagon(5)
		require.NoError(t, err)
		g.Randomize(rng)
		coords := g.Coords()
		for i := 0; i < 12; i++ {
			c := coords[rng.Intn(len(coords))]
			require.NoError(t, g.SetCapacity(c, rng.Intn(6)))
			_, err = g.AdjustWeight(c, rng.Intn(6))
			require.NoError(t, err)
		}
		pf := newPathfinder(t, g)

		for q := 0; q < 10; q++ {
			start := coords[rng.Intn(len(coords))]
			end := coords[rng.Intn(len(coords))]
			w := rng.Intn(4)
			want := referenceCost(g, start, end, w)

			res, err := pf.FindPath(start, end, w)
			if want < 0 {
				require.ErrorIs(t, err, astar.ErrNoPath, "seed %d: %v→%v w=%d", seed, start, end, w)
				continue
			}
			require.NoError(t, err, "seed %d: %v→%v w=%d", seed, start, end, w)
			require.Equal(t, want, res.Cost, "seed %d: %v→%v w=%d", seed, start, end, w)
			require.Equal(t, start, res.Path[0])
			require.Equal(t, end, res.Path[len(res.Path)-1])
			require.Equal(t, res.Cost, pathCost(g, res.Path))
			requireWalkable(t, g, res.Path, w)
		}
	}
}

// TestFindPath_FreshStatePerCall runs the same query repeatedly on one Pathfinder
// and interleaves a failing query; no state may leak between calls.
func TestFindPath_FreshStatePerCall(t *testing.T) {
	g, err := grid.NewHexagon(3)
	require.NoError(t, err)
	pf := newPathfinder(t, g)
	start, end := hexcoord.New(-3, 0), hexcoord.New(3, 0)

	first, err := pf.FindPath(start, end, 1)
	require.NoError(t, err)
	_, err = pf.FindPath(start, hexcoord.New(9, 9), 1)
	require.ErrorIs(t, err, astar.ErrInvalidEndpoint)
	second, err := pf.FindPath(start, end, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
