// Package astar implements A* search over a hex grid with weight-capacity filtering.
//
// Notes on implementation choices:
//
//   - Search nodes live in a per-call arena (a slice). Nodes are referred to by
//     their arena index: the open set queues indices, parents are indices, and a
//     registry maps coordinate → index.
//   - The open set is a pqueue.Queue with true decrease-key, so every node has at
//     most one open entry.
//   - A node is closed when popped and never expanded again.
//   - Neighbor re-acceptance keeps the permissive rule
//     `first visit || tentative < g || not in open set`.
package astar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hexpath/grid"
	"github.com/katalvlaran/hexpath/hexcoord"
	"github.com/katalvlaran/hexpath/pqueue"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/katalvlaran/hexpath/astar"

// noParent marks the start node (and any node whose parent is not yet known).
const noParent = -1

// Pathfinder runs A* queries against one Grid. It holds only configuration, so a
// single Pathfinder may serve concurrent queries; each query builds its own state.
type Pathfinder struct {
	grid    Grid
	options Options
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New builds a Pathfinder for g.
func New(g Grid, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default().With(slog.String("component", "astar"))
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}

	return &Pathfinder{
		grid:    g,
		options: cfg,
		logger:  cfg.Logger,
		tracer:  cfg.Tracer,
	}, nil
}

// FindPath is a one-shot helper: New(g, opts...) followed by FindPath.
func FindPath(g Grid, start, end hexcoord.Coord, unitWeight int, opts ...Option) (Result, error) {
	pf, err := New(g, opts...)
	if err != nil {
		return Result{Outcome: OutcomeRejected}, err
	}
	return pf.FindPath(start, end, unitWeight)
}

// FindPath searches for a cheapest path from start to end for a unit of unitWeight.
//
// Returns:
//
//   - On success: Result with Path (start..end inclusive), Cost and Iterations; nil error.
//   - ErrInvalidEndpoint / ErrNegativeWeight: the query was rejected before searching.
//   - ErrNoPath: the goal was not reached. errors.Is(err, ErrIterationCap) tells a
//     capped search apart from an exhausted one; errors.Is(err, ErrInternalInconsistency)
//     flags broken bookkeeping.
func (pf *Pathfinder) FindPath(start, end hexcoord.Coord, unitWeight int) (Result, error) {
	return pf.FindPathContext(context.Background(), start, end, unitWeight)
}

// FindPathContext is FindPath with a context carrying the trace parent.
// The context is checked once before the search starts; a running search is not
// interrupted (the iteration cap is its only bound).
func (pf *Pathfinder) FindPathContext(ctx context.Context, start, end hexcoord.Coord, unitWeight int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Outcome: OutcomeRejected}, err
	}
	_, span := pf.tracer.Start(ctx, "astar.FindPath", trace.WithAttributes(
		attribute.String("hexpath.start", start.String()),
		attribute.String("hexpath.end", end.String()),
		attribute.Int("hexpath.unit_weight", unitWeight),
	))
	defer span.End()

	began := time.Now()
	res, err := pf.search(start, end, unitWeight)
	elapsed := time.Since(began)

	span.SetAttributes(
		attribute.String("hexpath.outcome", res.Outcome.String()),
		attribute.Int("hexpath.iterations", res.Iterations),
		attribute.Int("hexpath.path_length", len(res.Path)),
	)
	switch res.Outcome {
	case OutcomeRejected, OutcomeInconsistent:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	default:
		span.SetStatus(codes.Ok, "")
	}
	pf.options.Metrics.observe(res, elapsed)

	return res, err
}

// search validates the query and runs A*.
func (pf *Pathfinder) search(start, end hexcoord.Coord, unitWeight int) (Result, error) {
	if unitWeight < 0 {
		return Result{Outcome: OutcomeRejected}, fmt.Errorf("%w: %d", ErrNegativeWeight, unitWeight)
	}
	for _, c := range [2]hexcoord.Coord{start, end} {
		if !c.Valid() {
			return Result{Outcome: OutcomeRejected}, fmt.Errorf("%w: %v fails q+r+s=0", ErrInvalidEndpoint, c)
		}
		if _, ok := pf.grid.CellAt(c); !ok {
			return Result{Outcome: OutcomeRejected}, fmt.Errorf("%w: %v not in grid", ErrInvalidEndpoint, c)
		}
	}
	if start == end {
		return Result{Path: []hexcoord.Coord{start}, Outcome: OutcomeFound}, nil
	}

	r := newRunner(pf.grid, end, unitWeight)
	res := Result{}
	goal, outcome, err := r.run(start, pf.options.MaxIterations)
	res.Iterations = r.iterations
	res.Outcome = outcome

	switch outcome {
	case OutcomeFound:
		path, perr := r.reconstruct(goal)
		if perr != nil {
			res.Outcome = OutcomeInconsistent
			return res, pf.inconsistent(start, end, perr)
		}
		res.Path = path
		res.Cost = r.nodes[goal].g
		pf.logger.Debug("path found",
			slog.String("start", start.String()),
			slog.String("end", end.String()),
			slog.Int("cost", res.Cost),
			slog.Int("iterations", res.Iterations))
		return res, nil

	case OutcomeIterationCap:
		pf.logger.Warn("iteration cap reached",
			slog.String("start", start.String()),
			slog.String("end", end.String()),
			slog.Int("max_iterations", pf.options.MaxIterations),
			slog.Int("open", r.open.Len()))
		return res, fmt.Errorf("%w (%w): limit %d", ErrNoPath, ErrIterationCap, pf.options.MaxIterations)

	case OutcomeInconsistent:
		return res, pf.inconsistent(start, end, err)

	default:
		pf.logger.Debug("no path",
			slog.String("start", start.String()),
			slog.String("end", end.String()),
			slog.Int("iterations", res.Iterations))
		return res, fmt.Errorf("%w: open set exhausted after %d iterations", ErrNoPath, res.Iterations)
	}
}

// inconsistent reports broken bookkeeping: panic in strict mode, otherwise log it
// and hand back an error matching both ErrNoPath and ErrInternalInconsistency.
func (pf *Pathfinder) inconsistent(start, end hexcoord.Coord, cause error) error {
	err := fmt.Errorf("%w (%w): %v", ErrNoPath, ErrInternalInconsistency, cause)
	if pf.options.Strict {
		panic(err)
	}
	pf.logger.Error("internal inconsistency",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.String("error", cause.Error()))

	return err
}

// node is one arena entry.
type node struct {
	coord  hexcoord.Coord
	g      int // best known cost from start
	h      int // hex distance to end
	parent int // arena index, or noParent
	closed bool
}

// runner holds the mutable state of a single search. It is never shared.
type runner struct {
	grid       Grid
	end        hexcoord.Coord
	weight     int
	nodes      []node
	index      map[hexcoord.Coord]int // registry: coordinate → arena index
	open       *pqueue.Queue
	iterations int
}

func newRunner(g Grid, end hexcoord.Coord, unitWeight int) *runner {
	hint := g.MaxNodes()
	r := &runner{
		grid:   g,
		end:    end,
		weight: unitWeight,
		nodes:  make([]node, 0, hint),
		index:  make(map[hexcoord.Coord]int, hint),
	}
	r.open = pqueue.New(r.less, pqueue.WithCapacity(hint))

	return r
}

// less orders by f = g + h, then by h.
func (r *runner) less(a, b int) bool {
	na, nb := &r.nodes[a], &r.nodes[b]
	fa, fb := na.g+na.h, nb.g+nb.h
	if fa != fb {
		return fa < fb
	}
	return na.h < nb.h
}

// add registers a fresh node for c and returns its arena index.
func (r *runner) add(c hexcoord.Coord) int {
	id := len(r.nodes)
	r.nodes = append(r.nodes, node{coord: c, parent: noParent})
	r.index[c] = id

	return id
}

// run expands nodes until the goal is popped, the open set empties, or
// maxIterations pops have happened. It returns the goal's arena index on success.
func (r *runner) run(start hexcoord.Coord, maxIterations int) (int, Outcome, error) {
	sid := r.add(start)
	r.nodes[sid].h = hexcoord.Distance(start, r.end)
	if err := r.open.Push(sid); err != nil {
		return 0, OutcomeInconsistent, err
	}

	for r.open.Len() > 0 {
		if r.iterations >= maxIterations {
			return 0, OutcomeIterationCap, nil
		}
		r.iterations++

		id, err := r.open.Pop()
		if err != nil {
			return 0, OutcomeInconsistent, err
		}
		if r.nodes[id].coord == r.end {
			return id, OutcomeFound, nil
		}
		r.nodes[id].closed = true
		if err = r.relax(id); err != nil {
			return 0, OutcomeInconsistent, err
		}
	}

	return 0, OutcomeExhausted, nil
}

// relax looks at every existing neighbor of node id that accepts the unit and can
// be entered, and inserts or decreases it in the open set when the rule allows.
func (r *runner) relax(id int) error {
	cur := r.nodes[id]
	for _, nc := range r.grid.NeighborsPresent(cur.coord) {
		if !r.grid.AcceptsWeight(nc, r.weight) {
			continue
		}
		cost := r.grid.MoveCost(nc)
		if cost == grid.InfiniteCost || cost > grid.InfiniteCost-cur.g {
			// Unenterable, or cur.g+cost would overflow.
			continue
		}
		nid, seen := r.index[nc]
		if seen && r.nodes[nid].closed {
			continue
		}

		tentative := cur.g + cost
		if !seen {
			nid = r.add(nc)
		}
		queued := r.open.Contains(nid)
		if seen && tentative >= r.nodes[nid].g && queued {
			continue
		}

		n := &r.nodes[nid]
		n.parent = id
		n.g = tentative
		n.h = hexcoord.Distance(nc, r.end)
		if queued {
			if err := r.open.Decrease(nid); err != nil {
				return err
			}
			continue
		}
		if err := r.open.Push(nid); err != nil {
			return err
		}
	}

	return nil
}

// reconstruct walks parent links from goal back to the start node (arena index 0)
// and returns the coordinates in start → goal order.
func (r *runner) reconstruct(goal int) ([]hexcoord.Coord, error) {
	var path []hexcoord.Coord
	id := goal
	for steps := 0; ; steps++ {
		if steps > len(r.nodes) {
			return nil, fmt.Errorf("parent chain from %v loops", r.nodes[goal].coord)
		}
		path = append(path, r.nodes[id].coord)
		if id == 0 {
			break
		}
		parent := r.nodes[id].parent
		if parent == noParent {
			return nil, fmt.Errorf("node %v has no parent before reaching start", r.nodes[id].coord)
		}
		id = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
