// Package astar computes lowest-cost paths between two cells of a hex grid.
//
// Overview:
//
//   - A* over cube coordinates with the hex distance as heuristic.
//   - A neighbor is relaxed only if it exists, accepts the unit's weight
//     (grid weight-acceptance rule, including the light-unit overload exception)
//     and has a finite move cost. Impassable cells therefore never appear in a path.
//   - The open set is an indexed min-heap (package pqueue) ordered by
//     f = g + h, ties broken by smaller h, with in-place decrease-key.
//   - Each search owns its node arena, registry, closed flags and open set. Nothing
//     survives between calls, and a failed search leaves no state behind.
//
// Heuristic assumption:
//
//	The hex distance counts steps, i.e. it assumes every move costs at least 1.
//	grid.CostTable rejects costs below 1, which keeps the heuristic admissible and
//	consistent, so closed nodes never need re-expansion and found paths are optimal.
//
// Re-acceptance rule:
//
//	A neighbor is (re)inserted when it is seen for the first time, when the new
//	cost is strictly better, or when it is not currently in the open set. The last
//	branch can accept a worse cost for a node that is registered but not queued.
//
// Termination:
//
//   - OutcomeFound:        goal popped; path rebuilt by walking parent indices.
//   - OutcomeExhausted:    open set empty; ErrNoPath.
//   - OutcomeIterationCap: MaxIterations pops done; ErrNoPath wrapping ErrIterationCap.
//     Logged at warn level and counted under its own metrics label.
//   - OutcomeInconsistent: broken bookkeeping (for example a parent missing during
//     reconstruction); panics with WithStrictConsistency, otherwise logged at error
//     level and returned as ErrNoPath wrapping ErrInternalInconsistency.
//   - OutcomeRejected:     invalid query (ErrInvalidEndpoint, ErrNegativeWeight);
//     nothing was searched.
//
// start == end returns a one-cell path of cost 0 without touching the open set.
// Endpoint terrain is not re-checked: an impassable end is simply never relaxed,
// which yields ErrNoPath.
//
// Complexity:
//
//   - Time:  O(N log N) with N = cells visited (each popped once, each push/decrease O(log N)).
//   - Space: O(N) for the arena, registry and open set.
//
// Observability:
//
//   - log/slog: component=astar logger, replaceable with WithLogger.
//   - Prometheus: NewMetrics(registerer) + WithMetrics.
//   - OpenTelemetry: one "astar.FindPath" span per search.
//
// Thread safety:
//
//	A Pathfinder is safe for concurrent FindPath calls as long as the grid is not
//	mutated meanwhile. FindPaths runs a batch concurrently with a bounded worker group.
//
// Example usage:
//
//	g, _ := grid.NewHexagon(5)
//	pf, _ := astar.New(g)
//	res, err := pf.FindPath(hexcoord.New(-5, 0), hexcoord.New(5, 0), 1)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable for this unit
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
