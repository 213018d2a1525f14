package astar

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexpath/hexcoord"
)

// Query is one path request for FindPaths.
type Query struct {
	Start      hexcoord.Coord
	End        hexcoord.Coord
	UnitWeight int
}

// BatchResult pairs a Query with its outcome. Err holds the per-query error
// (ErrNoPath, ErrInvalidEndpoint, ...) exactly as FindPath would return it.
type BatchResult struct {
	Query  Query
	Result Result
	Err    error
}

// FindPaths runs independent queries concurrently, at most limit at a time
// (limit <= 0 means no bound). Results are returned in query order.
//
// Each query builds its own open set, arena and registry, so queries never share
// search state. The grid is only read; callers that keep mutating it should pass
// a Pathfinder built over a grid Snapshot.
//
// Per-query failures do not stop the batch. The returned error is non-nil only
// when ctx is cancelled; every query that observed the cancellation carries
// ctx.Err() with OutcomeRejected.
func (pf *Pathfinder) FindPaths(ctx context.Context, queries []Query, limit int) ([]BatchResult, error) {
	out := make([]BatchResult, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, q := range queries {
		i, q := i, q
		out[i].Query = q
		eg.Go(func() error {
			res, err := pf.FindPathContext(egCtx, q.Start, q.End, q.UnitWeight)
			out[i].Result = res
			out[i].Err = err
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
