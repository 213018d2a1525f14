package astar

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hexpath/grid"
	"github.com/katalvlaran/hexpath/hexcoord"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrNilGrid indicates New was given a nil Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates start or end is not a valid cube coordinate
	// or is not part of the grid. Reported before any search work.
	ErrInvalidEndpoint = errors.New("astar: endpoint is invalid or not in grid")

	// ErrNegativeWeight indicates a unit weight below zero.
	ErrNegativeWeight = errors.New("astar: unit weight must be non-negative")

	// ErrNoPath indicates the search ended without reaching the goal.
	// It is an ordinary negative result; Result.Outcome tells why.
	ErrNoPath = errors.New("astar: no path found")

	// ErrIterationCap accompanies ErrNoPath when the iteration cap stopped the search
	// before the open set was exhausted.
	ErrIterationCap = errors.New("astar: iteration cap reached")

	// ErrInternalInconsistency accompanies ErrNoPath when node bookkeeping broke,
	// for example a parent link missing during path reconstruction. It signals a bug,
	// not an unreachable goal.
	ErrInternalInconsistency = errors.New("astar: internal inconsistency")

	// ErrBadMaxIterations indicates WithMaxIterations was given n <= 0.
	ErrBadMaxIterations = errors.New("astar: MaxIterations must be positive")
)

// DefaultMaxIterations is the default safety valve on node expansions per search.
const DefaultMaxIterations = 10000

// Grid is the read side of the grid model the pathfinder consumes.
// *grid.Grid satisfies it.
type Grid interface {
	// CellAt returns the cell at c; ok is false when c is not part of the grid.
	CellAt(c hexcoord.Coord) (grid.Cell, bool)
	// NeighborsPresent returns the existing neighbors of c.
	NeighborsPresent(c hexcoord.Coord) []hexcoord.Coord
	// AcceptsWeight applies the weight-acceptance rule at c.
	AcceptsWeight(c hexcoord.Coord, unitWeight int) bool
	// MoveCost returns the cost of entering c, grid.InfiniteCost if it cannot be entered.
	MoveCost(c hexcoord.Coord) int
	// MaxNodes bounds how many nodes a single search can create.
	MaxNodes() int
}

// Outcome classifies how a search ended.
type Outcome int

const (
	// OutcomeFound means the goal was reached and Result.Path is set.
	OutcomeFound Outcome = iota
	// OutcomeExhausted means the open set emptied without reaching the goal.
	OutcomeExhausted
	// OutcomeIterationCap means the iteration cap stopped the search.
	OutcomeIterationCap
	// OutcomeInconsistent means node bookkeeping broke (a bug).
	OutcomeInconsistent
	// OutcomeRejected means the query failed validation and no search ran.
	OutcomeRejected
)

var outcomeNames = [...]string{"found", "exhausted", "iteration_cap", "inconsistent", "rejected"}

// String returns the snake_case label used in logs and metrics.
func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Result describes one search.
//
// Path       – start..end inclusive when Outcome == OutcomeFound, nil otherwise.
// Cost       – sum of move costs of every cell entered after start.
// Iterations – number of nodes popped from the open set.
type Result struct {
	Path       []hexcoord.Coord
	Cost       int
	Iterations int
	Outcome    Outcome
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return r.Outcome == OutcomeFound }

// Options configures a Pathfinder.
//
// MaxIterations – safety valve on expansions per search. Must be > 0.
// Strict        – panic on internal inconsistency instead of logging it.
// Logger        – structured logger; defaults to slog.Default() tagged component=astar.
// Metrics       – optional Prometheus collectors; nil disables metrics.
// Tracer        – OpenTelemetry tracer; defaults to the global provider's tracer.
type Options struct {
	MaxIterations int
	Strict        bool
	Logger        *slog.Logger
	Metrics       *Metrics
	Tracer        trace.Tracer
}

// Option represents a functional option for New.
type Option func(*Options)

// WithMaxIterations sets the iteration cap. Panics with ErrBadMaxIterations if n <= 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithStrictConsistency makes internal inconsistencies panic. Use it in tests and
// debug builds; production builds log the failure and report ErrNoPath instead.
func WithStrictConsistency() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every search into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer sets the tracer used for per-search spans. A nil tracer keeps the default.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// DefaultOptions returns the defaults: 10 000 iterations, non-strict, no metrics.
// Logger and Tracer are filled in by New when left nil.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
	}
}
