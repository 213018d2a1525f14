// Command hexpath builds a hexagon grid from a YAML config, optionally randomizes
// its terrain, and prints the cheapest path between two cells.
//
//	hexpath -config hexpath.yaml -randomize -seed 7 -from -4,0,4 -to 4,-4,0 -weight 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hexpath/astar"
	"github.com/katalvlaran/hexpath/config"
	"github.com/katalvlaran/hexpath/grid"
	"github.com/katalvlaran/hexpath/hexcoord"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hexpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file (defaults when empty)")
		from       = fs.String("from", "", "start cell as q,r,s or q,r")
		to         = fs.String("to", "", "goal cell as q,r,s or q,r")
		weight     = fs.Int("weight", 1, "unit weight")
		randomize  = fs.Bool("randomize", false, "randomize terrain before searching")
		seed       = fs.Int64("seed", 1, "RNG seed for -randomize")
		components = fs.Bool("components", false, "print the number of regions reachable for -weight")
		logLevel   = fs.String("log-level", "info", "debug, info, warn or error")
		metrics    = fs.Bool("metrics", false, "print the search metrics after the query")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	ct, err := cfg.CostTable()
	if err != nil {
		return err
	}
	g, err := grid.NewHexagon(cfg.Grid.Radius, cfg.GridOptions(ct)...)
	if err != nil {
		return err
	}
	if *randomize {
		g.Randomize(rand.New(rand.NewSource(*seed)))
	}
	logger.Info("grid ready",
		slog.Int("radius", cfg.Grid.Radius),
		slog.Int("cells", g.Len()),
		slog.Bool("randomized", *randomize))

	if *components {
		fmt.Fprintf(stdout, "components(weight=%d): %d\n", *weight, len(g.Components(*weight)))
	}
	if *from == "" && *to == "" {
		return nil
	}

	start, err := parseCoord(*from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	end, err := parseCoord(*to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	reg := prometheus.NewRegistry()
	opts := append(cfg.PathfinderOptions(),
		astar.WithLogger(logger.With(slog.String("component", "astar"))),
		astar.WithMetrics(astar.NewMetrics(reg)),
	)
	pf, err := astar.New(g, opts...)
	if err != nil {
		return err
	}

	res, err := pf.FindPathContext(ctx, start, end, *weight)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		fmt.Fprintf(stdout, "no path (%s after %d iterations)\n", res.Outcome, res.Iterations)
	case err != nil:
		return err
	default:
		fmt.Fprintf(stdout, "cost=%d steps=%d iterations=%d\n", res.Cost, len(res.Path)-1, res.Iterations)
		for _, c := range res.Path {
			cell, _ := g.CellAt(c)
			fmt.Fprintf(stdout, "  %s %s\n", c, cell.Terrain)
		}
	}
	if *metrics {
		return printMetrics(stdout, reg)
	}
	return nil
}

// printMetrics writes one line per counter series and histogram from reg.
func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s count=%d sum=%g\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}

// parseCoord accepts "q,r,s" (validated) or "q,r" (s derived).
func parseCoord(s string) (hexcoord.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return hexcoord.Coord{}, fmt.Errorf("want q,r or q,r,s, got %q", s)
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return hexcoord.Coord{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		vals[i] = v
	}
	if len(vals) == 2 {
		return hexcoord.New(vals[0], vals[1]), nil
	}
	c := hexcoord.Cube(vals[0], vals[1], vals[2])
	if !c.Valid() {
		return hexcoord.Coord{}, fmt.Errorf("%v: q+r+s must be 0", c)
	}
	return c, nil
}
