// Package config loads pathfinding settings from YAML: grid shape, terrain costs,
// impassable classes and the search iteration cap.
//
// A Config converts into the option sets of the grid and astar packages, so the
// composition root never builds cost tables by hand:
//
//	cfg, err := config.Load("hexpath.yaml")
//	ct, err := cfg.CostTable()
//	g, err := grid.NewHexagon(cfg.Grid.Radius, cfg.GridOptions(ct)...)
//	pf, err := astar.New(g, cfg.PathfinderOptions()...)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexpath/astar"
	"github.com/katalvlaran/hexpath/grid"
)

// Sentinel errors returned by Validate.
var (
	ErrBadRadius     = errors.New("config: grid.radius must be >= 0")
	ErrBadCapacity   = errors.New("config: grid.default_capacity must be >= 0")
	ErrBadIterations = errors.New("config: search.max_iterations must be > 0")
)

// Config is the root of the YAML document.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Terrain TerrainConfig `yaml:"terrain"`
	Search  SearchConfig  `yaml:"search"`
}

// GridConfig describes the generated hexagon.
type GridConfig struct {
	Radius          int `yaml:"radius"`
	DefaultCapacity int `yaml:"default_capacity"`
}

// TerrainConfig maps terrain names to entry costs. Names are matched
// case-insensitively against grid.ParseTerrain.
type TerrainConfig struct {
	Costs      map[string]int `yaml:"costs"`
	Impassable []string       `yaml:"impassable"`
}

// SearchConfig holds pathfinder limits.
type SearchConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// Default returns the built-in settings: radius 5, capacity 10, costs 1/2/3,
// 10 000 iterations.
func Default() Config {
	return Config{
		Grid: GridConfig{Radius: 5, DefaultCapacity: grid.DefaultCapacity},
		Terrain: TerrainConfig{
			Costs: map[string]int{
				grid.Open.String():      1,
				grid.Rough.String():     2,
				grid.Difficult.String(): 3,
			},
			Impassable: []string{grid.Impassable.String()},
		},
		Search: SearchConfig{MaxIterations: astar.DefaultMaxIterations},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result. Omitted keys keep
// their defaults; a terrain.costs mapping, when present, replaces the default table
// as a whole. Unknown keys are rejected. Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	defaultCosts := cfg.Terrain.Costs
	cfg.Terrain.Costs = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.Terrain.Costs == nil {
		cfg.Terrain.Costs = defaultCosts
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and that the terrain section builds a cost table.
func (c Config) Validate() error {
	if c.Grid.Radius < 0 {
		return fmt.Errorf("%w: %d", ErrBadRadius, c.Grid.Radius)
	}
	if c.Grid.DefaultCapacity < 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, c.Grid.DefaultCapacity)
	}
	if c.Search.MaxIterations <= 0 {
		return fmt.Errorf("%w: %d", ErrBadIterations, c.Search.MaxIterations)
	}
	if _, err := c.CostTable(); err != nil {
		return err
	}
	return nil
}

// CostTable builds the grid cost table from the terrain section.
func (c Config) CostTable() (grid.CostTable, error) {
	costs := make(map[grid.Terrain]int, len(c.Terrain.Costs))
	for name, cost := range c.Terrain.Costs {
		t, err := grid.ParseTerrain(name)
		if err != nil {
			return grid.CostTable{}, fmt.Errorf("config: terrain.costs: %w", err)
		}
		costs[t] = cost
	}
	impassable := make([]grid.Terrain, 0, len(c.Terrain.Impassable))
	for _, name := range c.Terrain.Impassable {
		t, err := grid.ParseTerrain(name)
		if err != nil {
			return grid.CostTable{}, fmt.Errorf("config: terrain.impassable: %w", err)
		}
		impassable = append(impassable, t)
	}
	ct, err := grid.NewCostTable(costs, impassable...)
	if err != nil {
		return grid.CostTable{}, fmt.Errorf("config: terrain: %w", err)
	}
	return ct, nil
}

// GridOptions returns the grid options for ct and the configured capacity.
func (c Config) GridOptions(ct grid.CostTable) []grid.Option {
	return []grid.Option{
		grid.WithCostTable(ct),
		grid.WithDefaultCapacity(c.Grid.DefaultCapacity),
	}
}

// PathfinderOptions returns the astar options carried by the search section.
// Callers append their own logger, metrics and tracer options.
func (c Config) PathfinderOptions() []astar.Option {
	return []astar.Option{astar.WithMaxIterations(c.Search.MaxIterations)}
}
