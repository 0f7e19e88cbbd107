// Package config loads stepsearch settings from YAML.
//
// A minimal world file:
//
//	algorithm: astar
//	step_interval: 150ms
//	grid:
//	  - "1111"
//	  - "1#91"
//	  - "1111"
//	origin: "0,0"
//	goal: "3,2"
//
// Every field is optional; missing ones keep Default values. Empty origin or
// goal means "pick at random" (see session.Context).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/practice"
	"github.com/katalvlaran/stepsearch/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk settings document.
type Config struct {
	Algorithm          string         `yaml:"algorithm"`
	StepInterval       time.Duration  `yaml:"step_interval"`
	MinInterval        time.Duration  `yaml:"min_interval"`
	MaxInterval        time.Duration  `yaml:"max_interval"`
	ExtraCostIncentive bool           `yaml:"extra_cost_incentive"`
	Diagonal           bool           `yaml:"diagonal"`
	TerrainCosts       bool           `yaml:"terrain_costs"` // extra cost = cell value - 1
	Carve              bool           `yaml:"carve"`         // open walls so origin reaches goal
	Hints              practice.Hints `yaml:"hints"`
	Seed               int64          `yaml:"seed"`
	Grid               []string       `yaml:"grid"`
	Origin             string         `yaml:"origin"`
	Goal               string         `yaml:"goal"`
}

// Default returns the built-in settings: A*, the ticker's default clock
// and the built-in hint texts.
func Default() *Config {
	return &Config{
		Algorithm:    search.AStar.String(),
		StepInterval: search.DefaultStepInterval,
		MinInterval:  search.DefaultMinInterval,
		MaxInterval:  search.DefaultMaxInterval,
		Hints:        practice.DefaultHints(),
		Seed:         1,
	}
}

// Load decodes YAML from r over Default and validates the result.
// Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and decodes the file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Load(bytes.NewReader(data))
}

// Marshal encodes cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field. Unknown algorithm names wrap both
// ErrInvalidConfig and search.ErrUnknownAlgorithm.
func (c *Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinInterval <= 0 || c.MinInterval > c.MaxInterval {
		return fmt.Errorf("%w: interval bounds [%v, %v]", ErrInvalidConfig, c.MinInterval, c.MaxInterval)
	}
	if c.StepInterval <= 0 {
		return fmt.Errorf("%w: step interval %v", ErrInvalidConfig, c.StepInterval)
	}
	if len(c.Grid) == 0 {
		if c.Origin != "" || c.Goal != "" {
			return fmt.Errorf("%w: endpoints without a grid", ErrInvalidConfig)
		}
		return nil
	}
	gg, err := c.GridGraph()
	if err != nil {
		return err
	}
	for name, s := range map[string]string{"origin": c.Origin, "goal": c.Goal} {
		if s == "" {
			continue
		}
		p, err := core.ParsePoint(s)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
		if !gg.Walkable(p) {
			return fmt.Errorf("%w: %s %v is not a walkable cell", ErrInvalidConfig, name, p)
		}
	}

	return nil
}

// AlgorithmTag parses Algorithm.
func (c *Config) AlgorithmTag() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Algorithm)
}

// Params builds search parameters over grid points.
func (c *Config) Params() (*search.Params[core.Point], error) {
	alg, err := c.AlgorithmTag()
	if err != nil {
		return nil, err
	}

	return search.NewParams(alg, search.WithExtraCostIncentive[core.Point](c.ExtraCostIncentive))
}

// TickerOptions returns the clock settings as ticker options.
func (c *Config) TickerOptions() []search.Option {
	return []search.Option{
		search.WithIntervalBounds(c.MinInterval, c.MaxInterval),
		search.WithStepInterval(c.StepInterval),
	}
}

// GridGraph parses Grid with the configured connectivity and costs.
func (c *Config) GridGraph() (*gridgraph.GridGraph, error) {
	values, err := gridgraph.ParseRows(c.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := gridgraph.DefaultGridOptions()
	if c.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	opts.ExtraCostFromValue = c.TerrainCosts
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return gg, nil
}

// Endpoints returns the configured origin and goal; ok is false when either
// is left for random selection.
func (c *Config) Endpoints() (origin, goal core.Point, ok bool, err error) {
	if c.Origin == "" || c.Goal == "" {
		return origin, goal, false, nil
	}
	if origin, err = core.ParsePoint(c.Origin); err != nil {
		return origin, goal, false, err
	}
	if goal, err = core.ParsePoint(c.Goal); err != nil {
		return origin, goal, false, err
	}

	return origin, goal, true, nil
}
