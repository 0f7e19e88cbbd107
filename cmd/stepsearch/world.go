package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/stepsearch/config"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/search"
	"github.com/katalvlaran/stepsearch/session"
)

// demoGrid is used when the config carries no grid.
var demoGrid = []string{
	"11111111",
	"1##1#111",
	"11131#11",
	"1#111#91",
	"11#11111",
}

// world is everything a sub-command needs to run one search.
type world struct {
	cfg    *config.Config
	grid   *gridgraph.GridGraph
	graph  *core.Graph[core.Point]
	origin core.Point
	goal   core.Point
	log    *slog.Logger
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadWorld reads the config at path (built-in defaults when empty), picks
// endpoints and, if asked to, carves a corridor between them.
func loadWorld(path string, log *slog.Logger) (*world, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if len(cfg.Grid) == 0 {
		cfg.Grid = demoGrid
	}
	gg, err := cfg.GridGraph()
	if err != nil {
		return nil, err
	}

	origin, goal, ok, err := cfg.Endpoints()
	if err != nil {
		return nil, err
	}
	if !ok {
		if origin, goal, err = session.NewContext(cfg.Seed).RandomEndpoints(gg); err != nil {
			return nil, err
		}
		log.Debug("random endpoints", slog.String("origin", origin.String()), slog.String("goal", goal.String()))
	}

	if cfg.Carve && !gg.Connected(origin, goal) {
		route, walls, err := gg.CarvePath(origin, goal)
		if err != nil {
			return nil, fmt.Errorf("carve %v -> %v: %w", origin, goal, err)
		}
		gg = gg.Opened(route)
		log.Info("carved corridor", slog.Int("walls", walls), slog.Int("length", len(route)))
	}

	return &world{
		cfg:    cfg,
		grid:   gg,
		graph:  gg.ToCoreGraph(),
		origin: origin,
		goal:   goal,
		log:    log,
	}, nil
}

// ticker builds a ticker over the world graph with the configured clock.
func (w *world) ticker() (*search.Ticker[core.Point], error) {
	return search.NewTicker(w.graph, append(w.cfg.TickerOptions(), search.WithLogger(w.log))...)
}

// glyphs maps node statuses to trace characters.
var glyphs = map[search.NodeStatus]rune{
	search.NodeNone:         '.',
	search.NodeFrontier:     'o',
	search.NodeJustExpanded: '@',
	search.NodeNewFrontier:  '+',
	search.NodeVisited:      'x',
	search.NodeOnPath:       '*',
}

// frame renders the grid with the ticker's current node statuses; origin
// and goal are always drawn as S and G.
func (w *world) frame(tk *search.Ticker[core.Point]) string {
	return w.grid.Render(func(p core.Point) rune {
		switch p {
		case w.origin:
			return 'S'
		case w.goal:
			return 'G'
		}
		if !tk.Started() {
			return '.'
		}

		return glyphs[tk.Status(p)]
	})
}

// params builds search parameters from the config; a non-empty algo
// overrides the configured algorithm.
func (w *world) params(algo string) (*search.Params[core.Point], error) {
	params, err := w.cfg.Params()
	if err != nil {
		return nil, err
	}
	if algo == "" {
		return params, nil
	}
	alg, err := search.ParseAlgorithm(algo)
	if err != nil {
		return nil, err
	}
	if err = params.SetAlgorithm(alg); err != nil {
		return nil, err
	}

	return params, nil
}
