// Package cave generates connected cave maps with a cellular automaton.
//
// A map starts as random noise inside a solid outer ring, is smoothed for a
// number of automaton steps, has small wall islands and floor pockets pruned,
// and finally has every floor region joined to the largest one by carved
// passages. The result is a single 4-connected floor region.
package cave

import (
	"io"
	"log/slog"

	"mad-caves/pkg/core"
)

// Generator produces cave grids from a Config and a random source. A
// Generator is not safe for concurrent use; run one per goroutine.
type Generator struct {
	cfg Config
	rng *core.RNG
	log *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator deterministically.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = core.NewRNG(seed) }
}

// WithRNG uses r as the random source.
func WithRNG(r *core.RNG) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger attaches a logger for per-stage debug records.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New returns a generator for cfg. Without WithSeed or WithRNG the source is
// seeded from the clock.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg.normalized()}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = core.NewTimeRNG()
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

// Config returns the normalized configuration in use.
func (g *Generator) Config() Config { return g.cfg }

// Seed returns the seed of the generator's random source.
func (g *Generator) Seed() int64 { return g.rng.Seed() }

// Generate runs every stage and returns the finished grid.
func (g *Generator) Generate() *core.Grid {
	return g.Build().Run()
}

// Generate is shorthand for New(cfg, opts...).Generate().
func Generate(cfg Config, opts ...Option) *core.Grid {
	return New(cfg, opts...).Generate()
}
