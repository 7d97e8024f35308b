package cave

import (
	"log/slog"

	"mad-caves/pkg/core"
)

// Sim drives a staged build through the core.Sim contract so the preview
// window can animate generation.
type Sim struct {
	cfg   Config
	log   *slog.Logger
	seed  int64
	build *Build
}

var _ core.Sim = (*Sim)(nil)

// NewSim returns a Sim for cfg seeded with seed.
func NewSim(cfg Config, seed int64, logger *slog.Logger) *Sim {
	s := &Sim{cfg: cfg.normalized(), log: logger}
	s.Reset(seed)
	return s
}

func (s *Sim) Name() string { return "caves" }

func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset discards the current build and refills from seed.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.build = New(s.cfg, WithSeed(seed), WithLogger(s.log)).Build()
}

// Step advances one build unit; it is a no-op once done.
func (s *Sim) Step() { s.build.Step() }

// Finish runs the remaining stages.
func (s *Sim) Finish() { s.build.Run() }

func (s *Sim) Cells() []uint8 { return s.build.Grid().Cells() }

func (s *Sim) Grid() *core.Grid { return s.build.Grid() }

func (s *Sim) Done() bool { return s.build.Done() }

func (s *Sim) Stage() Stage { return s.build.Stage() }

func (s *Sim) Stats() Stats { return s.build.Stats() }

func (s *Sim) Seed() int64 { return s.seed }

func (s *Sim) Config() Config { return s.cfg }

// Parameters describes the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot { return s.cfg.Parameters() }

// ParameterControls lists the values the preview panel may adjust. The map
// size is fixed for the lifetime of a Sim.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fill", Label: "Fill factor", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "steps", Label: "Smoothing steps", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 50, HasMin: true, HasMax: true},
		{Key: "death", Label: "Death limit", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 9, HasMin: true, HasMax: true},
		{Key: "birth", Label: "Birth limit", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 9, HasMin: true, HasMax: true},
		{Key: "cave_min", Label: "Min cave size", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true},
		{Key: "island_min", Label: "Min island size", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true},
		{Key: "radius", Label: "Passage radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter and rebuilds from the current
// seed.
func (s *Sim) SetIntParameter(key string, value int) bool {
	cfg := s.cfg
	switch key {
	case "steps":
		cfg.SimulationSteps = value
	case "death":
		cfg.DeathLimit = value
	case "birth":
		cfg.BirthLimit = value
	case "cave_min":
		cfg.CaveSizeThreshold = value
	case "island_min":
		cfg.IslandSizeThreshold = value
	case "radius":
		cfg.PassageRadius = value
	default:
		return false
	}
	s.cfg = cfg.normalized()
	s.Reset(s.seed)
	return true
}

// SetFloatParameter updates a floating-point parameter and rebuilds from the
// current seed.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "fill" {
		return false
	}
	s.cfg.FillFactor = value
	s.cfg = s.cfg.normalized()
	s.Reset(s.seed)
	return true
}
