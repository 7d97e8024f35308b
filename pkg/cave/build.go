package cave

import (
	"log/slog"

	"mad-caves/pkg/core"
)

// Stage names the work the next Build.Step call performs.
type Stage int

const (
	StageSmooth Stage = iota
	StagePrune
	StageRooms
	StageConnect
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageSmooth:
		return "smooth"
	case StagePrune:
		return "prune"
	case StageRooms:
		return "rooms"
	case StageConnect:
		return "connect"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// Stats summarizes a build so far.
type Stats struct {
	Steps          int
	IslandsRemoved int
	CavesRemoved   int
	Rooms          int
	Passages       int
	Forced         int
}

// Build is an in-progress generation that can be advanced one unit at a time.
type Build struct {
	cfg Config
	log *slog.Logger

	cur, nxt *core.Grid
	stage    Stage
	rooms    []*Room
	conn     *connector
	passages []Passage
	stats    Stats
}

// Build performs the random fill and returns the build positioned at the
// first smoothing step.
func (g *Generator) Build() *Build {
	cfg := g.cfg
	b := &Build{
		cfg: cfg,
		log: g.log,
		cur: core.NewGrid(cfg.Width, cfg.Height),
		nxt: core.NewGrid(cfg.Width, cfg.Height),
	}
	randomFill(b.cur, g.rng, cfg.FillFactor)
	g.log.Debug("cave fill",
		"seed", g.rng.Seed(),
		"w", cfg.Width,
		"h", cfg.Height,
		"fill", cfg.FillFactor,
		"walls", b.cur.Count(true),
	)
	if cfg.SimulationSteps == 0 {
		b.stage = StagePrune
	}
	return b
}

// Step advances the build by one unit: one smoothing iteration, the pruning
// pass, room extraction, or one passage. It reports whether work remains.
func (b *Build) Step() bool {
	switch b.stage {
	case StageSmooth:
		smooth(b.cur, b.nxt, b.cfg.DeathLimit, b.cfg.BirthLimit)
		b.cur, b.nxt = b.nxt, b.cur
		b.stats.Steps++
		if b.stats.Steps >= b.cfg.SimulationSteps {
			b.log.Debug("cave smooth", "steps", b.stats.Steps, "walls", b.cur.Count(true))
			b.stage = StagePrune
		}
	case StagePrune:
		b.stats.IslandsRemoved = pruneRegions(b.cur, true, b.cfg.IslandSizeThreshold)
		b.stats.CavesRemoved = pruneRegions(b.cur, false, b.cfg.CaveSizeThreshold)
		b.log.Debug("cave prune",
			"islands_removed", b.stats.IslandsRemoved,
			"caves_removed", b.stats.CavesRemoved,
		)
		b.stage = StageRooms
	case StageRooms:
		b.rooms = extractRooms(b.cur)
		b.stats.Rooms = len(b.rooms)
		b.conn = newConnector(b.cur, b.rooms, b.cfg.PassageRadius)
		if len(b.rooms) > 0 {
			b.log.Debug("cave rooms", "rooms", len(b.rooms), "main_size", b.rooms[0].Size())
		} else {
			b.log.Debug("cave rooms", "rooms", 0)
		}
		b.stage = StageConnect
	case StageConnect:
		p, ok := b.conn.next()
		if !ok {
			b.log.Debug("cave connect", "passages", b.stats.Passages, "forced", b.stats.Forced)
			b.stage = StageDone
			return false
		}
		b.passages = append(b.passages, p)
		b.stats.Passages++
		if p.Forced {
			b.stats.Forced++
		}
	case StageDone:
		return false
	}
	return true
}

// Run finishes the build and returns the grid.
func (b *Build) Run() *core.Grid {
	for b.Step() {
	}
	return b.cur
}

// Grid returns the current grid. It is shared with the build until Done.
func (b *Build) Grid() *core.Grid { return b.cur }

// Stage returns the work the next Step will perform.
func (b *Build) Stage() Stage { return b.stage }

// Done reports whether every stage has run.
func (b *Build) Done() bool { return b.stage == StageDone }

// Rooms returns the extracted rooms, or nil before room extraction.
func (b *Build) Rooms() []*Room { return b.rooms }

// Passages returns the passages carved so far in order.
func (b *Build) Passages() []Passage { return b.passages }

// Stats returns the counters collected so far.
func (b *Build) Stats() Stats { return b.stats }
