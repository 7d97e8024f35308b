package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 0.55, cfg.FillFactor)
	assert.Equal(t, 10, cfg.SimulationSteps)
	assert.Equal(t, 4, cfg.DeathLimit)
	assert.Equal(t, 5, cfg.BirthLimit)
	assert.Zero(t, cfg.CaveSizeThreshold)
	assert.Zero(t, cfg.IslandSizeThreshold)
	assert.Equal(t, 2, cfg.PassageRadius)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":          "40",
		"h":          "20",
		"fill":       "0.45",
		"steps":      "3",
		"death":      "3",
		"birth":      "4",
		"cave_min":   "12",
		"island_min": "6",
		"radius":     "3",
		"unknown":    "1",
	})
	assert.Equal(t, Config{
		Width:               40,
		Height:              20,
		FillFactor:          0.45,
		SimulationSteps:     3,
		DeathLimit:          3,
		BirthLimit:          4,
		CaveSizeThreshold:   12,
		IslandSizeThreshold: 6,
		PassageRadius:       3,
	}, cfg)
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":      "-1",
		"h":      "abc",
		"fill":   "1.5",
		"steps":  "-2",
		"radius": "0",
	})
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestNormalizedClamps(t *testing.T) {
	cfg := Config{
		Width:               0,
		Height:              -4,
		FillFactor:          -0.5,
		SimulationSteps:     -1,
		CaveSizeThreshold:   -3,
		IslandSizeThreshold: -3,
		PassageRadius:       0,
	}.normalized()
	assert.Equal(t, 1, cfg.Width)
	assert.Equal(t, 1, cfg.Height)
	assert.Equal(t, 0.0, cfg.FillFactor)
	assert.Zero(t, cfg.SimulationSteps)
	assert.Zero(t, cfg.CaveSizeThreshold)
	assert.Zero(t, cfg.IslandSizeThreshold)
	assert.Equal(t, 1, cfg.PassageRadius)

	assert.Equal(t, 1.0, Config{FillFactor: 3}.normalized().FillFactor)
}

func TestParametersLines(t *testing.T) {
	lines := DefaultConfig().Parameters().Lines()
	assert.Equal(t, []string{
		"Map: w=60 h=30 fill=0.55",
		"Automaton: steps=10 death=4 birth=5",
		"Regions: cave_min=0 island_min=0 radius=2",
	}, lines)
}
