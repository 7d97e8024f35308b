package cave

import (
	"strconv"

	"mad-caves/pkg/core"
)

// Config holds the generation parameters for one map.
type Config struct {
	Width  int
	Height int

	// FillFactor is the probability that an interior cell starts as a wall.
	FillFactor float64

	SimulationSteps int
	// DeathLimit: a wall opens when it has fewer wall neighbors than this.
	DeathLimit int
	// BirthLimit: a floor cell closes when it has more wall neighbors than this.
	BirthLimit int

	// CaveSizeThreshold fills floor regions smaller than this. 0 disables.
	CaveSizeThreshold int
	// IslandSizeThreshold clears wall regions smaller than this. 0 disables.
	IslandSizeThreshold int

	// PassageRadius is the radius of the disc stamped along each passage.
	PassageRadius int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           60,
		Height:          30,
		FillFactor:      0.55,
		SimulationSteps: 10,
		DeathLimit:      4,
		BirthLimit:      5,
		PassageRadius:   2,
	}
}

// normalized clamps out-of-range values so generation never fails.
func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.FillFactor < 0 {
		c.FillFactor = 0
	}
	if c.FillFactor > 1 {
		c.FillFactor = 1
	}
	if c.SimulationSteps < 0 {
		c.SimulationSteps = 0
	}
	if c.CaveSizeThreshold < 0 {
		c.CaveSizeThreshold = 0
	}
	if c.IslandSizeThreshold < 0 {
		c.IslandSizeThreshold = 0
	}
	if c.PassageRadius <= 0 {
		c.PassageRadius = 1
	}
	return c
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FillFactor = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SimulationSteps = parsed
		}
	}
	if v, ok := cfg["death"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.DeathLimit = parsed
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BirthLimit = parsed
		}
	}
	if v, ok := cfg["cave_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CaveSizeThreshold = parsed
		}
	}
	if v, ok := cfg["island_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.IslandSizeThreshold = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PassageRadius = parsed
		}
	}
	return c
}

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Map",
				Params: []core.Parameter{
					intParam("w", "Width", c.Width),
					intParam("h", "Height", c.Height),
					floatParam("fill", "Fill factor", c.FillFactor),
				},
			},
			{
				Name: "Automaton",
				Params: []core.Parameter{
					intParam("steps", "Simulation steps", c.SimulationSteps),
					intParam("death", "Death limit", c.DeathLimit),
					intParam("birth", "Birth limit", c.BirthLimit),
				},
			},
			{
				Name: "Regions",
				Params: []core.Parameter{
					intParam("cave_min", "Cave size threshold", c.CaveSizeThreshold),
					intParam("island_min", "Island size threshold", c.IslandSizeThreshold),
					intParam("radius", "Passage radius", c.PassageRadius),
				},
			},
		},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}
