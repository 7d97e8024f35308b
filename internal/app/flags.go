package app

import (
	"flag"
	"io"
	"log/slog"
	"strings"

	"mad-caves/pkg/cave"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters for the preview window.
type Config struct {
	Seed     int64
	Scale    int
	TPS      int
	StageTPS int
	Animate  bool
	Panel    int
	LogLevel string
	Set      KVList
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, Scale: 12, TPS: 60, StageTPS: 8, Animate: true, Panel: 260, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StageTPS, "stage-tps", c.StageTPS, "generation stages per second when animating")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "animate generation stages")
	fs.IntVar(&c.Panel, "panel", c.Panel, "parameter panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.Var(&c.Set, "set", "generator parameter in key=value form (repeatable): w, h, fill, steps, death, birth, cave_min, island_min, radius")
}

// CaveConfig builds the generator configuration from the -set overrides.
func (c *Config) CaveConfig() cave.Config {
	return cave.FromMap(c.Set.Map())
}

// ParseLevel maps a level name to a slog level, falling back to info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}
