package app

import (
	"bytes"
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVListMap(t *testing.T) {
	var l KVList
	require.NoError(t, l.Set("w=80"))
	require.NoError(t, l.Set(" fill = 0.4 "))
	require.NoError(t, l.Set("junk"))
	require.NoError(t, l.Set("w=90"))

	assert.Equal(t, "w=80, fill = 0.4 ,junk,w=90", l.String())
	assert.Equal(t, map[string]string{"w": "90", "fill": "0.4"}, l.Map())
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-seed", "7", "-scale", "4", "-animate=false", "-panel", "0",
		"-set", "w=40", "-set", "radius=3", "-set", "fill=2",
	}))

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 4, cfg.Scale)
	assert.False(t, cfg.Animate)
	assert.Equal(t, 0, cfg.Panel)
	assert.Equal(t, 60, cfg.TPS)

	cc := cfg.CaveConfig()
	assert.Equal(t, 40, cc.Width)
	assert.Equal(t, 30, cc.Height)
	assert.Equal(t, 3, cc.PassageRadius)
	assert.InDelta(t, 0.55, cc.FillFactor, 1e-9, "out-of-range fill is ignored")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "seed", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown seed=3")
}
