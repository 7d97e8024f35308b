package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-caves/pkg/cave"
)

func TestSweepOrdersBySeed(t *testing.T) {
	all := sweep(cave.DefaultConfig(), 10, 8, 3)
	require.Len(t, all, 8)
	for i, res := range all {
		assert.Equal(t, int64(10+i), res.seed)
		assert.True(t, res.connected(), "seed %d", res.seed)
		assert.Positive(t, res.floor)
	}
}

func TestSweepMatchesSerialRun(t *testing.T) {
	cfg := cave.DefaultConfig()
	parallel := sweep(cfg, 1, 4, 4)
	serial := sweep(cfg, 1, 4, 0)
	assert.Equal(t, serial, parallel)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, []sweepResult{
		{seed: 1, floor: 10, regions: 1, stats: cave.Stats{Rooms: 2, Passages: 1}},
		{seed: 2, floor: 12, regions: 2, stats: cave.Stats{Rooms: 4, Passages: 3, Forced: 1}},
	}, time.Second)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "seed=1 floor=10 rooms=2 passages=1 forced=0 pruned=0+0", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "DISCONNECTED"))
	assert.Equal(t, "2 maps in 1s: avg rooms 3.0, avg passages 2.0, avg forced 0.5, disconnected 1", lines[3])
}
