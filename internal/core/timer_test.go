package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clk.now)
	assert.Equal(t, 100*time.Millisecond, fs.Step())

	assert.True(t, fs.ShouldStep(), "first call fires")
	assert.False(t, fs.ShouldStep())

	clk.advance(60 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clk.advance(40 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	fs := newFixedStep(10, clk.now)
	fs.ShouldStep()

	clk.advance(5 * time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	assert.Equal(t, 2, fired)
}

func TestFixedStepReset(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	fs := newFixedStep(4, clk.now)
	fs.Reset()
	assert.False(t, fs.ShouldStep())
	clk.advance(250 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Step())
	fs.SetTPS(-5)
	assert.Equal(t, time.Second/60, fs.Step())
}
