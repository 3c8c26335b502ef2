package profiler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTickSamplesOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var lines []string
	p := NewProfiler(WithLabel("tick"), WithLogf(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}))
	p.now = clock.now
	p.lastTime = clock.t

	start := clock.t
	for i := 1; i < 60; i++ {
		clock.t = start.Add(time.Duration(i) * time.Second / 60)
		assert.False(t, p.Tick())
	}
	clock.t = start.Add(time.Second)
	require.True(t, p.Tick())

	s := p.Stats()
	assert.InDelta(t, 60, s.FPS, 0.5)
	assert.InDelta(t, 16.6, s.FrameTimeMs, 0.2)
	assert.Greater(t, s.SysMB, 0.0)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[Profiler] tick FPS: 60")
}

func TestStatsZeroBeforeFirstSample(t *testing.T) {
	p := NewProfiler(WithInterval(time.Hour), WithLogf(nil))
	assert.False(t, p.Tick())
	assert.Equal(t, Stats{}, p.Stats())
}
