package portfolio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadingStepReachesExactlyHundred(t *testing.T) {
	l := NewLoadingIndicator()
	prev := l.Progress()
	for i := 0; i < 30; i++ {
		p := l.Step()
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, LoadingComplete)
		prev = p
	}
	assert.Equal(t, LoadingComplete, l.Progress())
	assert.True(t, l.Done())

	select {
	case <-l.Finished():
	default:
		t.Fatal("finished channel should be closed after completion")
	}
}

func TestLoadingClampsUnevenStep(t *testing.T) {
	l := NewLoadingIndicator(WithLoadingStep(30))
	assert.Equal(t, 30, l.Step())
	assert.Equal(t, 60, l.Step())
	assert.Equal(t, 90, l.Step())
	assert.Equal(t, 100, l.Step())
	assert.Equal(t, 100, l.Step())
}

func TestLoadingTimerStopsAtHundred(t *testing.T) {
	l := NewLoadingIndicator(WithLoadingInterval(time.Millisecond))

	var mu sync.Mutex
	var seen []int
	l.OnProgress(func(p int) {
		mu.Lock()
		seen = append(seen, p)
		mu.Unlock()
	})

	l.Start(context.Background())
	select {
	case <-l.Finished():
	case <-time.After(5 * time.Second):
		t.Fatal("loading indicator did not finish")
	}

	assert.False(t, l.Running())
	assert.Equal(t, LoadingComplete, l.Progress())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, LoadingComplete/DefaultLoadingStep)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}
	assert.Equal(t, LoadingComplete, seen[len(seen)-1])

	// Starting again after completion is a no-op.
	l.Start(context.Background())
	assert.False(t, l.Running())
}

func TestLoadingStopAndCancel(t *testing.T) {
	l := NewLoadingIndicator(WithLoadingInterval(time.Hour))
	l.Start(context.Background())
	assert.True(t, l.Running())
	l.Stop()
	l.Stop()
	<-l.Finished()
	assert.False(t, l.Running())
	assert.Zero(t, l.Progress())

	ctx, cancel := context.WithCancel(context.Background())
	l2 := NewLoadingIndicator(WithLoadingInterval(time.Hour))
	l2.Start(ctx)
	cancel()
	<-l2.Finished()
	assert.False(t, l2.Running())
	l2.Stop()
}

func TestLoadingStopBeforeStart(t *testing.T) {
	l := NewLoadingIndicator()
	l.Stop()
	<-l.Finished()
	l.Start(context.Background())
	assert.False(t, l.Running())
}
