package portfolio

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultLoadingStep is the percentage added on every tick.
	DefaultLoadingStep = 5
	// DefaultLoadingInterval is the time between ticks.
	DefaultLoadingInterval = 100 * time.Millisecond
	// LoadingComplete is the terminal progress value.
	LoadingComplete = 100
)

type loadingIndicator struct {
	mu *sync.Mutex

	progress int
	step     int
	interval time.Duration

	started  bool
	running  bool
	stop     chan struct{}
	stopOnce sync.Once
	finished chan struct{}

	listeners []func(progress int)
}

// LoadingIndicator is a self-contained percentage counter that advances in fixed
// increments on a fixed interval and stops its timer once it reaches 100.
type LoadingIndicator interface {
	// Start launches the timer goroutine. Calling Start more than once has no effect.
	// The timer exits when progress reaches 100, Stop is called, or ctx is cancelled.
	//
	// Parameters:
	//   - ctx: cancels the timer on teardown
	Start(ctx context.Context)

	// Step advances progress by one increment, clamped to 100, and returns the new value.
	// Reaching 100 stops the timer.
	//
	// Returns:
	//   - int: the progress after the step
	Step() int

	// Progress returns the current percentage.
	//
	// Returns:
	//   - int: a value in [0, 100]
	Progress() int

	// Done reports whether progress has reached 100.
	//
	// Returns:
	//   - bool: true once complete
	Done() bool

	// Running reports whether the timer goroutine is active.
	//
	// Returns:
	//   - bool: true between Start and the timer exiting
	Running() bool

	// Stop cancels the timer. Safe to call multiple times.
	Stop()

	// Finished returns a channel closed when the timer goroutine has exited.
	// If Start was never called the channel is closed by Stop or completion.
	//
	// Returns:
	//   - <-chan struct{}: the completion channel
	Finished() <-chan struct{}

	// OnProgress registers a listener invoked after every change in progress.
	//
	// Parameters:
	//   - fn: receives the new progress
	OnProgress(fn func(progress int))
}

var _ LoadingIndicator = &loadingIndicator{}

// NewLoadingIndicator creates a LoadingIndicator at 0%.
//
// Parameters:
//   - options: functional options to configure the step and interval
//
// Returns:
//   - LoadingIndicator: the new indicator, not yet started
func NewLoadingIndicator(options ...LoadingBuilderOption) LoadingIndicator {
	l := &loadingIndicator{
		mu:       &sync.Mutex{},
		step:     DefaultLoadingStep,
		interval: DefaultLoadingInterval,
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *loadingIndicator) Start(ctx context.Context) {
	l.mu.Lock()
	if l.started || l.progress >= LoadingComplete {
		l.mu.Unlock()
		return
	}
	select {
	case <-l.stop:
		l.mu.Unlock()
		return
	default:
	}
	l.started = true
	l.running = true
	l.mu.Unlock()

	go l.run(ctx)
}

func (l *loadingIndicator) run(ctx context.Context) {
	defer close(l.finished)
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stop:
			return
		case <-ticker.C:
			if l.Step() >= LoadingComplete {
				return
			}
		}
	}
}

func (l *loadingIndicator) Step() int {
	l.mu.Lock()
	if l.progress >= LoadingComplete {
		l.mu.Unlock()
		return LoadingComplete
	}
	l.progress = min(l.progress+l.step, LoadingComplete)
	p := l.progress
	listeners := l.listeners
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
	if p >= LoadingComplete {
		l.Stop()
	}
	return p
}

func (l *loadingIndicator) Progress() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.progress
}

func (l *loadingIndicator) Done() bool {
	return l.Progress() >= LoadingComplete
}

func (l *loadingIndicator) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *loadingIndicator) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
		l.mu.Lock()
		started := l.started
		l.mu.Unlock()
		if !started {
			close(l.finished)
		}
	})
}

func (l *loadingIndicator) Finished() <-chan struct{} {
	return l.finished
}

func (l *loadingIndicator) OnProgress(fn func(progress int)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// LoadingBuilderOption is a functional option for configuring a LoadingIndicator.
type LoadingBuilderOption func(*loadingIndicator)

// WithLoadingStep sets the percentage added per tick. Values <= 0 keep the default.
//
// Parameters:
//   - step: percentage per tick
//
// Returns:
//   - LoadingBuilderOption: option function to apply
func WithLoadingStep(step int) LoadingBuilderOption {
	return func(l *loadingIndicator) {
		if step > 0 {
			l.step = step
		}
	}
}

// WithLoadingInterval sets the time between ticks. Values <= 0 keep the default.
//
// Parameters:
//   - interval: tick interval
//
// Returns:
//   - LoadingBuilderOption: option function to apply
func WithLoadingInterval(interval time.Duration) LoadingBuilderOption {
	return func(l *loadingIndicator) {
		if interval > 0 {
			l.interval = interval
		}
	}
}
