package portfolio

import "sync"

// Readiness folds the loading indicator's completion and the coordinator's
// loaded signal into one explicit signal. It fires exactly once, when both
// sources are complete, regardless of which finishes first.
type Readiness struct {
	mu *sync.Mutex

	progressDone bool
	mounted      bool
	ready        bool

	listeners []func()
}

// NewReadiness subscribes to both sources and returns the combined gate.
// Sources that already completed before the call are taken into account.
//
// Parameters:
//   - loading: the loading indicator
//   - coord: the coordinator whose loaded signal marks the welcome panel as mounted
//
// Returns:
//   - *Readiness: the gate
func NewReadiness(loading LoadingIndicator, coord Coordinator) *Readiness {
	r := &Readiness{mu: &sync.Mutex{}}

	loading.OnProgress(func(progress int) {
		if progress >= LoadingComplete {
			r.markProgressDone()
		}
	})
	if loading.Done() {
		r.markProgressDone()
	}

	coord.OnLoaded(r.markMounted)
	return r
}

// Ready reports whether both sources have completed.
func (r *Readiness) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

// OnReady registers a listener fired once on readiness. If the gate is already
// open the listener runs immediately.
//
// Parameters:
//   - fn: the listener
func (r *Readiness) OnReady(fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	if r.ready {
		r.mu.Unlock()
		fn()
		return
	}
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

func (r *Readiness) markProgressDone() {
	r.mu.Lock()
	r.progressDone = true
	r.evaluate()
}

func (r *Readiness) markMounted() {
	r.mu.Lock()
	r.mounted = true
	r.evaluate()
}

// evaluate must be called with the mutex held; it releases it.
func (r *Readiness) evaluate() {
	if r.ready || !r.progressDone || !r.mounted {
		r.mu.Unlock()
		return
	}
	r.ready = true
	listeners := r.listeners
	r.listeners = nil
	r.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
