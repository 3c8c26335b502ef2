package portfolio

import "sync"

var instructions = []string{
	"Click and drag to rotate the view",
	"Scroll to zoom in/out",
	"Click on navigation buttons to change sections",
	"Click on interactive elements for more details",
}

// Controls holds the top-right control state: the mute toggle and the info overlay.
// Mute starts on.
type Controls struct {
	mu *sync.Mutex

	muted       bool
	infoVisible bool

	muteListeners []func(muted bool)
}

// NewControls creates Controls with sound muted and the info overlay hidden.
//
// Returns:
//   - *Controls: the control state
func NewControls() *Controls {
	return &Controls{mu: &sync.Mutex{}, muted: true}
}

// Muted reports whether sound is muted.
func (c *Controls) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// SetMuted forces the mute state and notifies listeners when it changes.
func (c *Controls) SetMuted(muted bool) {
	c.mu.Lock()
	if c.muted == muted {
		c.mu.Unlock()
		return
	}
	c.muted = muted
	listeners := c.muteListeners
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(muted)
	}
}

// ToggleMute flips the mute state and returns the new value.
func (c *Controls) ToggleMute() bool {
	next := !c.Muted()
	c.SetMuted(next)
	return next
}

// OnMuteChange registers a listener fired after the mute state changes.
func (c *Controls) OnMuteChange(fn func(muted bool)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muteListeners = append(c.muteListeners, fn)
}

// InfoVisible reports whether the info overlay is shown.
func (c *Controls) InfoVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.infoVisible
}

// ToggleInfo flips the info overlay and returns the new visibility.
func (c *Controls) ToggleInfo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infoVisible = !c.infoVisible
	return c.infoVisible
}

// Instructions returns the lines shown in the info overlay, in display order.
func (c *Controls) Instructions() []string {
	return append([]string(nil), instructions...)
}

// CloseInfo hides the info overlay.
func (c *Controls) CloseInfo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infoVisible = false
}
