package portfolio

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

type coordinator struct {
	mu *sync.RWMutex

	current Section
	loaded  bool

	sectionListeners []func(prev, next Section)
	loadedListeners  []func()
}

// Coordinator owns the current section and the one-shot loaded signal.
// Every panel derives its active flag from the coordinator, so exactly one
// panel is active at any time.
type Coordinator interface {
	// Current returns the current section.
	//
	// Returns:
	//   - Section: the current section
	Current() Section

	// SelectSection replaces the current section. Values outside the five known
	// sections are ignored without error. Selecting the current section again
	// leaves state unchanged and does not notify listeners.
	//
	// Parameters:
	//   - s: the section to select
	//
	// Returns:
	//   - bool: true if s was a valid section
	SelectSection(s Section) bool

	// Select parses a navigation identifier and selects it. Unknown names are ignored.
	//
	// Parameters:
	//   - name: the identifier, e.g. "projects"
	//
	// Returns:
	//   - bool: true if name was a valid identifier
	Select(name string) bool

	// IsActive reports whether s is the current section.
	//
	// Parameters:
	//   - s: the section to test
	//
	// Returns:
	//   - bool: true only for the current section
	IsActive(s Section) bool

	// ActiveFlags returns the derived active flag for every section.
	//
	// Returns:
	//   - map[Section]bool: exactly one entry is true
	ActiveFlags() map[Section]bool

	// CameraPosition looks up the camera position for the current section.
	//
	// Returns:
	//   - common.Vec3: the camera position
	CameraPosition() common.Vec3

	// NotifyLoaded sets the loaded signal. Only the first call has an effect.
	NotifyLoaded()

	// Loaded reports whether NotifyLoaded has been called.
	//
	// Returns:
	//   - bool: true after the first NotifyLoaded
	Loaded() bool

	// OnSectionChange registers a listener fired after the current section changes.
	// Listeners run synchronously in registration order.
	//
	// Parameters:
	//   - fn: receives the previous and the new section
	OnSectionChange(fn func(prev, next Section))

	// OnLoaded registers a listener fired once when the loaded signal is set.
	// Registering after the signal fired invokes fn immediately.
	//
	// Parameters:
	//   - fn: the listener
	OnLoaded(fn func())
}

var _ Coordinator = &coordinator{}

// NewCoordinator creates a Coordinator with the welcome section current.
//
// Parameters:
//   - options: functional options to configure the coordinator
//
// Returns:
//   - Coordinator: the new coordinator
func NewCoordinator(options ...CoordinatorBuilderOption) Coordinator {
	c := &coordinator{
		mu:      &sync.RWMutex{},
		current: SectionWelcome,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *coordinator) Current() Section {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *coordinator) SelectSection(s Section) bool {
	if !s.Valid() {
		return false
	}

	c.mu.Lock()
	prev := c.current
	if prev == s {
		c.mu.Unlock()
		return true
	}
	c.current = s
	listeners := append([]func(prev, next Section){}, c.sectionListeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, s)
	}
	return true
}

func (c *coordinator) Select(name string) bool {
	s, ok := ParseSection(name)
	if !ok {
		return false
	}
	return c.SelectSection(s)
}

func (c *coordinator) IsActive(s Section) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return s.Valid() && c.current == s
}

func (c *coordinator) ActiveFlags() map[Section]bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flags := make(map[Section]bool, len(Sections))
	for _, s := range Sections {
		flags[s] = s == c.current
	}
	return flags
}

func (c *coordinator) CameraPosition() common.Vec3 {
	pos, _ := c.Current().CameraPosition()
	return pos
}

func (c *coordinator) NotifyLoaded() {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return
	}
	c.loaded = true
	listeners := c.loadedListeners
	c.loadedListeners = nil
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (c *coordinator) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *coordinator) OnSectionChange(fn func(prev, next Section)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sectionListeners = append(c.sectionListeners, fn)
}

func (c *coordinator) OnLoaded(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		fn()
		return
	}
	c.loadedListeners = append(c.loadedListeners, fn)
	c.mu.Unlock()
}
