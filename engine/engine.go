package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-portfolio/engine/profiler"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/scene"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/window"
)

// idleFrame is how long the render loop sleeps when no scene has a renderer.
const idleFrame = 16 * time.Millisecond

// engine implements the Engine interface.
// Coordinates engine, render, and window threads.
type engine struct {
	mu *sync.RWMutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	input  *inputRouter

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
	clickCallback  func(handled bool)

	scenes []scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastRenderErr    string
}

// Engine is the main entry point for the engine.
// It orchestrates the engine loop, render loop, and window management.
//
// Each tick advances every active scene in ascending order, so frame callbacks registered on a
// scene run before the tick callback and before the next frame is drawn. Window pointer events
// are routed to scenes from the highest order down; see AddScene.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil for a headless engine
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Profiler returns the render loop profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler
	Profiler() *profiler.Profiler

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick after the scenes advance.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetClickCallback registers the function called after every left click the engine routes,
	// with whether a scene handled it.
	//
	// Parameters:
	//   - callback: the function to call
	SetClickCallback(callback func(handled bool))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene. Scenes are ticked and drawn in ascending Order and receive
	// pointer input in descending Order. A scene with the same name replaces the old one.
	//
	// Parameters:
	//   - s: the Scene to register
	AddScene(s scene.Scene)

	// RemoveScene removes the scene with the given name.
	//
	// Parameters:
	//   - name: the scene name
	RemoveScene(name string)

	// Scene retrieves a registered scene by name.
	//
	// Parameters:
	//   - name: the scene name
	//
	// Returns:
	//   - scene.Scene: the scene, or nil if not found
	Scene(name string) scene.Scene

	// Scenes returns the registered scenes in ascending Order.
	//
	// Returns:
	//   - []scene.Scene: a copy of the scene list
	Scenes() []scene.Scene

	// Tick advances every active scene and runs the tick callback once. The tick loop calls it
	// at the tick rate; headless front ends call it directly.
	//
	// Parameters:
	//   - dt: the frame delta in seconds
	Tick(dt float32)

	// Run starts the engine loops and pumps the window (blocks until the window closes or Quit
	// is called). The engine goroutines have stopped when Run returns.
	Run()

	// Quit signals all engine goroutines to stop and asks the window to close.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
// When a window is supplied its resize and pointer callbacks are taken over by the engine.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:              &sync.RWMutex{},
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	e.input = newInputRouter(e.Scenes, e.size)

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
		e.window.SetMouseMoveCallback(e.input.move)
		e.window.SetMouseDownCallback(e.input.down)
		e.window.SetMouseUpCallback(func(button window.MouseButton, x, y float32) {
			handled := e.input.up(button, x, y)
			if button != window.MouseButtonLeft {
				return
			}
			e.mu.RLock()
			fn := e.clickCallback
			e.mu.RUnlock()
			if fn != nil {
				fn(handled)
			}
		})
		e.window.SetScrollCallback(e.input.scroll)
		e.window.SetMouseLeaveCallback(e.input.leave)
		e.resize(e.window.Width(), e.window.Height())
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) size() (int, int) {
	if e.window == nil {
		return 1, 1
	}
	return e.window.Width(), e.window.Height()
}

// resize reconfigures every distinct renderer and updates each camera aspect.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	resized := make(map[renderer.Renderer]bool)
	for _, s := range e.Scenes() {
		if r := s.Renderer(); r != nil && !resized[r] {
			resized[r] = true
			if err := r.Resize(width, height); err != nil {
				log.Printf("[Engine] resize to %dx%d failed: %v", width, height, err)
			}
		}
		s.Camera().SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// handle launches the engine and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires Tick at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	e.mu.RLock()
	ticker := time.NewTicker(e.engineTickRate)
	e.mu.RUnlock()
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.Tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

func (e *engine) Tick(dt float32) {
	for _, s := range e.Scenes() {
		if s.Active() {
			s.Tick(dt)
		}
	}
	e.mu.RLock()
	fn := e.tickCallback
	e.mu.RUnlock()
	if fn != nil {
		fn(dt)
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Draws active scenes in ascending order within one frame of the first active scene's renderer.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			drawn := e.renderFrame()

			e.mu.RLock()
			fn, profiling, limit := e.renderCallback, e.profilingEnabled, e.renderFrameLimit
			e.mu.RUnlock()

			if fn != nil {
				fn(dt)
			}
			if profiling && e.profiler != nil {
				e.profiler.Tick()
			}

			if !drawn && limit == 0 {
				limit = idleFrame
			}
			if limit > 0 {
				if remaining := limit - time.Since(lastRender); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// renderFrame draws one frame. All scenes sharing the first active scene's renderer are drawn
// inside one render pass so overlays composite over the world.
//
// Returns:
//   - bool: false when there was nothing to draw with
func (e *engine) renderFrame() bool {
	var active []scene.Scene
	for _, s := range e.Scenes() {
		if s.Active() {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return false
	}
	frameRenderer := active[0].Renderer()
	if frameRenderer == nil {
		return false
	}

	if err := frameRenderer.BeginFrame(); err != nil {
		e.logRenderError(err)
		return false
	}
	for _, s := range active {
		if err := s.DrawCalls(); err != nil {
			e.logRenderError(err)
		}
	}
	frameRenderer.EndFrame()
	frameRenderer.Present()
	return true
}

// logRenderError logs a render error once until a different one occurs.
func (e *engine) logRenderError(err error) {
	msg := err.Error()
	e.mu.Lock()
	defer e.mu.Unlock()
	if msg == e.lastRenderErr {
		return
	}
	e.lastRenderErr = msg
	log.Printf("[Engine] render: %v", err)
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

func (e *engine) SetClickCallback(callback func(handled bool)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clickCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameLimit(fps)
}

func (e *engine) AddScene(s scene.Scene) {
	if s == nil {
		return
	}
	e.mu.Lock()
	e.scenes = insertScene(e.scenes, s)
	e.mu.Unlock()

	if e.window != nil {
		if w, h := e.size(); w > 0 && h > 0 {
			s.Camera().SetAspect(float32(w) / float32(h))
		}
	}
}

func (e *engine) RemoveScene(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.scenes {
		if s.Name() == name {
			e.scenes = append(e.scenes[:i], e.scenes[i+1:]...)
			return
		}
	}
}

func (e *engine) Scene(name string) scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, s := range e.scenes {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (e *engine) Scenes() []scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]scene.Scene, len(e.scenes))
	copy(out, e.scenes)
	return out
}

// insertScene replaces a scene with the same name or adds it, keeping ascending Order.
// Scenes of equal order keep insertion order.
func insertScene(scenes []scene.Scene, s scene.Scene) []scene.Scene {
	for i, existing := range scenes {
		if existing.Name() == s.Name() {
			scenes = append(scenes[:i], scenes[i+1:]...)
			break
		}
	}
	scenes = append(scenes, s)
	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].Order() < scenes[j].Order()
	})
	return scenes
}

// frameLimit converts a frame rate cap into a minimum frame duration.
func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
