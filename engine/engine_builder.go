package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/scene"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/window"
)

// EngineBuilderOption configures an Engine during NewEngine.
type EngineBuilderOption func(*engine)

// WithConfig applies the [engine] table of the settings file: tick rate, render cap and profiling.
//
// Parameters:
//   - cfg: the engine settings
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.EngineConfig) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = cfg.TickInterval()
		e.renderFrameLimit = frameLimit(float64(cfg.FrameLimit))
		e.profilingEnabled = cfg.Profiling
	}
}

// WithTickRate sets how many times per second scenes are ticked. Values <= 0 mean 60.
//
// Parameters:
//   - fps: ticks per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets the window the engine pumps and takes input from. Without a window the engine
// runs headless and Run returns only after Quit.
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene registers a scene during engine construction. See Engine.AddScene.
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		if s != nil {
			e.scenes = insertScene(e.scenes, s)
		}
	}
}
