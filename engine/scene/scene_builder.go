package scene

import (
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/light"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active. Scenes are active by default.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithOrder sets the scene layer, see Scene.Order.
//
// Parameters:
//   - order: the layer
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithOrder(order int) SceneBuilderOption {
	return func(s *scene) {
		s.order = order
	}
}

// WithRenderer attaches the renderer at construction.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.r = r
	}
}

// WithObjects adds initial root objects to the scene.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj != nil {
				s.roots = append(s.roots, obj)
			}
		}
	}
}

// WithLights adds initial lights to the scene.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append(s.lights, lights...)
	}
}

// WithFog enables linear distance fog.
//
// Parameters:
//   - fog: the fog settings
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFog(fog light.Fog) SceneBuilderOption {
	return func(s *scene) {
		s.fog = &fog
	}
}

// WithPreloadWorkers sets the number of workers Preload fans out across.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPreloadWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		s.preloadWorkers = max(n, 1)
	}
}

// WithCullingDisabled disables CPU frustum culling in DrawCalls.
//
// Parameters:
//   - disabled: true to draw every visible object regardless of the view frustum
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}
