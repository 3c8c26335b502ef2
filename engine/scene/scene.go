package scene

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/camera"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/light"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/pipeline"
)

// drawOrder is the order pipelines are drawn in. Keys not listed are drawn afterwards, sorted.
var drawOrder = []string{material.PipelineLit, material.PipelineLabel, material.PipelineHUD}

// whiteTexture is bound for objects whose material has no texture.
var whiteTexture = common.TextureStagingData{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1}

// Scene manages a tree of GameObjects viewed through one Camera, the lights and fog that shade
// them, and the per-frame callbacks that animate them.
//
// Each frame the engine calls Tick on the tick goroutine, which runs the frame callbacks in
// registration order and then advances the camera controller, and DrawCalls on the render
// goroutine, which uploads uniforms and issues one draw per visible object. Pointer input is
// resolved by ray picking against the world bounds of interactive objects.
// Thread-safe for concurrent access.
type Scene interface {
	// Name retrieves the scene name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Active reports whether the engine ticks, draws and routes input to this scene.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is active.
	//
	// Parameters:
	//   - active: the new active state
	SetActive(active bool)

	// Order retrieves the scene's layer. Scenes draw in ascending order and receive input in
	// descending order, so overlays use a higher order than the world they cover.
	//
	// Returns:
	//   - int: the layer
	Order() int

	// Camera retrieves the scene camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Renderer retrieves the renderer the scene draws with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer, or nil if none is attached yet
	Renderer() renderer.Renderer

	// SetRenderer attaches the renderer the scene draws with.
	//
	// Parameters:
	//   - r: the renderer
	SetRenderer(r renderer.Renderer)

	// Add appends root objects to the scene.
	//
	// Parameters:
	//   - objects: the objects to add; their children come along
	Add(objects ...game_object.GameObject)

	// Remove detaches a root object. Its GPU resources are released.
	//
	// Parameters:
	//   - obj: the root object to remove
	//
	// Returns:
	//   - bool: true if obj was a root of this scene
	Remove(obj game_object.GameObject) bool

	// Objects returns the root objects in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: a copy of the root list
	Objects() []game_object.GameObject

	// Count returns the number of objects in the scene including descendants.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// AddLight adds a light. Only the first ambient and directional lights and up to
	// light.MaxPointLights point lights are uploaded.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// Lights returns the scene lights.
	//
	// Returns:
	//   - []light.Light: a copy of the light list
	Lights() []light.Light

	// SetFog sets linear distance fog, or disables it when nil.
	//
	// Parameters:
	//   - fog: the fog settings
	SetFog(fog *light.Fog)

	// Fog retrieves the fog settings.
	//
	// Returns:
	//   - *light.Fog: the fog settings, or nil when disabled
	Fog() *light.Fog

	// OnFrame registers a callback run once per Tick with the frame delta and the total
	// elapsed scene time, both in seconds. Callbacks run in registration order.
	//
	// Parameters:
	//   - fn: the callback
	OnFrame(fn func(dt, elapsed float32))

	// Tick advances the scene by dt seconds: frame callbacks first, then the camera controller
	// and the camera matrices.
	//
	// Parameters:
	//   - dt: the frame delta in seconds
	Tick(dt float32)

	// Elapsed returns the total time advanced by Tick.
	//
	// Returns:
	//   - float32: elapsed seconds
	Elapsed() float32

	// Pick returns the nearest visible interactive object under a screen point.
	//
	// Parameters:
	//   - x, y: the pointer position in pixels from the top-left corner
	//   - width, height: the framebuffer size in pixels
	//
	// Returns:
	//   - game_object.GameObject: the hit object, or nil
	Pick(x, y float32, width, height int) game_object.GameObject

	// PointerMove updates hover state for a pointer position, firing PointerLeave on the
	// previously hovered object and PointerEnter on the new one when they differ.
	//
	// Parameters:
	//   - x, y: the pointer position in pixels
	//   - width, height: the framebuffer size in pixels
	//
	// Returns:
	//   - game_object.GameObject: the hovered object, or nil
	PointerMove(x, y float32, width, height int) game_object.GameObject

	// PointerExit clears hover state, firing PointerLeave on the hovered object.
	PointerExit()

	// Hovered returns the currently hovered object.
	//
	// Returns:
	//   - game_object.GameObject: the hovered object, or nil
	Hovered() game_object.GameObject

	// Click fires the click handler of the object under a screen point.
	//
	// Parameters:
	//   - x, y: the pointer position in pixels
	//   - width, height: the framebuffer size in pixels
	//
	// Returns:
	//   - bool: true if an object handled the click
	Click(x, y float32, width, height int) bool

	// Preload runs every object's preload step, such as label rasterisation, across a worker
	// pool and waits for all of them.
	//
	// Parameters:
	//   - ctx: cancels preload steps that have not started yet
	//
	// Returns:
	//   - error: the joined errors of failed steps, or the context error
	Preload(ctx context.Context) error

	// DrawCalls uploads the frame uniforms and issues the draw calls of every visible object.
	// Must be called between Renderer.BeginFrame and Renderer.EndFrame.
	//
	// Returns:
	//   - error: an error if no renderer is attached or GPU resources could not be created
	DrawCalls() error

	// Release releases the GPU resources of every object in the scene.
	Release()
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool
	order  int

	cam camera.Camera
	r   renderer.Renderer

	roots    []game_object.GameObject
	lights   []light.Light
	fog      *light.Fog
	frameFns []func(dt, elapsed float32)
	elapsed  float32

	hovered game_object.GameObject

	cullingDisabled bool
	preloadWorkers  int

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite
	drawPool  map[string][]game_object.GameObject
}

var _ Scene = &scene{}

// NewScene creates a new Scene viewed through the given camera. The camera is required and
// NewScene panics if it is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         true,
		cam:            cam,
		preloadWorkers: max(runtime.NumCPU()-1, 1),
		drawPool:       make(map[string][]game_object.GameObject),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Order() int {
	return s.order
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Add(objects ...game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, obj := range objects {
		if obj != nil {
			s.roots = append(s.roots, obj)
		}
	}
}

func (s *scene) Remove(obj game_object.GameObject) bool {
	s.mu.Lock()
	idx := -1
	for i, root := range s.roots {
		if root == obj {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.roots = append(s.roots[:idx], s.roots[idx+1:]...)
	hovered := s.hovered
	s.mu.Unlock()

	obj.Walk(func(o game_object.GameObject) {
		if o == hovered {
			s.PointerExit()
		}
		o.BindGroupProvider().Release()
	})
	return true
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, len(s.roots))
	copy(out, s.roots)
	return out
}

func (s *scene) Count() int {
	n := 0
	s.walk(func(game_object.GameObject) { n++ })
	return n
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) SetFog(fog *light.Fog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fog = fog
}

func (s *scene) Fog() *light.Fog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fog
}

func (s *scene) OnFrame(fn func(dt, elapsed float32)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameFns = append(s.frameFns, fn)
}

func (s *scene) Tick(dt float32) {
	s.mu.Lock()
	s.elapsed += dt
	elapsed := s.elapsed
	fns := make([]func(dt, elapsed float32), len(s.frameFns))
	copy(fns, s.frameFns)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dt, elapsed)
	}

	if ctrl := s.cam.Controller(); ctrl != nil {
		ctrl.Update(dt)
	}
	s.cam.Update()
}

func (s *scene) Elapsed() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

func (s *scene) Pick(x, y float32, width, height int) game_object.GameObject {
	inv := s.cam.InverseViewProjectionMatrix()
	ray, ok := common.ScreenRay(x, y, width, height, inv[:])
	if !ok {
		return nil
	}

	var (
		nearest     game_object.GameObject
		nearestDist float32
	)
	s.walk(func(obj game_object.GameObject) {
		if !obj.Interactive() || !obj.Visible() {
			return
		}
		lo, hi, ok := obj.WorldBounds()
		if !ok {
			return
		}
		dist, hit := ray.IntersectAABB(lo, hi)
		if !hit {
			return
		}
		if nearest == nil || dist < nearestDist {
			nearest, nearestDist = obj, dist
		}
	})
	return nearest
}

func (s *scene) PointerMove(x, y float32, width, height int) game_object.GameObject {
	hit := s.Pick(x, y, width, height)

	s.mu.Lock()
	prev := s.hovered
	s.hovered = hit
	s.mu.Unlock()

	if prev != hit {
		if prev != nil {
			prev.PointerLeave()
		}
		if hit != nil {
			hit.PointerEnter()
		}
	}
	return hit
}

func (s *scene) PointerExit() {
	s.mu.Lock()
	prev := s.hovered
	s.hovered = nil
	s.mu.Unlock()

	if prev != nil {
		prev.PointerLeave()
	}
}

func (s *scene) Hovered() game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hovered
}

func (s *scene) Click(x, y float32, width, height int) bool {
	hit := s.Pick(x, y, width, height)
	if hit == nil {
		return false
	}
	hit.Click()
	return true
}

func (s *scene) Preload(ctx context.Context) error {
	var objects []game_object.GameObject
	s.walk(func(obj game_object.GameObject) {
		objects = append(objects, obj)
	})
	if len(objects) == 0 {
		return nil
	}

	// The pool lives for one preload: workers idle out between uses, so a fresh pool
	// guarantees every submitted task has a worker.
	pool := worker.NewDynamicWorkerPool(s.preloadWorkers, len(objects), 1*time.Second)
	defer pool.Stop()

	var (
		wg     sync.WaitGroup
		errMu  sync.Mutex
		errs   []error
		report = func(err error) {
			errMu.Lock()
			errs = append(errs, err)
			errMu.Unlock()
		}
	)
	for i, obj := range objects {
		wg.Add(1)
		o := obj
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if ctx.Err() != nil {
					return nil, nil
				}
				if err := o.Preload(); err != nil {
					report(fmt.Errorf("preload %q: %w", o.Name(), err))
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	frame := s.cam.BindGroupProvider()
	if !frame.Initialized() {
		if err := s.r.InitBindGroup(frame, material.PipelineLit, pipeline.GroupFrame); err != nil {
			return fmt.Errorf("failed to init frame bind group for scene %q: %w", s.name, err)
		}
	}

	camUniform := s.cam.GPUUniform()
	lightsUniform := light.BuildUniform(s.lights, s.fog)
	writes := append(s.writePool[:0],
		bind_group_provider.BufferWrite{Provider: frame, Binding: pipeline.BindingCamera, Data: camUniform.Marshal()},
		bind_group_provider.BufferWrite{Provider: frame, Binding: pipeline.BindingLights, Data: lightsUniform.Marshal()},
	)

	vp := s.cam.ViewProjectionMatrix()
	frustum := common.ExtractFrustum(vp[:])

	for key := range s.drawPool {
		s.drawPool[key] = s.drawPool[key][:0]
	}

	var initErr error
	for _, root := range s.roots {
		root.Walk(func(obj game_object.GameObject) {
			if initErr != nil || !obj.Visible() {
				return
			}
			mdl, mat := obj.Model(), obj.Material()
			if mdl == nil || mat == nil || mdl.IndexCount() == 0 {
				return
			}
			key := mat.PipelineKey()
			tex, _ := mat.Texture()
			if key == material.PipelineLabel && tex == nil {
				return
			}
			if !s.cullingDisabled && key != material.PipelineHUD {
				if lo, hi, ok := obj.WorldBounds(); ok && !frustum.IntersectsAABB(lo, hi) {
					return
				}
			}
			if err := s.prepareObject(obj, key); err != nil {
				initErr = err
				return
			}
			u := obj.GPUUniform()
			writes = append(writes, bind_group_provider.BufferWrite{
				Provider: obj.BindGroupProvider(),
				Binding:  pipeline.BindingObject,
				Data:     u.Marshal(),
			})
			s.drawPool[key] = append(s.drawPool[key], obj)
		})
	}
	s.writePool = writes
	if initErr != nil {
		return initErr
	}

	s.r.WriteBuffers(writes)

	// Transparent labels draw back to front.
	if labels := s.drawPool[material.PipelineLabel]; len(labels) > 1 {
		eye := s.cam.Position()
		sort.SliceStable(labels, func(i, j int) bool {
			return distanceSq(labels[i], eye) > distanceSq(labels[j], eye)
		})
	}

	for _, key := range s.pipelineKeys() {
		for _, obj := range s.drawPool[key] {
			bindGroups := []bind_group_provider.BindGroupProvider{frame, obj.BindGroupProvider()}
			if err := s.r.DrawCall(key, obj.Model().MeshProvider(), 1, bindGroups); err != nil {
				return fmt.Errorf("draw call failed for %q in scene %q: %w", obj.Name(), s.name, err)
			}
		}
	}
	return nil
}

// prepareObject creates the mesh buffers and the object bind group on first draw, and re-uploads
// the texture whenever the material's texture version moves past the uploaded one.
func (s *scene) prepareObject(obj game_object.GameObject, key string) error {
	mdl := obj.Model()
	mesh := mdl.MeshProvider()
	if !mesh.Initialized() {
		if err := s.r.InitMeshBuffers(mesh, mdl.VertexData(), mdl.IndexData(), mdl.IndexCount()); err != nil {
			return fmt.Errorf("failed to init mesh %q: %w", mdl.Name(), err)
		}
	}

	bgp := obj.BindGroupProvider()
	tex, version := obj.Material().Texture()
	if bgp.Initialized() && bgp.TextureVersion() == version {
		return nil
	}

	staging := whiteTexture
	if tex != nil {
		staging = *tex
	}
	if err := s.r.InitTextureView(bgp, pipeline.BindingTexture, staging); err != nil {
		return fmt.Errorf("failed to upload texture for %q: %w", obj.Name(), err)
	}
	if bgp.Sampler(pipeline.BindingSampler) == nil {
		if err := s.r.InitSampler(bgp, pipeline.BindingSampler, common.SamplerStagingData{}); err != nil {
			return fmt.Errorf("failed to create sampler for %q: %w", obj.Name(), err)
		}
	}
	if err := s.r.InitBindGroup(bgp, key, pipeline.GroupObject); err != nil {
		return fmt.Errorf("failed to init bind group for %q: %w", obj.Name(), err)
	}
	bgp.SetTextureVersion(version)
	return nil
}

// pipelineKeys returns the keys with queued draws in draw order.
func (s *scene) pipelineKeys() []string {
	keys := make([]string, 0, len(s.drawPool))
	known := make(map[string]bool, len(drawOrder))
	for _, k := range drawOrder {
		known[k] = true
		if len(s.drawPool[k]) > 0 {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k, objs := range s.drawPool {
		if !known[k] && len(objs) > 0 {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func (s *scene) Release() {
	s.walk(func(obj game_object.GameObject) {
		obj.BindGroupProvider().Release()
		if mdl := obj.Model(); mdl != nil {
			mdl.MeshProvider().Release()
		}
	})
	s.cam.BindGroupProvider().Release()
}

// walk visits every object depth first without holding the scene lock during the callback.
func (s *scene) walk(fn func(game_object.GameObject)) {
	for _, root := range s.Objects() {
		root.Walk(fn)
	}
}

func distanceSq(obj game_object.GameObject, eye common.Vec3) float32 {
	m := obj.WorldMatrix()
	d := common.Vec3{m[12], m[13], m[14]}.Sub(eye)
	return d.Dot(d)
}
