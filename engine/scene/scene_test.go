package scene

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/camera"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/light"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records what the scene asks of the GPU.
type fakeRenderer struct {
	mu       sync.Mutex
	draws    []string
	uploads  int
	writes   int
	samplers int
}

var _ renderer.Renderer = &fakeRenderer{}

func (f *fakeRenderer) Pipeline(string) pipeline.Pipeline            { return nil }
func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline      { return nil }
func (f *fakeRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }
func (f *fakeRenderer) Resize(int, int) error                        { return nil }
func (f *fakeRenderer) SetPresentMode(renderer.PresentMode)          {}
func (f *fakeRenderer) SetClearColor([3]float32)                     {}
func (f *fakeRenderer) BeginFrame() error                            { return nil }
func (f *fakeRenderer) EndFrame()                                    {}
func (f *fakeRenderer) Present()                                     {}
func (f *fakeRenderer) Release()                                     {}

func (f *fakeRenderer) InitMeshBuffers(p bind_group_provider.BindGroupProvider, _, _ []byte, n int) error {
	p.SetMesh(&wgpu.Buffer{}, nil, n)
	return nil
}

func (f *fakeRenderer) InitBindGroup(p bind_group_provider.BindGroupProvider, _ string, _ int) error {
	p.SetBindGroup(&wgpu.BindGroup{})
	return nil
}

func (f *fakeRenderer) InitTextureView(p bind_group_provider.BindGroupProvider, binding int, _ common.TextureStagingData) error {
	f.uploads++
	p.SetTextureView(binding, &wgpu.TextureView{})
	return nil
}

func (f *fakeRenderer) InitSampler(p bind_group_provider.BindGroupProvider, binding int, _ common.SamplerStagingData) error {
	f.samplers++
	p.SetSampler(binding, &wgpu.Sampler{})
	return nil
}

func (f *fakeRenderer) WriteBuffers(w []bind_group_provider.BufferWrite) {
	f.writes += len(w)
}

func (f *fakeRenderer) DrawCall(key string, _ bind_group_provider.BindGroupProvider, _ uint32, groups []bind_group_provider.BindGroupProvider) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(groups) != 2 {
		return errors.New("expected frame and object bind groups")
	}
	f.draws = append(f.draws, key)
	return nil
}

func box(name string, z float32, opts ...game_object.GameObjectBuilderOption) game_object.GameObject {
	base := []game_object.GameObjectBuilderOption{
		game_object.WithName(name),
		game_object.WithModel(model.NewBox(2, 2, 2)),
		game_object.WithMaterial(material.NewMaterial()),
		game_object.WithPosition(0, 0, z),
	}
	return game_object.NewGameObject(append(base, opts...)...)
}

func TestNewScenePanicsWithoutCamera(t *testing.T) {
	assert.Panics(t, func() { NewScene("broken", nil) })
}

func TestTickRunsCallbacksInOrderThenCamera(t *testing.T) {
	ctrl := camera.NewCameraController()
	cam := camera.NewCamera(camera.WithController(ctrl))
	s := NewScene("world", cam)

	var order []string
	var elapsed []float32
	s.OnFrame(func(dt, total float32) {
		order = append(order, "first")
		elapsed = append(elapsed, total)
	})
	s.OnFrame(func(dt, total float32) { order = append(order, "second") })
	s.OnFrame(nil)

	ctrl.SetGoal(10, 2, 5)
	s.Tick(0.5)
	s.Tick(0.25)

	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	assert.Equal(t, []float32{0.5, 0.75}, elapsed)
	assert.InDelta(t, 0.75, s.Elapsed(), 1e-6)

	x, _, _ := ctrl.Position()
	assert.Greater(t, x, float32(0), "controller advanced toward the goal")
	assert.Equal(t, x, cam.Position()[0], "camera follows the controller after Tick")
}

func TestPickNearestInteractive(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("world", cam)

	var clicked []string
	far := box("far", 0)
	near := box("near", 3)
	decoration := box("decoration", 6)
	hidden := box("hidden", 5)
	far.OnClick(func() { clicked = append(clicked, "far") })
	near.OnClick(func() { clicked = append(clicked, "near") })
	hidden.OnClick(func() { clicked = append(clicked, "hidden") })
	hidden.SetEnabled(false)
	s.Add(far, near, decoration, hidden)

	hit := s.Pick(400, 400, 800, 800)
	require.NotNil(t, hit)
	assert.Equal(t, "near", hit.Name())

	assert.Nil(t, s.Pick(5, 5, 800, 800), "corner misses every box")

	assert.True(t, s.Click(400, 400, 800, 800))
	assert.False(t, s.Click(5, 5, 800, 800))
	assert.Equal(t, []string{"near"}, clicked)

	near.SetEnabled(false)
	assert.Equal(t, "far", s.Pick(400, 400, 800, 800).Name())
}

func TestPickHitsChildInWorldSpace(t *testing.T) {
	s := NewScene("world", camera.NewCamera())
	group := game_object.NewGameObject(game_object.WithPosition(2, 0, 0))
	child := box("child", 0)
	child.OnClick(func() {})
	group.AddChild(child)
	s.Add(group)

	assert.Nil(t, s.Pick(400, 400, 800, 800), "child sits right of centre")
	// At fov 60 from z = 10 the half-width at z = 1 is about 5.2, so x = 2 lands near pixel 554.
	hit := s.Pick(554, 400, 800, 800)
	require.NotNil(t, hit)
	assert.Equal(t, "child", hit.Name())
	assert.Equal(t, 2, s.Count())
}

func TestPointerMoveEnterLeave(t *testing.T) {
	s := NewScene("world", camera.NewCamera())
	target := box("target", 0)

	var events []string
	target.OnPointerEnter(func() { events = append(events, "enter") })
	target.OnPointerLeave(func() { events = append(events, "leave") })
	s.Add(target)

	assert.Equal(t, target, s.PointerMove(400, 400, 800, 800))
	s.PointerMove(401, 400, 800, 800)
	assert.Equal(t, target, s.Hovered())
	assert.Nil(t, s.PointerMove(5, 5, 800, 800))
	s.PointerMove(400, 400, 800, 800)
	s.PointerExit()
	s.PointerExit()

	assert.Equal(t, []string{"enter", "leave", "enter", "leave"}, events)
	assert.Nil(t, s.Hovered())
}

func TestPreloadRunsEveryObject(t *testing.T) {
	s := NewScene("world", camera.NewCamera(), WithPreloadWorkers(3))

	var ran atomic.Int32
	root := game_object.NewGameObject()
	for i := 0; i < 20; i++ {
		child := game_object.NewGameObject()
		child.SetPreload(func() error {
			ran.Add(1)
			return nil
		})
		root.AddChild(child)
	}
	s.Add(root)

	require.NoError(t, s.Preload(context.Background()))
	assert.Equal(t, int32(20), ran.Load())
}

func TestPreloadJoinsErrors(t *testing.T) {
	s := NewScene("world", camera.NewCamera())
	bad := game_object.NewGameObject(game_object.WithName("bad"))
	bad.SetPreload(func() error { return errors.New("font missing") })
	good := game_object.NewGameObject(game_object.WithName("good"))
	s.Add(bad, good)

	err := s.Preload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `preload "bad"`)
	assert.Contains(t, err.Error(), "font missing")
}

func TestPreloadCancelled(t *testing.T) {
	s := NewScene("world", camera.NewCamera())
	var ran atomic.Int32
	obj := game_object.NewGameObject()
	obj.SetPreload(func() error {
		ran.Add(1)
		return nil
	})
	s.Add(obj)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Preload(ctx), context.Canceled)
	assert.Equal(t, int32(0), ran.Load())
}

func TestDrawCallsRequiresRenderer(t *testing.T) {
	s := NewScene("world", camera.NewCamera())
	err := s.DrawCalls()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no renderer")
}

func TestDrawCallsOrderAndFiltering(t *testing.T) {
	fr := &fakeRenderer{}
	s := NewScene("world", camera.NewCamera(), WithRenderer(fr),
		WithLights(light.NewLight(light.WithType(light.LightTypeAmbient))),
		WithFog(light.Fog{Near: 10, Far: 50}),
	)

	tex := common.TextureStagingData{Pixels: make([]byte, 16), Width: 2, Height: 2}
	hud := box("hud", 0, game_object.WithMaterial(material.NewMaterial(material.WithPipelineKey(material.PipelineHUD))))
	label := box("label", 1, game_object.WithMaterial(material.NewMaterial(
		material.WithPipelineKey(material.PipelineLabel),
		material.WithTexture(&tex),
	)))
	unrasterised := box("pending", 1, game_object.WithMaterial(material.NewMaterial(material.WithPipelineKey(material.PipelineLabel))))
	lit := box("lit", 0)
	behind := box("behind", 20)
	disabled := box("disabled", 0, game_object.WithEnabled(false))
	group := game_object.NewGameObject()
	s.Add(hud, label, unrasterised, lit, behind, disabled, group)

	require.NoError(t, s.DrawCalls())
	assert.Equal(t, []string{material.PipelineLit, material.PipelineLabel, material.PipelineHUD}, fr.draws)
	assert.Equal(t, 3, fr.uploads)
	assert.Equal(t, 3, fr.samplers)
	assert.Equal(t, 2+3, fr.writes, "frame uniforms plus one per drawn object")

	fr.draws = nil
	require.NoError(t, s.DrawCalls())
	assert.Len(t, fr.draws, 3)
	assert.Equal(t, 3, fr.uploads, "textures are uploaded once")

	label.Material().SetTexture(&tex)
	require.NoError(t, s.DrawCalls())
	assert.Equal(t, 4, fr.uploads, "a new texture version is re-uploaded")
	assert.Equal(t, 3, fr.samplers, "the sampler is kept")
}

func TestDrawCallsCullingDisabled(t *testing.T) {
	fr := &fakeRenderer{}
	s := NewScene("world", camera.NewCamera(), WithRenderer(fr), WithCullingDisabled(true))
	s.Add(box("behind", 20))

	require.NoError(t, s.DrawCalls())
	assert.Equal(t, []string{material.PipelineLit}, fr.draws)
}

func TestRemove(t *testing.T) {
	s := NewScene("world", camera.NewCamera())
	a, b := box("a", 0), box("b", 3)
	s.Add(a, b)

	assert.True(t, s.Remove(b))
	assert.False(t, s.Remove(b))
	require.Len(t, s.Objects(), 1)
	assert.Equal(t, a, s.Objects()[0])
}

func TestBuilderOptions(t *testing.T) {
	s := NewScene("hud", camera.NewCamera(), WithOrder(10), WithActive(false), WithObjects(box("a", 0)))
	assert.Equal(t, "hud", s.Name())
	assert.Equal(t, 10, s.Order())
	assert.False(t, s.Active())
	assert.Len(t, s.Objects(), 1)
	assert.Nil(t, s.Fog())

	s.SetActive(true)
	s.SetFog(&light.Fog{Near: 1, Far: 2})
	s.AddLight(light.NewLight())
	assert.True(t, s.Active())
	assert.NotNil(t, s.Fog())
	assert.Len(t, s.Lights(), 1)
}
