package renderer

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records calls instead of talking to a GPU.
type fakeBackend struct {
	registered []string
	draws      []string
	bindGroups []int
	writes     int
	released   bool
}

func (f *fakeBackend) Device() *wgpu.Device                             { return nil }
func (f *fakeBackend) Queue() *wgpu.Queue                               { return nil }
func (f *fakeBackend) Surface() *wgpu.Surface                           { return nil }
func (f *fakeBackend) ConfigureSurface(_, _ int) error                  { return nil }
func (f *fakeBackend) SetPresentMode(_ PresentMode)                     {}
func (f *fakeBackend) SetClearColor(_ [3]float32)                       {}
func (f *fakeBackend) BeginFrame() error                                { return nil }
func (f *fakeBackend) EndFrame()                                        {}
func (f *fakeBackend) Present()                                         {}
func (f *fakeBackend) Release()                                         { f.released = true }
func (f *fakeBackend) WriteBuffers(w []bind_group_provider.BufferWrite) { f.writes += len(w) }

func (f *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	f.registered = append(f.registered, p.PipelineKey())
	return nil
}

func (f *fakeBackend) InitMeshBuffers(_ bind_group_provider.BindGroupProvider, _, _ []byte, _ int) error {
	return nil
}

func (f *fakeBackend) InitBindGroup(_ bind_group_provider.BindGroupProvider, _ *wgpu.BindGroupLayout, d wgpu.BindGroupLayoutDescriptor) error {
	f.bindGroups = append(f.bindGroups, len(d.Entries))
	return nil
}

func (f *fakeBackend) InitTextureView(_ bind_group_provider.BindGroupProvider, _ int, _ common.TextureStagingData) error {
	return nil
}

func (f *fakeBackend) InitSampler(_ bind_group_provider.BindGroupProvider, _ int, _ common.SamplerStagingData) error {
	return nil
}

func (f *fakeBackend) DrawCall(p pipeline.Pipeline, _ bind_group_provider.BindGroupProvider, _ uint32, _ []bind_group_provider.BindGroupProvider) {
	f.draws = append(f.draws, p.PipelineKey())
}

func newTestRenderer(backend *fakeBackend) *renderer {
	return &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backend:       backend,
	}
}

func TestRegisterPipelinesSkipsDuplicates(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(backend)

	require.NoError(t, r.RegisterPipelines(pipeline.Standard()...))
	require.NoError(t, r.RegisterPipelines(pipeline.NewPipeline(material.PipelineLit)))

	assert.Equal(t, []string{material.PipelineLit, material.PipelineLabel, material.PipelineHUD}, backend.registered)
	assert.Len(t, r.Pipelines(), 3)
	assert.NotNil(t, r.Pipeline(material.PipelineHUD))
	assert.Nil(t, r.Pipeline("missing"))
}

func TestDrawCallUnknownPipeline(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(backend)
	require.NoError(t, r.RegisterPipelines(pipeline.Standard()...))

	mesh := bind_group_provider.NewBindGroupProvider("mesh")
	require.NoError(t, r.DrawCall(material.PipelineLabel, mesh, 1, nil))
	err := r.DrawCall("missing", mesh, 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, []string{material.PipelineLabel}, backend.draws)
}

func TestInitBindGroupResolvesLayout(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(backend)
	require.NoError(t, r.RegisterPipelines(pipeline.Standard()...))

	provider := bind_group_provider.NewBindGroupProvider("object")
	require.NoError(t, r.InitBindGroup(provider, material.PipelineLit, pipeline.GroupFrame))
	require.NoError(t, r.InitBindGroup(provider, material.PipelineLit, pipeline.GroupObject))
	assert.Equal(t, []int{2, 3}, backend.bindGroups)

	assert.Error(t, r.InitBindGroup(provider, material.PipelineLit, 5))
	assert.Error(t, r.InitBindGroup(provider, "missing", 0))
}

func TestReleaseClearsPipelines(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(backend)
	require.NoError(t, r.RegisterPipelines(pipeline.Standard()...))

	r.Release()
	assert.Empty(t, r.Pipelines())
	assert.True(t, backend.released)
}

func TestMSAAFromSamples(t *testing.T) {
	assert.Equal(t, MSAA4x, MSAAFromSamples(4))
	assert.Equal(t, MSAAOff, MSAAFromSamples(1))
	assert.Equal(t, MSAAOff, MSAAFromSamples(8))
}
