package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// DepthMode is how a pipeline treats the depth buffer.
type DepthMode int

const (
	// DepthReadWrite tests against and writes depth. Opaque panels and models use it.
	DepthReadWrite DepthMode = iota
	// DepthReadOnly tests but does not write, so labels hide behind panels without hiding each other.
	DepthReadOnly
	// DepthIgnore draws over everything, for the HUD.
	DepthIgnore
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	pipelineKey string

	// source is the WGSL module shared by the vertex and fragment stages.
	source         string
	vertexEntry    string
	fragmentEntry  string
	groupLayouts   []wgpu.BindGroupLayoutDescriptor
	vertexLayouts  []wgpu.VertexBufferLayout
	renderPipeline *wgpu.RenderPipeline

	// bindGroupLayouts are created by the renderer backend from groupLayouts.
	bindGroupLayouts []*wgpu.BindGroupLayout

	depth DepthMode
	blend bool
}

// Pipeline describes one render pipeline: its WGSL source, entry points, resource
// layouts and fixed-function state. The renderer backend compiles it into a
// wgpu.RenderPipeline on registration and keeps the created bind group layouts on it,
// so every bind group drawn with the pipeline is created against the pipeline's own layouts.
type Pipeline interface {
	// PipelineKey retrieves the unique key identifying this pipeline.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Source retrieves the WGSL source of the pipeline's shader module.
	//
	// Returns:
	//   - string: the WGSL source
	Source() string

	// VertexEntryPoint retrieves the name of the vertex stage entry point.
	//
	// Returns:
	//   - string: the vertex entry point
	VertexEntryPoint() string

	// FragmentEntryPoint retrieves the name of the fragment stage entry point.
	//
	// Returns:
	//   - string: the fragment entry point
	FragmentEntryPoint() string

	// BindGroupLayoutDescriptors retrieves the layout descriptors indexed by group.
	//
	// Returns:
	//   - []wgpu.BindGroupLayoutDescriptor: one descriptor per bind group
	BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor

	// VertexBufferLayouts retrieves the vertex buffer layouts of the vertex stage.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the vertex buffer layouts
	VertexBufferLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayout retrieves the created layout for a group.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout, or nil before registration or for an unknown group
	BindGroupLayout(group int) *wgpu.BindGroupLayout

	// Pipeline retrieves the compiled render pipeline.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the render pipeline, or nil before registration
	Pipeline() *wgpu.RenderPipeline

	// Registered reports whether the backend has compiled the pipeline.
	//
	// Returns:
	//   - bool: true once SetRenderPipeline has been called with a pipeline
	Registered() bool

	// Depth retrieves how the pipeline uses the depth buffer.
	Depth() DepthMode

	// Blend reports whether fragments are alpha blended over the target.
	Blend() bool

	// ColorTarget builds the color target state for a surface format.
	//
	// Parameters:
	//   - format: the surface texture format
	//
	// Returns:
	//   - wgpu.ColorTargetState: the target, with straight alpha blending when Blend is set
	ColorTarget(format wgpu.TextureFormat) wgpu.ColorTargetState

	// DepthStencil builds the depth state for the shared Depth24Plus attachment.
	DepthStencil() *wgpu.DepthStencilState

	// SetRenderPipeline stores the compiled render pipeline.
	//
	// Parameters:
	//   - p: the render pipeline created by the backend
	SetRenderPipeline(p *wgpu.RenderPipeline)

	// SetBindGroupLayouts stores the bind group layouts created by the backend.
	//
	// Parameters:
	//   - layouts: the layouts indexed by group
	SetBindGroupLayouts(layouts []*wgpu.BindGroupLayout)

	// Release releases the compiled pipeline and its bind group layouts.
	Release()
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new render Pipeline with the given key and options.
// Defaults: the vs_main and fs_main entry points, DepthReadWrite and no blending.
//
// Parameters:
//   - pipelineKey: the unique key identifying this pipeline
//   - opts: a variadic list of PipelineBuilderOption functions
//
// Returns:
//   - Pipeline: the configured pipeline
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:   pipelineKey,
		vertexEntry:   "vs_main",
		fragmentEntry: "fs_main",
		depth:         DepthReadWrite,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Source() string {
	return p.source
}

func (p *pipeline) VertexEntryPoint() string {
	return p.vertexEntry
}

func (p *pipeline) FragmentEntryPoint() string {
	return p.fragmentEntry
}

func (p *pipeline) BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor {
	return p.groupLayouts
}

func (p *pipeline) VertexBufferLayouts() []wgpu.VertexBufferLayout {
	return p.vertexLayouts
}

func (p *pipeline) BindGroupLayout(group int) *wgpu.BindGroupLayout {
	if group < 0 || group >= len(p.bindGroupLayouts) {
		return nil
	}
	return p.bindGroupLayouts[group]
}

func (p *pipeline) Pipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) Registered() bool {
	return p.renderPipeline != nil
}

func (p *pipeline) Depth() DepthMode {
	return p.depth
}

func (p *pipeline) Blend() bool {
	return p.blend
}

// alphaBlend is straight alpha over the target, keeping the target's alpha coverage.
var alphaBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

func (p *pipeline) ColorTarget(format wgpu.TextureFormat) wgpu.ColorTargetState {
	target := wgpu.ColorTargetState{
		Format:    format,
		WriteMask: wgpu.ColorWriteMaskAll,
	}
	if p.blend {
		blend := alphaBlend
		target.Blend = &blend
	}
	return target
}

func (p *pipeline) DepthStencil() *wgpu.DepthStencilState {
	always := wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways}
	state := &wgpu.DepthStencilState{
		Format:            wgpu.TextureFormatDepth24Plus,
		DepthWriteEnabled: p.depth == DepthReadWrite,
		DepthCompare:      wgpu.CompareFunctionLess,
		StencilFront:      always,
		StencilBack:       always,
	}
	if p.depth == DepthIgnore {
		state.DepthCompare = wgpu.CompareFunctionAlways
	}
	return state
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}

func (p *pipeline) SetBindGroupLayouts(layouts []*wgpu.BindGroupLayout) {
	p.bindGroupLayouts = layouts
}

func (p *pipeline) Release() {
	if p.renderPipeline != nil {
		p.renderPipeline.Release()
		p.renderPipeline = nil
	}
	for _, l := range p.bindGroupLayouts {
		if l != nil {
			l.Release()
		}
	}
	p.bindGroupLayouts = nil
}
