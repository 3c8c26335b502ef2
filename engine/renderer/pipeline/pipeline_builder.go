package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithSource sets the WGSL source and the entry points of both stages.
//
// Parameters:
//   - source: the WGSL module source
//   - vertexEntry: the vertex stage entry point
//   - fragmentEntry: the fragment stage entry point
//
// Returns:
//   - PipelineBuilderOption: a function that sets the shader source for this pipeline
func WithSource(source, vertexEntry, fragmentEntry string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.source = source
		p.vertexEntry = vertexEntry
		p.fragmentEntry = fragmentEntry
	}
}

// WithBindGroupLayouts sets the bind group layout descriptors, indexed by group.
func WithBindGroupLayouts(layouts ...wgpu.BindGroupLayoutDescriptor) PipelineBuilderOption {
	return func(p *pipeline) {
		p.groupLayouts = layouts
	}
}

// WithVertexLayouts sets the vertex buffer layouts, in slot order.
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLayouts = layouts
	}
}

// WithDepth sets how the pipeline uses the depth buffer.
//
// Parameters:
//   - mode: DepthReadWrite, DepthReadOnly or DepthIgnore
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth mode for this pipeline
func WithDepth(mode DepthMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depth = mode
	}
}

// WithBlend turns straight alpha blending on or off.
func WithBlend(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blend = enabled
	}
}
