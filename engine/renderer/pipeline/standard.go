package pipeline

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed portfolio.wgsl
var portfolioSource string

// Uniform block sizes of the portfolio shader, in bytes.
const (
	CameraUniformSize = 80
	LightsUniformSize = 208
	ObjectUniformSize = 112
)

// Bind group indices and bindings of the portfolio shader.
const (
	// GroupFrame holds the per-scene camera and light uniforms.
	GroupFrame = 0
	// GroupObject holds the per-object uniform, texture and sampler.
	GroupObject = 1

	BindingCamera  = 0
	BindingLights  = 1
	BindingObject  = 0
	BindingTexture = 1
	BindingSampler = 2
)

// FrameLayout is the layout of GroupFrame.
var FrameLayout = wgpu.BindGroupLayoutDescriptor{
	Label: "Frame Layout",
	Entries: []wgpu.BindGroupLayoutEntry{
		{
			Binding:    BindingCamera,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: CameraUniformSize,
			},
		},
		{
			Binding:    BindingLights,
			Visibility: wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: LightsUniformSize,
			},
		},
	},
}

// ObjectLayout is the layout of GroupObject.
var ObjectLayout = wgpu.BindGroupLayoutDescriptor{
	Label: "Object Layout",
	Entries: []wgpu.BindGroupLayoutEntry{
		{
			Binding:    BindingObject,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: ObjectUniformSize,
			},
		},
		{
			Binding:    BindingTexture,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
			},
		},
		{
			Binding:    BindingSampler,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	},
}

// VertexLayout matches model.GPUVertex: position, normal, uv.
var VertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: 32,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
	},
}

// Standard returns the three pipelines every portfolio scene draws with, in draw order:
// opaque lit geometry, depth-tested transparent labels, then the always-on-top HUD.
//
// Returns:
//   - []Pipeline: the lit, label and hud pipelines
func Standard() []Pipeline {
	shared := []PipelineBuilderOption{
		WithBindGroupLayouts(FrameLayout, ObjectLayout),
		WithVertexLayouts(VertexLayout),
	}
	lit := NewPipeline(material.PipelineLit, append(shared,
		WithSource(portfolioSource, "vs_main", "fs_lit"),
		WithBlend(true),
	)...)
	label := NewPipeline(material.PipelineLabel, append(shared,
		WithSource(portfolioSource, "vs_main", "fs_label"),
		WithBlend(true),
		WithDepth(DepthReadOnly),
	)...)
	hud := NewPipeline(material.PipelineHUD, append(shared,
		WithSource(portfolioSource, "vs_main", "fs_label"),
		WithBlend(true),
		WithDepth(DepthIgnore),
	)...)
	return []Pipeline{lit, label, hud}
}
