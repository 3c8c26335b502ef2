package bind_group_provider

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("mesh_box", WithIndexCount(36))

	assert.Equal(t, "mesh_box", p.Label())
	assert.Equal(t, 36, p.IndexCount())
	assert.False(t, p.Initialized())
	assert.Nil(t, p.Buffer(0))
	assert.Nil(t, p.TextureView(1))
	assert.Nil(t, p.Sampler(2))
}

func TestSlotsHoldOneResourceEach(t *testing.T) {
	p := NewBindGroupProvider("panel")
	view := &wgpu.TextureView{}
	sampler := &wgpu.Sampler{}

	p.SetTextureView(1, view)
	p.SetSampler(2, sampler)

	assert.Same(t, view, p.TextureView(1))
	assert.Nil(t, p.Sampler(1), "a texture slot holds no sampler")
	assert.Same(t, sampler, p.Sampler(2))
	assert.Nil(t, p.Buffer(2))

	replaced := &wgpu.Sampler{}
	p.SetSampler(2, replaced)
	assert.Same(t, replaced, p.Sampler(2))
}

func TestSetMeshInitializes(t *testing.T) {
	p := NewBindGroupProvider("mesh_plane")
	vertices := &wgpu.Buffer{}

	p.SetMesh(vertices, nil, 6)

	assert.True(t, p.Initialized())
	assert.Same(t, vertices, p.VertexBuffer())
	assert.Nil(t, p.IndexBuffer())
	assert.Equal(t, 6, p.IndexCount())
}

func TestTextureVersionResetOnRelease(t *testing.T) {
	p := NewBindGroupProvider("label", WithIndexCount(12))
	p.SetTextureVersion(3)
	assert.Equal(t, uint64(3), p.TextureVersion())

	p.Release()
	assert.Zero(t, p.TextureVersion())
	assert.False(t, p.Initialized())
	assert.Equal(t, 12, p.IndexCount())
}
