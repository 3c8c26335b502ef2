package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// slot is the GPU resource bound at one binding index. Exactly one field is set.
type slot struct {
	buffer  *wgpu.Buffer
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
}

func (s *slot) release() {
	switch {
	case s.buffer != nil:
		s.buffer.Release()
	case s.view != nil:
		s.view.Release()
	case s.sampler != nil:
		s.sampler.Release()
	}
}

// mesh is the geometry half of a provider, used by model providers only.
type mesh struct {
	vertices   *wgpu.Buffer
	indices    *wgpu.Buffer
	indexCount int
}

type bindGroupProvider struct {
	label string

	// Everything below is created by the Renderer and released by Release.
	bindGroup *wgpu.BindGroup
	slots     map[int]*slot
	mesh      mesh

	// textureVersion is the Material.TextureVersion currently on the GPU.
	textureVersion uint64
}

// BindGroupProvider owns the GPU resources behind one drawable thing: the camera uniforms,
// the scene lights, a panel's object uniforms and texture, or a model's vertex and index
// buffers. It starts empty. The Scene asks the Renderer to fill it the first time its
// owner is drawn and afterwards only queues BufferWrites against it.
//
// The setters only store. Whoever replaces a resource releases the old one.
type BindGroupProvider interface {
	// Release frees every GPU resource and returns the provider to the empty state.
	Release()

	// Label returns the debug label given to every GPU object created for this provider.
	Label() string

	// Initialized reports whether the Renderer has created a bind group or a vertex buffer.
	Initialized() bool

	// BindGroup returns the bind group, or nil before initialization.
	BindGroup() *wgpu.BindGroup

	// Buffer returns the uniform buffer at binding, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// TextureView returns the texture view at binding, or nil.
	TextureView(binding int) *wgpu.TextureView

	// Sampler returns the sampler at binding, or nil.
	Sampler(binding int) *wgpu.Sampler

	// VertexBuffer returns the mesh vertex buffer, or nil.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the mesh index buffer, or nil.
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices a draw call issues.
	IndexCount() int

	// TextureVersion returns the version of the texture last uploaded, zero when none.
	TextureVersion() uint64

	// SetTextureVersion records the version of the texture just uploaded.
	SetTextureVersion(version uint64)

	// SetBindGroup stores the bind group. The caller releases any group it replaces.
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBuffer stores a uniform buffer at binding.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the created buffer
	SetBuffer(binding int, buf *wgpu.Buffer)

	// SetTextureView stores a texture view at binding.
	SetTextureView(binding int, tv *wgpu.TextureView)

	// SetSampler stores a sampler at binding.
	SetSampler(binding int, s *wgpu.Sampler)

	// SetMesh stores the geometry buffers. Either buffer may be nil when the mesh has no data for it.
	//
	// Parameters:
	//   - vertices: the vertex buffer
	//   - indices: the index buffer
	//   - indexCount: the number of indices to draw
	SetMesh(vertices, indices *wgpu.Buffer, indexCount int)
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty BindGroupProvider.
//
// Parameters:
//   - label: the debug label passed to every GPU object created for this provider
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - BindGroupProvider: the new provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label: label,
		slots: make(map[int]*slot),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) Initialized() bool {
	return p.bindGroup != nil || p.mesh.vertices != nil
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	if s, ok := p.slots[binding]; ok {
		return s.buffer
	}
	return nil
}

func (p *bindGroupProvider) TextureView(binding int) *wgpu.TextureView {
	if s, ok := p.slots[binding]; ok {
		return s.view
	}
	return nil
}

func (p *bindGroupProvider) Sampler(binding int) *wgpu.Sampler {
	if s, ok := p.slots[binding]; ok {
		return s.sampler
	}
	return nil
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.mesh.vertices
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.mesh.indices
}

func (p *bindGroupProvider) IndexCount() int {
	return p.mesh.indexCount
}

func (p *bindGroupProvider) TextureVersion() uint64 {
	return p.textureVersion
}

func (p *bindGroupProvider) SetTextureVersion(version uint64) {
	p.textureVersion = version
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.bind(binding, &slot{buffer: buf})
}

func (p *bindGroupProvider) SetTextureView(binding int, tv *wgpu.TextureView) {
	p.bind(binding, &slot{view: tv})
}

func (p *bindGroupProvider) SetSampler(binding int, s *wgpu.Sampler) {
	p.bind(binding, &slot{sampler: s})
}

func (p *bindGroupProvider) bind(binding int, s *slot) {
	if p.slots == nil {
		p.slots = make(map[int]*slot)
	}
	p.slots[binding] = s
}

func (p *bindGroupProvider) SetMesh(vertices, indices *wgpu.Buffer, indexCount int) {
	p.mesh = mesh{vertices: vertices, indices: indices, indexCount: indexCount}
}

func (p *bindGroupProvider) Release() {
	for binding, s := range p.slots {
		s.release()
		delete(p.slots, binding)
	}
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.mesh.vertices != nil {
		p.mesh.vertices.Release()
	}
	if p.mesh.indices != nil {
		p.mesh.indices.Release()
	}
	// The index count belongs to the geometry and is kept.
	p.mesh = mesh{indexCount: p.mesh.indexCount}
	p.textureVersion = 0
}
