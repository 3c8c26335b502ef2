package model

import (
	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	vertices     []GPUVertex
	indices      []uint32
	boundsMin    common.Vec3
	boundsMax    common.Vec3
	meshProvider bind_group_provider.BindGroupProvider
}

// Model defines the interface for a static triangle mesh.
// A Model holds CPU-side vertex and index data plus the BindGroupProvider that
// carries its GPU buffers once the renderer has uploaded them. Models are shared
// between game objects; the mesh data is immutable after construction.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices, must not be modified
	Vertices() []GPUVertex

	// Indices returns the triangle indices.
	//
	// Returns:
	//   - []uint32: the indices, must not be modified
	Indices() []uint32

	// VertexData returns the vertex data packed for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the index data packed for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Bounds returns the model-space axis-aligned bounding box.
	//
	// Returns:
	//   - common.Vec3: minimum corner
	//   - common.Vec3: maximum corner
	Bounds() (common.Vec3, common.Vec3)

	// MeshProvider retrieves the BindGroupProvider holding the GPU vertex and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// The bounding box is computed from the vertices.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	m.computeBounds()
	m.meshProvider = bind_group_provider.NewBindGroupProvider("mesh_"+m.name, bind_group_provider.WithIndexCount(len(m.indices)))
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return MarshalIndices(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) Bounds() (common.Vec3, common.Vec3) {
	return m.boundsMin, m.boundsMax
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) computeBounds() {
	if len(m.vertices) == 0 {
		return
	}
	m.boundsMin = common.Vec3(m.vertices[0].Position)
	m.boundsMax = m.boundsMin
	for _, v := range m.vertices[1:] {
		for i := 0; i < 3; i++ {
			m.boundsMin[i] = min(m.boundsMin[i], v.Position[i])
			m.boundsMax[i] = max(m.boundsMax[i], v.Position[i])
		}
	}
}
