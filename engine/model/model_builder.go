package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName sets the model name. The mesh provider is labelled "mesh_<name>".
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMesh sets the geometry: vertices in model space and the triangle list indexing them.
// Both slices are kept, not copied.
//
// Parameters:
//   - vertices: the mesh vertices
//   - indices: three indices per triangle, counter-clockwise when seen from the front
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry to a model
func WithMesh(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
		m.indices = indices
	}
}
