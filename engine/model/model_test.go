package model

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexLayout(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.5, 1}}
	assert.Equal(t, GPUVertexStride, v.Size())
	assert.Len(t, v.Marshal(), GPUVertexStride)
	assert.Len(t, MarshalVertices([]GPUVertex{v, v, v}), 3*GPUVertexStride)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0}, MarshalIndices([]uint32{1, 2}))
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name        string
		model       Model
		vertexCount int
		indexCount  int
		min, max    common.Vec3
	}{
		{
			name:        "box",
			model:       NewBox(4, 0.2, 2),
			vertexCount: 24,
			indexCount:  36,
			min:         common.Vec3{-2, -0.1, -1},
			max:         common.Vec3{2, 0.1, 1},
		},
		{
			name:        "plane",
			model:       NewPlane(3, 2),
			vertexCount: 4,
			indexCount:  6,
			min:         common.Vec3{-1.5, -1, 0},
			max:         common.Vec3{1.5, 1, 0},
		},
		{
			name:        "cylinder",
			model:       NewCylinder(0.5, 0.5, 1, 8),
			vertexCount: 9*2 + 10*2,
			indexCount:  8*6 + 8*3*2,
			min:         common.Vec3{-0.5, -0.5, -0.5},
			max:         common.Vec3{0.5, 0.5, 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.model.Vertices(), tt.vertexCount)
			assert.Equal(t, tt.indexCount, tt.model.IndexCount())
			assert.Len(t, tt.model.IndexData(), tt.indexCount*4)
			assert.Len(t, tt.model.VertexData(), tt.vertexCount*GPUVertexStride)

			lo, hi := tt.model.Bounds()
			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.min[i], lo[i], 1e-5)
				assert.InDelta(t, tt.max[i], hi[i], 1e-5)
			}

			for _, idx := range tt.model.Indices() {
				require.Less(t, int(idx), tt.vertexCount)
			}
			require.NotNil(t, tt.model.MeshProvider())
		})
	}
}

func TestCylinderClampsSegments(t *testing.T) {
	m := NewCylinder(1, 1, 1, 1)
	assert.Equal(t, 3*6+3*3*2, m.IndexCount())
}

func TestNewModelEmpty(t *testing.T) {
	m := NewModel(WithName("empty"))
	lo, hi := m.Bounds()
	assert.Equal(t, common.Vec3{}, lo)
	assert.Equal(t, common.Vec3{}, hi)
	assert.Zero(t, m.IndexCount())
	assert.Equal(t, "mesh_empty", m.MeshProvider().Label())
}
