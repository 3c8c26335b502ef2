package game_object

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
)

// GPUObjectUniform is the per-object uniform bound at group 1.
// Matches the WGSL Object struct of the portfolio shader.
// Size: 112 bytes.
type GPUObjectUniform struct {
	Model    [16]float32                // offset  0: world matrix (mat4x4<f32>)
	Material material.GPUMaterialParams // offset 64: material block (48 bytes)
}

// Size returns the size of the GPUObjectUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (g *GPUObjectUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUObjectUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 112-byte buffer ready for GPU upload
func (g *GPUObjectUniform) Marshal() []byte {
	buf := common.AppendFloats(make([]byte, 0, 112), g.Model[:]...)
	return append(buf, g.Material.Marshal()...)
}
