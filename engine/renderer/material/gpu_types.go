package material

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// GPUMaterialParams is the GPU-aligned material block of the per-object uniform.
// Matches the WGSL MaterialParams struct of the portfolio shader.
// Size: 48 bytes (three vec4<f32>, std140 aligned).
type GPUMaterialParams struct {
	BaseColor [4]float32 // offset  0: RGBA base color (16 bytes)
	Emissive  [4]float32 // offset 16: RGB emissive color + intensity (16 bytes)
	Params    [4]float32 // offset 32: metallic, roughness, unlit flag, texture flag (16 bytes)
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, 0, 48)
	buf = common.AppendFloats(buf, g.BaseColor[:]...)
	buf = common.AppendFloats(buf, g.Emissive[:]...)
	return common.AppendFloats(buf, g.Params[:]...)
}
