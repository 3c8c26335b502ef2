package camera

import (
	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// GPUCameraUniformSize is the byte size of the WGSL Camera struct.
const GPUCameraUniformSize = 80

// GPUCameraUniform is the camera block bound at group 0, binding 0: the combined
// view-projection matrix followed by the eye position, which the shader uses for fog
// distance and specular highlights.
type GPUCameraUniform struct {
	ViewProj [16]float32
	Eye      [3]float32
}

// Marshal packs the uniform into its 80-byte WGSL layout. The eye is padded to a vec4.
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, 0, GPUCameraUniformSize)
	buf = common.AppendFloats(buf, g.ViewProj[:]...)
	return common.AppendFloats(buf, g.Eye[0], g.Eye[1], g.Eye[2], 0)
}
