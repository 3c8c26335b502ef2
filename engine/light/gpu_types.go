package light

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// MaxPointLights is the number of point light slots in GPULightsUniform.
// Extra enabled point lights are dropped in scene order.
const MaxPointLights = 4

// GPUPointLight is one point light slot of GPULightsUniform.
// Size: 32 bytes.
type GPUPointLight struct {
	Position [3]float32 // offset  0: world-space position (12 bytes)
	Range    float32    // offset 12: attenuation cutoff distance (4 bytes)
	Color    [3]float32 // offset 16: RGB color (12 bytes)
	Strength float32    // offset 28: intensity (4 bytes)
}

// GPULightsUniform is the GPU-aligned scene lighting block, bound next to the camera uniform.
// Matches the WGSL Lights struct of the portfolio shader.
// Size: 208 bytes.
type GPULightsUniform struct {
	Ambient      [4]float32                    // offset   0: RGB ambient color * intensity, w unused
	DirDirection [4]float32                    // offset  16: normalized direction, w unused
	DirColor     [4]float32                    // offset  32: RGB color, w = intensity
	FogColor     [4]float32                    // offset  48: RGB fog color, w unused
	FogParams    [4]float32                    // offset  64: near, far, point light count, fog enabled
	Points       [MaxPointLights]GPUPointLight // offset  80: point light slots
}

// Size returns the size of the GPULightsUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPULightsUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightsUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 208-byte buffer ready for GPU upload
func (g *GPULightsUniform) Marshal() []byte {
	buf := make([]byte, 0, 208)
	for _, vec := range [5][4]float32{g.Ambient, g.DirDirection, g.DirColor, g.FogColor, g.FogParams} {
		buf = common.AppendFloats(buf, vec[:]...)
	}
	for _, p := range g.Points {
		buf = common.AppendFloats(buf, p.Position[0], p.Position[1], p.Position[2], p.Range)
		buf = common.AppendFloats(buf, p.Color[0], p.Color[1], p.Color[2], p.Strength)
	}
	return buf
}

// BuildUniform packs the enabled lights and the fog into the uniform layout.
// Ambient lights accumulate; the first enabled directional light wins; point lights fill
// the slots in order until MaxPointLights.
//
// Parameters:
//   - lights: the scene lights
//   - fog: the scene fog, nil for none
//
// Returns:
//   - GPULightsUniform: the packed uniform
func BuildUniform(lights []Light, fog *Fog) GPULightsUniform {
	var u GPULightsUniform
	var haveDir bool
	points := 0
	for _, l := range lights {
		if !l.Enabled() {
			continue
		}
		c, i := l.Color(), l.Intensity()
		switch l.Type() {
		case LightTypeAmbient:
			u.Ambient[0] += c[0] * i
			u.Ambient[1] += c[1] * i
			u.Ambient[2] += c[2] * i
		case LightTypeDirectional:
			if haveDir {
				continue
			}
			haveDir = true
			d := l.Direction()
			u.DirDirection = [4]float32{d[0], d[1], d[2], 0}
			u.DirColor = [4]float32{c[0], c[1], c[2], i}
		case LightTypePoint:
			if points == MaxPointLights {
				continue
			}
			u.Points[points] = GPUPointLight{Position: l.Position(), Range: l.Range(), Color: c, Strength: i}
			points++
		}
	}
	u.FogParams[2] = float32(points)
	if fog != nil {
		u.FogColor = [4]float32{fog.Color[0], fog.Color[1], fog.Color[2], 1}
		u.FogParams[0] = fog.Near
		u.FogParams[1] = fog.Far
		u.FogParams[3] = 1
	}
	return u
}
