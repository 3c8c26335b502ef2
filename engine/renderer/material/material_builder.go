package material

import (
	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithHexColor is an option builder that sets the base color from a "#RRGGBB" string.
// Panics on a malformed colour; content colours are validated before the scene is built.
//
// Parameters:
//   - hex: the colour string
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithHexColor(hex string) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = common.MustHexColor(hex)
	}
}

// WithEmissive is an option builder that sets the emissive color and intensity.
//
// Parameters:
//   - color: the emissive RGB color
//   - intensity: the emissive intensity
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(color [3]float32, intensity float32) MaterialBuilderOption {
	return func(m *material) {
		m.emissive = color
		m.emissiveIntensity = intensity
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithUnlit is an option builder that makes the material ignore scene lighting.
//
// Returns:
//   - MaterialBuilderOption: a function that applies the unlit option to a material
func WithUnlit() MaterialBuilderOption {
	return func(m *material) {
		m.unlit = true
	}
}

// WithTexture is an option builder that sets the initial texture.
//
// Parameters:
//   - tex: the staged texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(tex *common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.texture = tex
		m.textureVersion = 1
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key.
//
// Parameters:
//   - key: one of PipelineLit, PipelineLabel or PipelineHUD
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}
