package material

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// Pipeline keys understood by the Renderer.
const (
	// PipelineLit draws opaque, depth-tested geometry.
	PipelineLit = "lit"
	// PipelineLabel draws alpha-blended text planes without writing depth.
	PipelineLabel = "label"
	// PipelineHUD draws on top of everything else, used by the navigation and overlay widgets.
	PipelineHUD = "hud"
)

// material is the implementation of the Material interface.
type material struct {
	mu *sync.Mutex

	name              string
	baseColor         [4]float32
	emissive          [3]float32
	emissiveIntensity float32
	metallic          float32
	roughness         float32
	unlit             bool
	texture           *common.TextureStagingData
	textureVersion    uint64
	pipelineKey       string
}

// Material defines the interface for the surface of a game object.
//
// Unlike imported asset materials every property here is mutable: hover and selection
// feedback in the portfolio panels changes colours and emissive strength every frame, and
// text labels replace their texture when their text changes. Each texture replacement bumps
// TextureVersion so the Scene knows to re-upload it.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the RGBA color of the material. Alpha below one only has an
	// effect under the label and hud pipelines.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Emissive retrieves the emissive RGB color and its intensity.
	//
	// Returns:
	//   - [3]float32: the emissive color
	//   - float32: the emissive intensity
	Emissive() ([3]float32, float32)

	// Metallic retrieves the metallic factor of the material.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Unlit reports whether the material ignores scene lighting.
	//
	// Returns:
	//   - bool: true for unlit materials
	Unlit() bool

	// Texture retrieves the staged texture and its version, or nil when untextured.
	//
	// Returns:
	//   - *common.TextureStagingData: the texture, or nil
	//   - uint64: the texture version, incremented by every SetTexture
	Texture() (*common.TextureStagingData, uint64)

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Transparent reports whether the material is drawn in the blended pass.
	//
	// Returns:
	//   - bool: true for the label and hud pipelines
	Transparent() bool

	// SetBaseColor replaces the base color.
	//
	// Parameters:
	//   - color: the new RGBA color
	SetBaseColor(color [4]float32)

	// SetOpacity replaces only the alpha channel of the base color.
	//
	// Parameters:
	//   - alpha: the new opacity in [0, 1]
	SetOpacity(alpha float32)

	// SetEmissive replaces the emissive color and intensity.
	//
	// Parameters:
	//   - color: the emissive RGB color
	//   - intensity: the emissive intensity
	SetEmissive(color [3]float32, intensity float32)

	// SetEmissiveIntensity replaces only the emissive intensity.
	//
	// Parameters:
	//   - intensity: the emissive intensity
	SetEmissiveIntensity(intensity float32)

	// SetTexture replaces the staged texture and bumps the texture version.
	//
	// Parameters:
	//   - tex: the new texture, nil to remove it
	SetTexture(tex *common.TextureStagingData)

	// GPUParams snapshots the material into its uniform layout.
	//
	// Returns:
	//   - GPUMaterialParams: the uniform data
	GPUParams() GPUMaterialParams
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults to an opaque white, fully rough, lit material.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		mu:          &sync.Mutex{},
		baseColor:   [4]float32{1, 1, 1, 1},
		metallic:    0.0,
		roughness:   1.0,
		pipelineKey: PipelineLit,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baseColor
}

func (m *material) Emissive() ([3]float32, float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.emissive, m.emissiveIntensity
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) Unlit() bool {
	return m.unlit
}

func (m *material) Texture() (*common.TextureStagingData, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.texture, m.textureVersion
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) Transparent() bool {
	return m.pipelineKey != PipelineLit
}

func (m *material) SetBaseColor(color [4]float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseColor = color
}

func (m *material) SetOpacity(alpha float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseColor[3] = common.Clamp(alpha, 0, 1)
}

func (m *material) SetEmissive(color [3]float32, intensity float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emissive = color
	m.emissiveIntensity = intensity
}

func (m *material) SetEmissiveIntensity(intensity float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emissiveIntensity = intensity
}

func (m *material) SetTexture(tex *common.TextureStagingData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texture = tex
	m.textureVersion++
}

func (m *material) GPUParams() GPUMaterialParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := GPUMaterialParams{
		BaseColor: m.baseColor,
		Emissive:  [4]float32{m.emissive[0], m.emissive[1], m.emissive[2], m.emissiveIntensity},
		Params:    [4]float32{m.metallic, m.roughness, 0, 0},
	}
	if m.unlit {
		p.Params[2] = 1
	}
	if m.texture != nil {
		p.Params[3] = 1
	}
	return p
}
