package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.BaseColor())
	assert.Equal(t, PipelineLit, m.PipelineKey())
	assert.False(t, m.Transparent())
	assert.Equal(t, float32(1), m.Roughness())

	tex, version := m.Texture()
	assert.Nil(t, tex)
	assert.Zero(t, version)
}

func TestMaterialMutation(t *testing.T) {
	m := NewMaterial(WithHexColor("#4CC9F0"), WithPipelineKey(PipelineLabel))
	assert.True(t, m.Transparent())

	m.SetOpacity(2)
	assert.Equal(t, float32(1), m.BaseColor()[3])
	m.SetOpacity(0.25)
	assert.Equal(t, float32(0.25), m.BaseColor()[3])

	m.SetEmissive([3]float32{0.5, 0.3, 0.9}, 0.5)
	m.SetEmissiveIntensity(2)
	color, intensity := m.Emissive()
	assert.Equal(t, [3]float32{0.5, 0.3, 0.9}, color)
	assert.Equal(t, float32(2), intensity)

	m.SetTexture(&common.TextureStagingData{Width: 1, Height: 1, Pixels: make([]byte, 4)})
	m.SetTexture(&common.TextureStagingData{Width: 2, Height: 1, Pixels: make([]byte, 8)})
	tex, version := m.Texture()
	assert.Equal(t, uint32(2), tex.Width)
	assert.Equal(t, uint64(2), version)
}

func TestGPUParams(t *testing.T) {
	m := NewMaterial(
		WithBaseColor([4]float32{0.1, 0.2, 0.3, 1}),
		WithEmissive([3]float32{1, 0, 0}, 0.5),
		WithMetallic(0.8),
		WithRoughness(0.2),
		WithUnlit(),
		WithTexture(&common.TextureStagingData{}),
	)
	p := m.GPUParams()
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, p.BaseColor)
	assert.Equal(t, [4]float32{1, 0, 0, 0.5}, p.Emissive)
	assert.Equal(t, [4]float32{0.8, 0.2, 1, 1}, p.Params)
	assert.Equal(t, 48, p.Size())
	assert.Len(t, p.Marshal(), 48)
}
