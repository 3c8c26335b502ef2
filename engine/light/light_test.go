package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.Equal(t, LightTypePoint, l.Type())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())
	assert.True(t, l.Enabled())
}

func TestDirectionPointsAtOrigin(t *testing.T) {
	l := NewLight(WithType(LightTypeDirectional), WithPosition(0, 10, 0))
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
	assert.Equal(t, [3]float32{}, NewLight().Direction())
}

func TestBuildUniform(t *testing.T) {
	purple := NewLight(WithHexColor("#8B5CF6"), WithIntensity(0.5))
	lights := []Light{
		NewLight(WithType(LightTypeAmbient), WithIntensity(0.2)),
		NewLight(WithType(LightTypeDirectional), WithPosition(10, 10, 5), WithIntensity(0.5)),
		NewLight(WithType(LightTypeDirectional), WithPosition(-1, 0, 0)),
		purple,
	}
	fog := &Fog{Color: [3]float32{0.03, 0.04, 0.1}, Near: 10, Far: 50}

	u := BuildUniform(lights, fog)
	assert.InDelta(t, 0.2, u.Ambient[0], 1e-6)
	assert.Equal(t, float32(0.5), u.DirColor[3], "first directional light wins")
	assert.Less(t, u.DirDirection[1], float32(0))
	assert.Equal(t, float32(1), u.FogParams[2])
	assert.Equal(t, float32(0.5), u.Points[0].Strength)
	assert.Equal(t, [4]float32{10, 50, 1, 1}, u.FogParams)

	purple.SetEnabled(false)
	u = BuildUniform(lights, nil)
	assert.Zero(t, u.FogParams[2])
	assert.Zero(t, u.FogParams[3])
}

func TestBuildUniformCapsPointLights(t *testing.T) {
	var lights []Light
	for i := 0; i < MaxPointLights+2; i++ {
		lights = append(lights, NewLight(WithPosition(float32(i), 0, 0)))
	}
	u := BuildUniform(lights, nil)
	assert.Equal(t, float32(MaxPointLights), u.FogParams[2])
	assert.Equal(t, [3]float32{3, 0, 0}, u.Points[3].Position)
}

func TestGPULightsUniformLayout(t *testing.T) {
	var u GPULightsUniform
	require.Equal(t, 208, u.Size())
	assert.Len(t, u.Marshal(), 208)
}
