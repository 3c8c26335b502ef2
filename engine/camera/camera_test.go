package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(cc CameraController) common.Vec3 {
	x, y, z := cc.Position()
	return common.Vec3{x, y, z}
}

func TestGoalGlideConvergesMonotonically(t *testing.T) {
	cc := NewCameraController()
	cc.SetGoal(10, 2, 5)

	goal := common.Vec3{10, 2, 5}
	prev := position(cc).Sub(goal).Len()
	for i := 0; i < 600; i++ {
		cc.Update(1.0 / 60)
		d := position(cc).Sub(goal).Len()
		require.LessOrEqual(t, d, prev)
		prev = d
	}
	assert.Equal(t, goal, position(cc))
	_, _, _, ok := cc.Goal()
	assert.False(t, ok, "goal is dropped once reached")
}

func TestGoalGlideFrameRateIndependent(t *testing.T) {
	at60 := NewCameraController()
	at30 := NewCameraController()
	at60.SetGoal(-5, 0, 8)
	at30.SetGoal(-5, 0, 8)

	for i := 0; i < 60; i++ {
		at60.Update(1.0 / 60)
	}
	for i := 0; i < 30; i++ {
		at30.Update(1.0 / 30)
	}
	a, b := position(at60), position(at30)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, a[i], b[i], 1e-3)
	}
}

func TestFirstFrameUsesDamping(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 0, 10))
	cc.SetGoal(0, 0, 0)
	cc.Update(1.0 / 60)
	assert.InDelta(t, 9.5, position(cc)[2], 1e-4)
}

func TestRotateClampsPolarAngle(t *testing.T) {
	cc := NewCameraController()
	cc.Rotate(0, 100000)
	for i := 0; i < 300; i++ {
		cc.Update(1.0 / 60)
	}
	p := position(cc)
	polar := math.Acos(float64(p[1] / p.Len()))
	assert.InDelta(t, math.Pi/6, polar, 1e-3)

	cc.Rotate(0, -100000)
	for i := 0; i < 300; i++ {
		cc.Update(1.0 / 60)
	}
	p = position(cc)
	polar = math.Acos(float64(p[1] / p.Len()))
	assert.InDelta(t, math.Pi/2, polar, 1e-3)
}

func TestMouseSensitivityScalesOrbit(t *testing.T) {
	azimuthAfterDrag := func(sensitivity float32) float64 {
		cc := NewCameraController(WithMouseSensitivity(sensitivity))
		cc.Rotate(-20, 0)
		for i := 0; i < 600; i++ {
			cc.Update(1.0 / 60)
		}
		p := position(cc)
		return math.Atan2(float64(p[0]), float64(p[2]))
	}

	slow := azimuthAfterDrag(0.005)
	fast := azimuthAfterDrag(0.01)
	assert.InDelta(t, 0.1, slow, 1e-3)
	assert.InDelta(t, 2*slow, fast, 1e-3)
}

func TestRotateKeepsRadius(t *testing.T) {
	cc := NewCameraController()
	cc.Rotate(200, 0)
	for i := 0; i < 120; i++ {
		cc.Update(1.0 / 60)
	}
	assert.InDelta(t, 10, cc.Radius(), 1e-3)
	assert.NotZero(t, position(cc)[0])
}

func TestZoomClamps(t *testing.T) {
	cc := NewCameraController()
	cc.Zoom(1000)
	for i := 0; i < 600; i++ {
		cc.Update(1.0 / 60)
	}
	assert.InDelta(t, 3, cc.Radius(), 1e-3)
}

func TestInputCancelsGoal(t *testing.T) {
	cc := NewCameraController()
	cc.SetGoal(5, -2, 10)
	cc.Zoom(1)
	_, _, _, ok := cc.Goal()
	assert.False(t, ok)

	cc.SetGoal(5, -2, 10)
	cc.SetPosition(1, 2, 3)
	_, _, _, ok = cc.Goal()
	assert.False(t, ok)
	assert.Equal(t, common.Vec3{1, 2, 3}, position(cc))
}

func TestCameraMatrices(t *testing.T) {
	c := NewCamera(WithAspect(16.0 / 9.0))
	assert.InDelta(t, math.Pi/3, c.Fov(), 1e-6)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.Equal(t, common.Vec3{0, 0, 10}, c.Position())

	vp := c.ViewProjectionMatrix()
	ndc := common.TransformPoint(vp[:], common.Vec3{})
	assert.InDelta(t, 0, ndc[0], 1e-5)
	assert.InDelta(t, 0, ndc[1], 1e-5)

	inv := c.InverseViewProjectionMatrix()
	back := common.TransformPoint(inv[:], ndc)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, back[i], 1e-3)
	}

	cc := NewCameraController(WithPosition(10, 2, 5))
	c.SetController(cc)
	assert.Equal(t, common.Vec3{10, 2, 5}, c.Position())
	u := c.GPUUniform()
	assert.Equal(t, [3]float32{10, 2, 5}, u.Eye)
	assert.Len(t, u.Marshal(), GPUCameraUniformSize)
}

func TestOrthographicCamera(t *testing.T) {
	c := NewCamera(WithOrthographic(5), WithAspect(2))
	assert.Equal(t, ProjectionOrthographic, c.Projection())

	vp := c.ViewProjectionMatrix()
	edge := common.TransformPoint(vp[:], common.Vec3{10, 5, 0})
	assert.InDelta(t, 1, edge[0], 1e-5)
	assert.InDelta(t, 1, edge[1], 1e-5)
}

func TestSetAspectIgnoresDegenerate(t *testing.T) {
	c := NewCamera(WithAspect(1.5))
	c.SetAspect(0)
	assert.Equal(t, float32(1.5), c.Aspect())
}
