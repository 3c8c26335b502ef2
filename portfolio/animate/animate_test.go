package animate

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaMatchesFrameFactorAtSixtyHertz(t *testing.T) {
	assert.InDelta(t, FrameFactor, Alpha(1.0/60), 1e-5)
	assert.Zero(t, Alpha(0))
	assert.Zero(t, Alpha(-1))
	assert.Equal(t, float32(1), Settle(0))
	assert.InDelta(t, 1-FrameFactor, Settle(1.0/60), 1e-5)
}

func TestStepConvergesWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name    string
		start   float32
		active  bool
		profile Profile
	}{
		{name: "grow to active", start: 0.3, active: true, profile: ProjectsProfile},
		{name: "shrink to inactive", start: 1, active: false, profile: ExperienceProfile},
		{name: "welcome shrink", start: 1, active: false, profile: WelcomeProfile},
		{name: "already at target", start: 0.5, active: false, profile: SkillsProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetScale(tt.active, tt.profile)[0]
			tr := NewTransform(common.Vec3{}, tt.start)
			prevDist := abs(tr.Scale[0] - target)
			for i := 0; i < 600; i++ {
				tr = Step(tr, 1.0/60, tt.active, tt.profile)
				dist := abs(tr.Scale[0] - target)
				require.LessOrEqual(t, dist, prevDist, "tick %d", i)
				if tt.start < target {
					require.LessOrEqual(t, tr.Scale[0], target)
				} else {
					require.GreaterOrEqual(t, tr.Scale[0], target)
				}
				prevDist = dist
			}
			assert.InDelta(t, target, tr.Scale[0], 1e-3)
			assert.Equal(t, tr.Scale[0], tr.Scale[1])
			assert.Equal(t, tr.Scale[0], tr.Scale[2])
		})
	}
}

func TestStepIsFrameRateIndependent(t *testing.T) {
	fast := NewTransform(common.Vec3{}, 0.3)
	for i := 0; i < 120; i++ {
		fast = Step(fast, 1.0/120, true, ProjectsProfile)
	}
	slow := NewTransform(common.Vec3{}, 0.3)
	for i := 0; i < 30; i++ {
		slow = Step(slow, 1.0/30, true, ProjectsProfile)
	}
	assert.InDelta(t, fast.Scale[0], slow.Scale[0], 1e-4)
}

func TestStepRotation(t *testing.T) {
	tr := Transform{Rotation: common.Vec3{0, 1, 0}, Scale: ActiveScale}

	spun := Step(tr, 2, false, AchievementsProfile)
	assert.InDelta(t, 1.2, spun.Rotation[1], 1e-5)

	still := Step(tr, 2, false, WelcomeProfile)
	assert.InDelta(t, 1, still.Rotation[1], 1e-6)

	settled := Step(tr, 1.0/60, true, AchievementsProfile)
	assert.InDelta(t, 0.95, settled.Rotation[1], 1e-5)

	assert.Equal(t, tr, Step(tr, 0, true, AchievementsProfile))
}

func TestCubeStep(t *testing.T) {
	rot := common.Vec3{}
	idle := CubeStep(rot, 1, false, false)
	assert.InDelta(t, 0.2, idle[0], 1e-6)
	assert.InDelta(t, 0.3, idle[1], 1e-6)

	active := CubeStep(rot, 1, true, false)
	assert.InDelta(t, 0.05, active[0], 1e-6)
	assert.InDelta(t, 0.08, active[1], 1e-6)

	// Hover only freezes the cube outside the active section.
	assert.Equal(t, rot, CubeStep(rot, 1, false, true))
	assert.Equal(t, active, CubeStep(rot, 1, true, true))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(2), ScreenEmissive(3, true))
	assert.InDelta(t, 1, ScreenEmissive(0, false), 1e-6)
	assert.InDelta(t, 0, Sway(0), 1e-6)
	assert.InDelta(t, 0.1, FloatOffset(3.14159265, 0.5, 0.1), 1e-4)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
