// Package animate holds the per-frame panel motion as pure functions. Every
// function takes the previous state and the elapsed time and returns the next
// state; none of them keep anything between calls.
package animate

import (
	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/chewxy/math32"
)

const (
	// FrameFactor is the fraction of the remaining distance covered by one 60 Hz frame.
	FrameFactor float32 = 0.05
	// ReferenceRate is the frame rate FrameFactor is expressed against.
	ReferenceRate float32 = 60
	// DefaultIdleSpin is the inactive yaw speed in radians per second.
	DefaultIdleSpin float32 = 0.1
)

// Transform is the position, euler rotation and scale of a panel root.
type Transform struct {
	Position common.Vec3
	Rotation common.Vec3
	Scale    common.Vec3
}

// NewTransform returns a transform at pos with no rotation and a uniform scale.
func NewTransform(pos common.Vec3, scale float32) Transform {
	return Transform{Position: pos, Scale: common.Vec3{scale, scale, scale}}
}

// Profile describes how a panel behaves while inactive.
type Profile struct {
	// InactiveScale is the uniform scale the panel shrinks to when not active.
	InactiveScale float32
	// IdleSpin is the yaw speed in radians per second while inactive. Zero disables spinning.
	IdleSpin float32
}

// Panel profiles.
var (
	WelcomeProfile      = Profile{InactiveScale: 0.5}
	SkillsProfile       = Profile{InactiveScale: 0.5}
	ExperienceProfile   = Profile{InactiveScale: 0.3, IdleSpin: DefaultIdleSpin}
	ProjectsProfile     = Profile{InactiveScale: 0.3, IdleSpin: DefaultIdleSpin}
	AchievementsProfile = Profile{InactiveScale: 0.3, IdleSpin: DefaultIdleSpin}
)

// ActiveScale is the scale of the active panel.
var ActiveScale = common.Vec3{1, 1, 1}

// Alpha converts the per-frame interpolation factor into a factor for an
// arbitrary dt, so that the motion is the same at any frame rate.
//
// Parameters:
//   - dt: elapsed seconds, values <= 0 return 0
//
// Returns:
//   - float32: a value in [0, 1]
func Alpha(dt float32) float32 {
	if dt <= 0 {
		return 0
	}
	return 1 - math32.Pow(1-FrameFactor, dt*ReferenceRate)
}

// Settle is the fraction of a value kept after dt of exponential decay toward zero.
//
// Parameters:
//   - dt: elapsed seconds, values <= 0 return 1
//
// Returns:
//   - float32: a value in [0, 1]
func Settle(dt float32) float32 {
	if dt <= 0 {
		return 1
	}
	return math32.Pow(1-FrameFactor, dt*ReferenceRate)
}

// TargetScale returns the scale a panel is converging to.
func TargetScale(active bool, p Profile) common.Vec3 {
	if active {
		return ActiveScale
	}
	s := p.InactiveScale
	return common.Vec3{s, s, s}
}

// Step advances a panel root by dt. The scale moves toward the target scale
// by Alpha(dt) without overshooting. While inactive the panel yaws at the
// profile's idle spin; while active its yaw decays toward zero.
//
// Parameters:
//   - prev: the transform after the previous frame
//   - dt: elapsed seconds since the previous frame
//   - active: whether the panel's section is current
//   - p: the panel's profile
//
// Returns:
//   - Transform: the transform for this frame
func Step(prev Transform, dt float32, active bool, p Profile) Transform {
	if dt <= 0 {
		return prev
	}
	next := prev
	next.Scale = common.LerpVec3(prev.Scale, TargetScale(active, p), Alpha(dt))
	if active {
		next.Rotation[1] = prev.Rotation[1] * Settle(dt)
	} else {
		next.Rotation[1] = prev.Rotation[1] + p.IdleSpin*dt
	}
	return next
}

// FloatOffset is a vertical bob of amplitude amp at the given angular speed.
func FloatOffset(t, speed, amp float32) float32 {
	return math32.Sin(t*speed) * amp
}

// Sway is the gentle yaw applied to the active welcome panel.
func Sway(t float32) float32 {
	return math32.Sin(t*0.3) * 0.1
}

// ScreenEmissive is the emissive intensity of the welcome console screen.
func ScreenEmissive(t float32, hovered bool) float32 {
	if hovered {
		return 2
	}
	return 1 + math32.Sin(t)*0.2
}

// CubeStep advances the skills cube rotation. The cube tumbles quickly while
// idle, slowly while its section is active, and holds still while a face is
// hovered outside the active section.
//
// Parameters:
//   - rot: current euler rotation
//   - dt: elapsed seconds
//   - active: whether the skills section is current
//   - hovered: whether any face is hovered
//
// Returns:
//   - common.Vec3: the new rotation
func CubeStep(rot common.Vec3, dt float32, active, hovered bool) common.Vec3 {
	switch {
	case dt <= 0:
		return rot
	case active:
		rot[0] += 0.05 * dt
		rot[1] += 0.08 * dt
	case hovered:
	default:
		rot[0] += 0.2 * dt
		rot[1] += 0.3 * dt
	}
	return rot
}
