package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/chewxy/math32"
)

// settleDistance is how close the eye must come to its goal before the goal is dropped.
const settleDistance = 1e-3

// cameraControllerImpl is the implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position common.Vec3
	target   common.Vec3

	goal    common.Vec3
	hasGoal bool

	// Queued user input, consumed by Update.
	azimuthDelta float32
	polarDelta   float32
	radiusDelta  float32

	minRadius float32
	maxRadius float32
	minPolar  float32
	maxPolar  float32

	damping          float32
	rotateSpeed      float32
	mouseSensitivity float32
	zoomSpeed        float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit controller around the origin with the eye at (0, 0, 10),
// damping 0.05, radius in [3, 30] and user polar angle in [π/6, π/2].
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: common.Vec3{0, 0, 10},

		minRadius: 3,
		maxRadius: 30,
		minPolar:  float32(math.Pi / 6),
		maxPolar:  float32(math.Pi / 2),

		damping:          0.05,
		rotateSpeed:      1,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.5,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// alpha converts the per-frame damping factor into the fraction applied over dt seconds.
func (cc *cameraControllerImpl) alpha(dt float32) float32 {
	return 1 - math32.Pow(1-cc.damping, dt*60)
}

// spherical returns the eye offset from the target as radius, azimuth and polar angle.
// The polar angle is measured from +Y. Caller must hold the mutex.
func (cc *cameraControllerImpl) spherical() (radius, azimuth, polar float32) {
	off := cc.position.Sub(cc.target)
	radius = off.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	azimuth = math32.Atan2(off[0], off[2])
	polar = math32.Acos(common.Clamp(off[1]/radius, -1, 1))
	return radius, azimuth, polar
}

// setSpherical places the eye from spherical coordinates. Caller must hold the mutex.
func (cc *cameraControllerImpl) setSpherical(radius, azimuth, polar float32) {
	sinPolar := math32.Sin(polar)
	cc.position = cc.target.Add(common.Vec3{
		radius * sinPolar * math32.Sin(azimuth),
		radius * math32.Cos(polar),
		radius * sinPolar * math32.Cos(azimuth),
	})
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = common.Vec3{x, y, z}
	cc.hasGoal = false
	cc.azimuthDelta, cc.polarDelta, cc.radiusDelta = 0, 0, 0
}

func (cc *cameraControllerImpl) SetGoal(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.goal = common.Vec3{x, y, z}
	cc.hasGoal = true
}

func (cc *cameraControllerImpl) Goal() (x, y, z float32, ok bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.goal[0], cc.goal[1], cc.goal[2], cc.hasGoal
}

func (cc *cameraControllerImpl) Rotate(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.hasGoal = false
	cc.azimuthDelta -= dx * cc.mouseSensitivity * cc.rotateSpeed
	cc.polarDelta -= dy * cc.mouseSensitivity * cc.rotateSpeed
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.hasGoal = false
	cc.radiusDelta -= delta * cc.zoomSpeed
}

func (cc *cameraControllerImpl) Update(dt float32) {
	if dt <= 0 {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()

	a := cc.alpha(dt)

	if cc.hasGoal {
		cc.position = common.LerpVec3(cc.position, cc.goal, a)
		if cc.position.Sub(cc.goal).Len() < settleDistance {
			cc.position = cc.goal
			cc.hasGoal = false
		}
		return
	}

	if cc.azimuthDelta == 0 && cc.polarDelta == 0 && cc.radiusDelta == 0 {
		return
	}

	radius, azimuth, polar := cc.spherical()
	azimuth += cc.azimuthDelta * a
	polar = common.Clamp(polar+cc.polarDelta*a, cc.minPolar, cc.maxPolar)
	radius = common.Clamp(radius+cc.radiusDelta*a, cc.minRadius, cc.maxRadius)
	cc.setSpherical(radius, azimuth, polar)

	cc.azimuthDelta *= 1 - a
	cc.polarDelta *= 1 - a
	cc.radiusDelta *= 1 - a
	if math32.Abs(cc.azimuthDelta) < 1e-5 && math32.Abs(cc.polarDelta) < 1e-5 && math32.Abs(cc.radiusDelta) < 1e-5 {
		cc.azimuthDelta, cc.polarDelta, cc.radiusDelta = 0, 0, 0
	}
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position.Sub(cc.target).Len()
}

func (cc *cameraControllerImpl) Damping() float32 {
	return cc.damping
}
