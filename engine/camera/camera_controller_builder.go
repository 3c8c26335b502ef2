package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial eye position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position[0], cc.position[1], cc.position[2] = x, y, z
	}
}

// WithDamping sets the per 60 Hz frame damping factor. Values outside (0, 1] are ignored.
//
// Parameters:
//   - damping: fraction of the remaining motion applied per frame
//
// Returns:
//   - CameraControllerOption: functional option to set the damping
func WithDamping(damping float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if damping > 0 && damping <= 1 {
			cc.damping = damping
		}
	}
}

// WithRadiusLimits sets the zoom range.
//
// Parameters:
//   - minRadius: closest allowed distance to the target
//   - maxRadius: farthest allowed distance to the target
//
// Returns:
//   - CameraControllerOption: functional option to set the radius limits
func WithRadiusLimits(minRadius, maxRadius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius = minRadius
		cc.maxRadius = maxRadius
	}
}

// WithPolarLimits sets the range user input may move the polar angle within.
//
// Parameters:
//   - minPolar: smallest polar angle from +Y in radians
//   - maxPolar: largest polar angle from +Y in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the polar limits
func WithPolarLimits(minPolar, maxPolar float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minPolar = minPolar
		cc.maxPolar = maxPolar
	}
}

// WithMouseSensitivity sets the radians of orbit per dragged pixel.
//
// Parameters:
//   - sensitivity: multiplier for mouse movement
//
// Returns:
//   - CameraControllerOption: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the radius change per scroll unit.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}
