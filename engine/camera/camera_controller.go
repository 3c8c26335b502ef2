package camera

// CameraController defines the orbit control system behind the portfolio camera.
//
// The controller owns the eye position and orbits it around a fixed target. Two kinds
// of motion feed it: a goal set by navigation, which the eye glides towards, and user
// drag/scroll input, which accumulates as angular and radial velocity. Both decay with
// the same dt-scaled damping so motion looks the same at any tick rate. User input
// cancels any pending goal.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetPosition moves the eye immediately and clears any goal or pending input.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetGoal sets the position the eye glides towards on subsequent Updates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetGoal(x, y, z float32)

	// Goal returns the pending goal.
	//
	// Returns:
	//   - x, y, z: the goal position
	//   - ok: false when no goal is pending
	Goal() (x, y, z float32, ok bool)

	// Rotate queues an orbit drag in window pixels. The polar angle produced by user
	// input is clamped to [MinPolar, MaxPolar].
	//
	// Parameters:
	//   - dx: horizontal drag, positive to the right
	//   - dy: vertical drag, positive downwards
	Rotate(dx, dy float32)

	// Zoom queues a change of orbit radius. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: scroll amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Update advances the goal glide and the queued input by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous update
	Update(dt float32)

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// Damping returns the per 60 Hz frame damping factor.
	//
	// Returns:
	//   - float32: the damping factor in (0, 1]
	Damping() float32
}
