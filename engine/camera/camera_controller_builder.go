package camera

import "github.com/go-gl/mathgl/mgl32"

// FirstPersonControllerOption is a functional option for configuring a FirstPersonController.
type FirstPersonControllerOption func(*firstPersonControllerImpl)

// WithStartPosition sets the controller's initial position.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - FirstPersonControllerOption: functional option to set the start position
func WithStartPosition(x, y, z float32) FirstPersonControllerOption {
	return func(fc *firstPersonControllerImpl) {
		fc.transform.SetPosition(mgl32.Vec3{x, y, z})
	}
}

// WithStartYaw sets the controller's initial heading in radians (0 faces -Z).
//
// Parameters:
//   - yaw: heading in radians
//
// Returns:
//   - FirstPersonControllerOption: functional option to set the heading
func WithStartYaw(yaw float32) FirstPersonControllerOption {
	return func(fc *firstPersonControllerImpl) {
		fc.transform.SetRotation(mgl32.Vec3{0, yaw, 0})
	}
}

// WithMoveSpeed sets the walking speed in units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - FirstPersonControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) FirstPersonControllerOption {
	return func(fc *firstPersonControllerImpl) {
		fc.moveSpeed = speed
	}
}

// WithLookSpeed sets the mouse-look multiplier.
//
// Parameters:
//   - speed: radians per pixel per second
//
// Returns:
//   - FirstPersonControllerOption: functional option to set the look speed
func WithLookSpeed(speed float32) FirstPersonControllerOption {
	return func(fc *firstPersonControllerImpl) {
		fc.lookSpeed = speed
	}
}

// WithHeightBounds sets the allowed camera height range.
//
// Parameters:
//   - minY: lowest allowed height
//   - maxY: highest allowed height
//
// Returns:
//   - FirstPersonControllerOption: functional option to set the height bounds
func WithHeightBounds(minY, maxY float32) FirstPersonControllerOption {
	return func(fc *firstPersonControllerImpl) {
		fc.minHeight = minY
		fc.maxHeight = maxY
	}
}

// WithFirstPerson sets whether mouse look starts enabled.
//
// Parameters:
//   - enabled: true to start with mouse look enabled
//
// Returns:
//   - FirstPersonControllerOption: functional option to set the look mode
func WithFirstPerson(enabled bool) FirstPersonControllerOption {
	return func(fc *firstPersonControllerImpl) {
		fc.firstPerson = enabled
	}
}
