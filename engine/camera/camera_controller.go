package camera

import (
	"github.com/Carmen-Shannon/oxy-museum/engine/input"
	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
)

// FirstPersonController owns the camera's Transform and integrates walking and mouse-look
// input into it. The Camera reads the controller's transform to build its view matrix.
type FirstPersonController interface {
	// Transform returns the mutable transform driven by this controller.
	//
	// Returns:
	//   - transform.Transform: the camera transform
	Transform() transform.Transform

	// MoveSpeed returns the walking speed in units per second.
	//
	// Returns:
	//   - float32: units per second
	MoveSpeed() float32

	// SetMoveSpeed sets the walking speed in units per second.
	//
	// Parameters:
	//   - speed: units per second
	SetMoveSpeed(speed float32)

	// LookSpeed returns the mouse-look multiplier in radians per pixel per second.
	//
	// Returns:
	//   - float32: the look multiplier
	LookSpeed() float32

	// HeightBounds returns the minimum and maximum allowed camera height.
	//
	// Returns:
	//   - minY, maxY: inclusive height bounds
	HeightBounds() (minY, maxY float32)

	// FirstPerson reports whether mouse look is active.
	//
	// Returns:
	//   - bool: true while mouse look is enabled
	FirstPerson() bool

	// SetFirstPerson enables or disables mouse look.
	//
	// Parameters:
	//   - enabled: true to enable mouse look
	SetFirstPerson(enabled bool)

	// Update integrates one step of input:
	// W/S move along the facing direction, A/D strafe, Space/LeftShift rise and sink,
	// R toggles mouse look and the mouse delta turns the view. Height is clamped to
	// HeightBounds and pitch to just short of straight up or down.
	//
	// Parameters:
	//   - dt: step duration in seconds
	//   - in: the input state for this step
	Update(dt float32, in input.Reader)
}
