package transform

import "github.com/go-gl/mathgl/mgl32"

// TransformBuilderOption is a functional option for configuring a Transform during construction.
type TransformBuilderOption func(*transformImpl)

// WithPosition sets the initial position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - TransformBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.position = mgl32.Vec3{x, y, z}
	}
}

// WithScale sets the initial scale.
//
// Parameters:
//   - sx, sy, sz: per-axis scale factors
//
// Returns:
//   - TransformBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithRotation sets the initial pitch, yaw and roll in radians.
//
// Parameters:
//   - pitch, yaw, roll: rotation angles in radians
//
// Returns:
//   - TransformBuilderOption: functional option to set the rotation
func WithRotation(pitch, yaw, roll float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.pitchYawRoll = mgl32.Vec3{pitch, yaw, roll}
	}
}
