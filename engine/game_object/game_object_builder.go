package game_object

import (
	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the label of the GameObject.
//
// Parameters:
//   - name: label used in logs
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithAppearance sets the appearance handle of the GameObject.
//
// Parameters:
//   - a: the appearance
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the appearance
func WithAppearance(a common.Appearance) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.appearance = a
	}
}

// WithPosition sets the initial position of the GameObject's transform.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.SetPosition(mgl32.Vec3{x, y, z})
	}
}

// WithScale sets the initial scale of the GameObject's transform.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.SetScale(mgl32.Vec3{sx, sy, sz})
	}
}

// WithRotation sets the initial pitch, yaw and roll of the GameObject's transform.
//
// Parameters:
//   - pitch: rotation about X in radians
//   - yaw: rotation about Y in radians
//   - roll: rotation about Z in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(pitch, yaw, roll float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.SetRotation(mgl32.Vec3{pitch, yaw, roll})
	}
}

// WithLight attaches a Light to the GameObject. When added to a scene, the
// scene syncs the light's position from the object's transform each frame.
//
// Parameters:
//   - l: the Light to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the attached light
func WithLight(l light.Light) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.attachedLight = l
	}
}
