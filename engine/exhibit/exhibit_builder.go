package exhibit

import "github.com/go-gl/mathgl/mgl32"

// ExhibitBuilderOption is a functional option for configuring an Exhibit at construction.
type ExhibitBuilderOption func(e *exhibit)

// WithOrigin sets the initial origin (room center at floor level). Defaults to (0, 0, 0).
//
// Parameters:
//   - x, y, z: the origin coordinates
//
// Returns:
//   - ExhibitBuilderOption: option function to apply
func WithOrigin(x, y, z float32) ExhibitBuilderOption {
	return func(e *exhibit) {
		e.origin = mgl32.Vec3{x, y, z}
	}
}

// WithWalls selects which of the four walls are built. All four are built by default.
//
// Parameters:
//   - posX, negX, posZ, negZ: whether to build the wall in that slot
//
// Returns:
//   - ExhibitBuilderOption: option function to apply
func WithWalls(posX, negX, posZ, negZ bool) ExhibitBuilderOption {
	return func(e *exhibit) {
		e.build = [4]bool{posX, negX, posZ, negZ}
	}
}

// WithStyle sets the appearance handles and structural constants.
//
// Parameters:
//   - style: the style to use
//
// Returns:
//   - ExhibitBuilderOption: option function to apply
func WithStyle(style Style) ExhibitBuilderOption {
	return func(e *exhibit) {
		e.style = style
	}
}

// WithName sets the exhibit name, used to label its surfaces.
func WithName(name string) ExhibitBuilderOption {
	return func(e *exhibit) {
		e.name = name
	}
}
