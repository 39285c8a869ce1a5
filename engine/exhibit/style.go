package exhibit

import "github.com/Carmen-Shannon/oxy-museum/common"

// Style holds the shared appearance handles and structural constants used when an
// Exhibit builds its surfaces. One Style is normally shared by every room of a layout.
type Style struct {
	// Floor is the appearance of the floor slab.
	Floor common.Appearance

	// Wall is the appearance of every wall and wall segment.
	Wall common.Appearance

	// Thickness is the short axis of walls and the height of the floor slab.
	Thickness float32

	// WallHeight is the vertical extent of the walls.
	WallHeight float32

	// DoorGap is the clear width of a carved doorway.
	DoorGap float32

	// CollisionBuffer is the extra width around each wall footprint that the camera is kept out of.
	CollisionBuffer float32
}

// Default structural constants.
const (
	DefaultThickness       float32 = 0.5
	DefaultWallHeight      float32 = 10
	DefaultDoorGap         float32 = 7
	DefaultCollisionBuffer float32 = 1
)

// DefaultStyle returns the built-in style: grey floors, off-white walls and the default constants.
//
// Returns:
//   - Style: the default style
func DefaultStyle() Style {
	return Style{
		Floor:           common.NewAppearance(0.35, 0.35, 0.38),
		Wall:            common.NewAppearance(0.85, 0.83, 0.78),
		Thickness:       DefaultThickness,
		WallHeight:      DefaultWallHeight,
		DoorGap:         DefaultDoorGap,
		CollisionBuffer: DefaultCollisionBuffer,
	}
}
