package exhibit

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the four cardinal directions in the XZ plane.
// It selects a wall slot and gives the placement axis for AttachTo.
type Direction int

const (
	// PosX points along +X.
	PosX Direction = iota
	// NegX points along -X.
	NegX
	// PosZ points along +Z.
	PosZ
	// NegZ points along -Z.
	NegZ
)

// Directions lists every Direction in slot order.
var Directions = [4]Direction{PosX, NegX, PosZ, NegZ}

// Vector returns the unit vector for the direction. The Y component is always zero.
func (d Direction) Vector() mgl32.Vec3 {
	switch d {
	case PosX:
		return mgl32.Vec3{1, 0, 0}
	case NegX:
		return mgl32.Vec3{-1, 0, 0}
	case PosZ:
		return mgl32.Vec3{0, 0, 1}
	case NegZ:
		return mgl32.Vec3{0, 0, -1}
	}
	panic("exhibit: invalid Direction")
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case PosX:
		return NegX
	case NegX:
		return PosX
	case PosZ:
		return NegZ
	case NegZ:
		return PosZ
	}
	panic("exhibit: invalid Direction")
}

// FacesX reports whether a wall in this slot faces along the X axis, meaning its long
// axis runs along Z.
func (d Direction) FacesX() bool {
	return d == PosX || d == NegX
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= PosX && d <= NegZ
}

func (d Direction) String() string {
	switch d {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	}
	return "invalid"
}

// WallState tracks what is left of a wall slot.
type WallState int

const (
	// WallMissing means the slot has no wall, either never built or not requested.
	WallMissing WallState = iota
	// WallFull means the slot holds a full-length wall spanning the room edge.
	WallFull
	// WallCarved means the slot's wall has been narrowed to flank a doorway.
	WallCarved
)

func (s WallState) String() string {
	switch s {
	case WallMissing:
		return "missing"
	case WallFull:
		return "full"
	case WallCarved:
		return "carved"
	}
	return "unknown"
}
