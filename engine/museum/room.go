package museum

// RoomID names one exhibit of the museum. The order of the constants is the order in which
// the tracker tests rooms for containment.
type RoomID int

const (
	Intro RoomID = iota
	BrightContrast
	Blur
	Halls
	CelShading
	Bloom
	Particles
	Everything

	// RoomCount is the number of rooms.
	RoomCount
)

// Rooms lists every room in tracker order.
var Rooms = [RoomCount]RoomID{Intro, BrightContrast, Blur, Halls, CelShading, Bloom, Particles, Everything}

func (r RoomID) String() string {
	switch r {
	case Intro:
		return "Intro"
	case BrightContrast:
		return "BrightContrast"
	case Blur:
		return "Blur"
	case Halls:
		return "Halls"
	case CelShading:
		return "CelShading"
	case Bloom:
		return "Bloom"
	case Particles:
		return "Particles"
	case Everything:
		return "Everything"
	}
	return "Unknown"
}
