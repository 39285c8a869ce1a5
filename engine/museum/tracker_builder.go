package museum

import "github.com/yohamta/donburi"

// TrackerBuilderOption is a functional option for configuring a Tracker.
type TrackerBuilderOption func(t *tracker)

// WithWorld publishes room transitions into an existing donburi world.
//
// Parameters:
//   - world: the world to publish to
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithWorld(world donburi.World) TrackerBuilderOption {
	return func(t *tracker) {
		t.world = world
	}
}

// WithStartRoom sets the initially tracked room.
//
// Parameters:
//   - id: the starting room
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithStartRoom(id RoomID) TrackerBuilderOption {
	return func(t *tracker) {
		t.current = id
	}
}
