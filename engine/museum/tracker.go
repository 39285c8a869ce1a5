package museum

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RoomChanged is published when the tracked room changes.
type RoomChanged struct {
	From RoomID
	To   RoomID
}

// RoomChangedEvent is the donburi event type for room transitions. Events are queued by
// Tracker.Update and delivered to subscribers by Tracker.Flush.
var RoomChangedEvent = events.NewEventType[RoomChanged]()

// Tracker follows which room contains the camera and owns the room-scoped display
// parameters, which reset to defaults on every transition.
// Thread-safe for concurrent access.
type Tracker interface {
	// Current returns the tracked room.
	Current() RoomID

	// Params returns the current room's display parameters.
	Params() PostProcessParams

	// SetParams replaces the current room's display parameters.
	SetParams(p PostProcessParams)

	// Nudge tunes the current room's parameters.
	//
	// Parameters:
	//   - primary: steps for the room's primary parameter
	//   - secondary: steps for the room's secondary parameter
	Nudge(primary, secondary float32)

	// Update tests every room except the current one, in RoomID order, for containment of
	// pos. The first match becomes the current room, the parameters reset to DefaultParams
	// and a RoomChanged event is queued. When nothing matches the current room is kept.
	//
	// Parameters:
	//   - pos: the camera position
	//
	// Returns:
	//   - bool: true if the room changed
	Update(pos mgl32.Vec3) bool

	// Subscribe registers a callback for RoomChanged events.
	//
	// Parameters:
	//   - fn: called once per delivered event
	Subscribe(fn func(RoomChanged))

	// Flush delivers queued RoomChanged events to subscribers.
	Flush()

	// World returns the donburi world the events are published to.
	World() donburi.World
}

type tracker struct {
	mu *sync.Mutex

	layout  Layout
	world   donburi.World
	current RoomID
	params  PostProcessParams
}

var _ Tracker = &tracker{}

// NewTracker creates a Tracker over the layout. It starts in Intro with default parameters.
//
// Parameters:
//   - layout: the rooms to track (must not be nil)
//   - options: functional options to configure the tracker
//
// Returns:
//   - Tracker: the new tracker
func NewTracker(layout Layout, options ...TrackerBuilderOption) Tracker {
	if layout == nil {
		panic("museum: NewTracker requires a non-nil Layout")
	}
	t := &tracker{
		mu:      &sync.Mutex{},
		layout:  layout,
		current: Intro,
		params:  DefaultParams(),
	}
	for _, option := range options {
		option(t)
	}
	if t.world == nil {
		t.world = donburi.NewWorld()
	}
	return t
}

func (t *tracker) Current() RoomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *tracker) Params() PostProcessParams {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.params
}

func (t *tracker) SetParams(p PostProcessParams) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.params = p
}

func (t *tracker) Nudge(primary, secondary float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.params.Nudge(t.current, primary, secondary)
}

func (t *tracker) Update(pos mgl32.Vec3) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range Rooms {
		if id == t.current {
			continue
		}
		room := t.layout.Room(id)
		if room == nil || !room.IsInExhibit(pos) {
			continue
		}
		from := t.current
		t.current = id
		t.params = DefaultParams()
		RoomChangedEvent.Publish(t.world, RoomChanged{From: from, To: id})
		return true
	}
	return false
}

func (t *tracker) Subscribe(fn func(RoomChanged)) {
	RoomChangedEvent.Subscribe(t.world, func(_ donburi.World, e RoomChanged) {
		fn(e)
	})
}

func (t *tracker) Flush() {
	RoomChangedEvent.ProcessEvents(t.world)
}

func (t *tracker) World() donburi.World {
	return t.world
}
