package museum

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
)

var (
	// ErrInvalidStyle is returned when a structural constant is not a finite positive number.
	ErrInvalidStyle = errors.New("museum: invalid exhibit style")

	// ErrDoorGapTooWide is returned when the doorway would be at least as wide as a room.
	ErrDoorGapTooWide = errors.New("museum: door gap must be smaller than every room")

	// ErrDoorGapTooNarrow is returned when the doorway is too narrow for the camera to pass
	// between the collision buffers of its two posts.
	ErrDoorGapTooNarrow = errors.New("museum: door gap must exceed twice the collision buffer")
)

// noParent marks the room every other room hangs off.
const noParent RoomID = -1

// roomPlan is one step of the floor plan: build a room of the given size and attach it on
// the dir side of parent.
type roomPlan struct {
	id     RoomID
	size   float32
	parent RoomID
	dir    exhibit.Direction
}

// floorPlan is topologically ordered: every parent appears before the rooms attached to it.
var floorPlan = []roomPlan{
	{id: Intro, size: 20, parent: noParent},
	{id: BrightContrast, size: 20, parent: Intro, dir: exhibit.PosX},
	{id: Blur, size: 20, parent: Intro, dir: exhibit.NegX},
	{id: Halls, size: 10, parent: Intro, dir: exhibit.PosZ},
	{id: CelShading, size: 20, parent: Halls, dir: exhibit.PosZ},
	{id: Bloom, size: 20, parent: CelShading, dir: exhibit.PosX},
	{id: Particles, size: 20, parent: CelShading, dir: exhibit.NegX},
	{id: Everything, size: 30, parent: CelShading, dir: exhibit.PosZ},
}

// Layout is the fixed museum floor plan: one Exhibit per RoomID plus the decor that
// populates them.
type Layout interface {
	// Room returns the exhibit for the given room, or nil for an unknown id.
	//
	// Parameters:
	//   - id: the room
	//
	// Returns:
	//   - exhibit.Exhibit: the room's exhibit
	Room(id RoomID) exhibit.Exhibit

	// Exhibits returns every exhibit in tracker order.
	//
	// Returns:
	//   - []exhibit.Exhibit: the exhibits
	Exhibits() []exhibit.Exhibit

	// Animations returns the decor animations.
	Animations() []*Animation

	// Emitter returns the particle emitter shown in the Particles room.
	Emitter() particle.Emitter
}

type layout struct {
	rooms      map[RoomID]exhibit.Exhibit
	animations []*Animation
	emitter    particle.Emitter
}

var _ Layout = &layout{}

// ValidateStyle checks that a style can carve passable doorways into rooms of the given sizes.
//
// Parameters:
//   - style: the exhibit style
//   - sizes: the room sizes
//
// Returns:
//   - error: ErrInvalidStyle, ErrDoorGapTooWide or ErrDoorGapTooNarrow, wrapped with the offending values
func ValidateStyle(style exhibit.Style, sizes ...float32) error {
	switch {
	case !positive(style.Thickness):
		return fmt.Errorf("%w: thickness %v", ErrInvalidStyle, style.Thickness)
	case !positive(style.WallHeight):
		return fmt.Errorf("%w: wall height %v", ErrInvalidStyle, style.WallHeight)
	case !positive(style.DoorGap):
		return fmt.Errorf("%w: door gap %v", ErrInvalidStyle, style.DoorGap)
	case !(style.CollisionBuffer >= 0) || math.IsInf(float64(style.CollisionBuffer), 0):
		return fmt.Errorf("%w: collision buffer %v", ErrInvalidStyle, style.CollisionBuffer)
	}

	for _, size := range sizes {
		if style.DoorGap >= size {
			return fmt.Errorf("%w: gap %v, room %v", ErrDoorGapTooWide, style.DoorGap, size)
		}
	}
	if style.DoorGap <= 2*style.CollisionBuffer {
		return fmt.Errorf("%w: gap %v, buffer %v", ErrDoorGapTooNarrow, style.DoorGap, style.CollisionBuffer)
	}
	return nil
}

// positive is false for NaN and infinities.
func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// RoomSizes returns the size of every room in floor plan order.
func RoomSizes() []float32 {
	sizes := make([]float32, len(floorPlan))
	for i, plan := range floorPlan {
		sizes[i] = plan.size
	}
	return sizes
}

// BuildLayout builds the museum: every room is constructed and attached in floor plan order,
// carving the doorways, then populated with decor, ceiling lamps and the particle emitter.
// Every surface is registered with the registry.
//
// Parameters:
//   - reg: the registry that owns the surfaces (normally the scene)
//   - style: the appearance handles and structural constants shared by every room
//   - emitterOptions: options for the Particles room emitter
//
// Returns:
//   - Layout: the built layout
//   - error: a validation error if the style cannot fit the floor plan
func BuildLayout(reg exhibit.Registry, style exhibit.Style, emitterOptions ...particle.EmitterBuilderOption) (Layout, error) {
	if err := ValidateStyle(style, RoomSizes()...); err != nil {
		return nil, err
	}

	rooms, err := buildRooms(reg, style, floorPlan)
	if err != nil {
		return nil, err
	}

	l := &layout{
		rooms:   rooms,
		emitter: particle.NewEmitter(emitterOptions...),
	}
	newDecorator(l, reg, style).decorate()
	return l, nil
}

// buildRooms constructs and attaches the rooms of a plan. It panics when a room attaches to
// a parent that has not been built yet.
func buildRooms(reg exhibit.Registry, style exhibit.Style, plan []roomPlan) (map[RoomID]exhibit.Exhibit, error) {
	rooms := make(map[RoomID]exhibit.Exhibit, len(plan))
	for _, p := range plan {
		e, err := exhibit.NewExhibit(reg, p.size, exhibit.WithName(p.id.String()), exhibit.WithStyle(style))
		if err != nil {
			return nil, fmt.Errorf("museum: build %s: %w", p.id, err)
		}
		if p.parent != noParent {
			parent, ok := rooms[p.parent]
			if !ok {
				panic(fmt.Sprintf("museum: %s attaches to %s before it is built", p.id, p.parent))
			}
			e.AttachTo(parent, p.dir)
		}
		rooms[p.id] = e
	}
	return rooms, nil
}

func (l *layout) Room(id RoomID) exhibit.Exhibit {
	return l.rooms[id]
}

func (l *layout) Exhibits() []exhibit.Exhibit {
	out := make([]exhibit.Exhibit, 0, len(l.rooms))
	for _, id := range Rooms {
		if e, ok := l.rooms[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (l *layout) Animations() []*Animation {
	return l.animations
}

func (l *layout) Emitter() particle.Emitter {
	return l.emitter
}
