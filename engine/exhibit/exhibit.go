package exhibit

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-museum/engine/game_object"
	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidSize is returned by NewExhibit when the size is not a positive finite number.
var ErrInvalidSize = errors.New("exhibit: size must be positive and finite")

// Registry is the shared collection that owns drawable surfaces. Exhibits create their
// floor and walls and hand them to the registry, which assigns handles and tears them down.
// scene.Scene satisfies it.
type Registry interface {
	Add(obj game_object.GameObject) uint64
}

// Placeable is anything positioned by a single Transform: game objects and cameras alike.
type Placeable interface {
	Transform() transform.Transform
}

// Exhibit is a square room with a floor and up to four walls, one per cardinal direction.
// The origin is the room center at floor level. Walls are tracked symbolically by
// Direction, so doorway carving never depends on comparing reconstructed coordinates.
//
// Exhibits are built once on a single goroutine; the methods are not safe for concurrent
// mutation. The surfaces' transforms are, so the renderer may read them at any time.
type Exhibit interface {
	// Name returns the exhibit name.
	Name() string

	// Origin returns the room center at floor level.
	Origin() mgl32.Vec3

	// Size returns the edge length of the square footprint.
	Size() float32

	// Style returns the style the surfaces were built with.
	Style() Style

	// Floor returns the floor surface.
	Floor() game_object.GameObject

	// Wall returns the wall in the given slot, or nil when the slot is missing.
	//
	// Parameters:
	//   - dir: the wall slot
	//
	// Returns:
	//   - game_object.GameObject: the wall surface or nil
	Wall(dir Direction) game_object.GameObject

	// WallState returns the state of the given wall slot.
	WallState(dir Direction) WallState

	// Surfaces returns the floor followed by every present wall, in slot order.
	//
	// Returns:
	//   - []game_object.GameObject: the surfaces owned by this exhibit
	Surfaces() []game_object.GameObject

	// Bounds returns the corners of the footprint at floor level.
	//
	// Returns:
	//   - mgl32.Vec3: the minimum corner
	//   - mgl32.Vec3: the maximum corner
	Bounds() (mgl32.Vec3, mgl32.Vec3)

	// PlaceObject sets the object's world position to origin + local. Calling it again with
	// the same arguments gives the same position. No bounds checking is done.
	//
	// Parameters:
	//   - obj: the object to place
	//   - local: the position relative to the room origin
	PlaceObject(obj Placeable, local mgl32.Vec3)

	// AttachTo moves this exhibit flush against other, on the dir side of it, translating
	// every surface rigidly. It then carves a doorway between the two facing walls when both
	// are still full, leaving two narrowed segments flanking a DoorGap-wide opening centered
	// on the shared edge. AttachTo panics if other is nil, this exhibit itself, or an
	// Exhibit from another implementation.
	//
	// Parameters:
	//   - other: the exhibit to attach to
	//   - dir: where this exhibit ends up relative to other
	//
	// Returns:
	//   - bool: true if a doorway was carved, false if the carve was skipped
	AttachTo(other Exhibit, dir Direction) bool

	// CheckCollisions pushes the object out of every present wall footprint, expanded by the
	// collision buffer, along the axis of least penetration. Only X and Z are considered.
	// Walls are resolved one at a time in slot order.
	//
	// Parameters:
	//   - obj: the object to keep outside the walls, normally the camera
	CheckCollisions(obj Placeable)

	// IsInExhibit reports whether the position lies strictly inside the footprint on X and Z.
	//
	// Parameters:
	//   - p: the world position to test
	//
	// Returns:
	//   - bool: true when inside
	IsInExhibit(p mgl32.Vec3) bool
}

type wallSlot struct {
	state WallState
	obj   game_object.GameObject
}

type exhibit struct {
	name   string
	origin mgl32.Vec3
	size   float32
	style  Style
	build  [4]bool

	floor game_object.GameObject
	walls [4]wallSlot
}

var _ Exhibit = &exhibit{}

// NewExhibit builds a room of the given size, creates its floor and requested walls and
// registers each surface with the registry.
//
// Parameters:
//   - registry: the collection that takes ownership of the surfaces (must not be nil)
//   - size: the footprint edge length (must be positive)
//   - options: functional options to configure the exhibit
//
// Returns:
//   - Exhibit: the new exhibit
//   - error: ErrInvalidSize if size is not positive and finite
func NewExhibit(registry Registry, size float32, options ...ExhibitBuilderOption) (Exhibit, error) {
	if registry == nil {
		panic("exhibit: NewExhibit requires a non-nil Registry")
	}
	if !(size > 0) || math.IsInf(float64(size), 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSize, size)
	}

	e := &exhibit{
		name:  "exhibit",
		size:  size,
		style: DefaultStyle(),
		build: [4]bool{true, true, true, true},
	}
	for _, option := range options {
		option(e)
	}

	t := e.style.Thickness
	h := e.style.WallHeight

	e.floor = game_object.NewGameObject(
		game_object.WithName(e.name+"/floor"),
		game_object.WithAppearance(e.style.Floor),
		game_object.WithPosition(e.origin[0], e.origin[1]-t/2, e.origin[2]),
		game_object.WithScale(size, t, size),
	)
	registry.Add(e.floor)

	for _, dir := range Directions {
		if !e.build[dir] {
			continue
		}
		center := e.origin.Add(dir.Vector().Mul(size / 2)).Add(mgl32.Vec3{0, h / 2, 0})
		scale := mgl32.Vec3{size, h, t}
		if dir.FacesX() {
			scale = mgl32.Vec3{t, h, size}
		}
		wall := game_object.NewGameObject(
			game_object.WithName(fmt.Sprintf("%s/wall%s", e.name, dir)),
			game_object.WithAppearance(e.style.Wall),
			game_object.WithPosition(center[0], center[1], center[2]),
			game_object.WithScale(scale[0], scale[1], scale[2]),
		)
		registry.Add(wall)
		e.walls[dir] = wallSlot{state: WallFull, obj: wall}
	}

	return e, nil
}

func (e *exhibit) Name() string {
	return e.name
}

func (e *exhibit) Origin() mgl32.Vec3 {
	return e.origin
}

func (e *exhibit) Size() float32 {
	return e.size
}

func (e *exhibit) Style() Style {
	return e.style
}

func (e *exhibit) Floor() game_object.GameObject {
	return e.floor
}

func (e *exhibit) Wall(dir Direction) game_object.GameObject {
	if !dir.Valid() {
		return nil
	}
	return e.walls[dir].obj
}

func (e *exhibit) WallState(dir Direction) WallState {
	if !dir.Valid() {
		return WallMissing
	}
	return e.walls[dir].state
}

func (e *exhibit) Surfaces() []game_object.GameObject {
	out := []game_object.GameObject{e.floor}
	for _, slot := range e.walls {
		if slot.state != WallMissing {
			out = append(out, slot.obj)
		}
	}
	return out
}

func (e *exhibit) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	half := mgl32.Vec3{e.size / 2, 0, e.size / 2}
	return e.origin.Sub(half), e.origin.Add(half)
}

func (e *exhibit) PlaceObject(obj Placeable, local mgl32.Vec3) {
	obj.Transform().SetPosition(e.origin.Add(local))
}

func (e *exhibit) AttachTo(other Exhibit, dir Direction) bool {
	if other == nil {
		panic("exhibit: AttachTo requires a non-nil Exhibit")
	}
	o, ok := other.(*exhibit)
	if !ok {
		panic("exhibit: AttachTo requires an Exhibit created by NewExhibit")
	}
	if o == e {
		panic("exhibit: cannot attach an Exhibit to itself")
	}
	if !dir.Valid() {
		panic("exhibit: AttachTo requires a cardinal Direction")
	}

	d := dir.Vector()
	scale := (e.size + o.size) / 2
	target := o.origin.Add(d.Mul(scale))
	target[1] = e.origin[1]

	delta := target.Sub(e.origin)
	e.origin = target
	for _, s := range e.Surfaces() {
		s.Transform().MoveAbsolute(delta)
	}

	return e.carveDoorway(o, dir)
}

// carveDoorway narrows the wall of e facing o and the wall of o facing e into two segments
// flanking a DoorGap opening centered on the shared edge. Both slots must still be full.
func (e *exhibit) carveDoorway(o *exhibit, dir Direction) bool {
	mine := &e.walls[dir.Opposite()]
	theirs := &o.walls[dir]
	if mine.state != WallFull || theirs.state != WallFull {
		return false
	}

	gap := e.style.DoorGap
	width := (max(e.size, o.size) - gap) / 2
	if width <= 0 {
		return false
	}

	// Shared edge midpoint in XZ; both origins share the perpendicular coordinate.
	mid := o.origin.Add(dir.Vector().Mul(o.size / 2))
	along := mgl32.Vec3{1, 0, 0}
	if dir.FacesX() {
		along = mgl32.Vec3{0, 0, 1}
	}
	shift := along.Mul((width + gap) / 2)

	resize := func(slot *wallSlot, offset mgl32.Vec3) {
		t := slot.obj.Transform()
		s := t.Scale()
		if dir.FacesX() {
			s[2] = width
		} else {
			s[0] = width
		}
		t.SetScale(s)

		p := mid.Add(offset)
		p[1] = t.Position()[1]
		t.SetPosition(p)
		slot.state = WallCarved
	}
	resize(mine, shift)
	resize(theirs, shift.Mul(-1))
	return true
}

func (e *exhibit) CheckCollisions(obj Placeable) {
	t := obj.Transform()
	if t == nil {
		return
	}
	buf := e.style.CollisionBuffer

	for _, slot := range e.walls {
		if slot.state == WallMissing {
			continue
		}
		wt := slot.obj.Transform()
		center, half := wt.Position(), wt.Scale().Mul(0.5)
		minX, maxX := center[0]-half[0]-buf, center[0]+half[0]+buf
		minZ, maxZ := center[2]-half[2]-buf, center[2]+half[2]+buf

		p := t.Position()
		if p[0] <= minX || p[0] >= maxX || p[2] <= minZ || p[2] >= maxZ {
			continue
		}

		// Push out through whichever face is nearest.
		axis, bound := 0, minX
		best := p[0] - minX
		if d := maxX - p[0]; d < best {
			best, bound = d, maxX
		}
		if d := p[2] - minZ; d < best {
			best, axis, bound = d, 2, minZ
		}
		if d := maxZ - p[2]; d < best {
			axis, bound = 2, maxZ
		}
		p[axis] = bound
		t.SetPosition(p)
	}
}

func (e *exhibit) IsInExhibit(p mgl32.Vec3) bool {
	half := e.size / 2
	return p[0] > e.origin[0]-half && p[0] < e.origin[0]+half &&
		p[2] > e.origin[2]-half && p[2] < e.origin[2]+half
}
