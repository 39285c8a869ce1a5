package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
)

type gameObject struct {
	mu *sync.Mutex

	id            uint64
	name          string
	enabled       atomic.Bool
	transform     transform.Transform
	appearance    common.Appearance
	attachedLight light.Light
}

// GameObject defines the interface for a drawable scene entity. Each object owns exactly
// one Transform and one Appearance; layout code only ever manipulates the Transform.
type GameObject interface {
	// ID returns the handle assigned by the scene registry, or 0 if the object was never added.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's handle. Called by the scene registry on Add.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns a human readable label used in logs.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Transform returns the object's Transform. The returned value is shared, not a copy.
	//
	// Returns:
	//   - transform.Transform: the mutable transform
	Transform() transform.Transform

	// Appearance returns the object's appearance handle.
	//
	// Returns:
	//   - common.Appearance: the appearance
	Appearance() common.Appearance

	// SetAppearance replaces the object's appearance handle.
	//
	// Parameters:
	//   - a: the new appearance
	SetAppearance(a common.Appearance)

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetLight attaches a Light to this object. When the object is added to a
	// scene, the scene syncs the light's position from the object's transform
	// every frame. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:         &sync.Mutex{},
		transform:  transform.NewTransform(),
		appearance: common.NewAppearance(1, 1, 1),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Transform() transform.Transform {
	return g.transform
}

func (g *gameObject) Appearance() common.Appearance {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.appearance
}

func (g *gameObject) SetAppearance(a common.Appearance) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.appearance = a
}

func (g *gameObject) Light() light.Light {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attachedLight
}

func (g *gameObject) SetLight(l light.Light) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attachedLight = l
}
