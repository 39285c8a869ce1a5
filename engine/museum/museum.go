package museum

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/input"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
	"github.com/Carmen-Shannon/oxy-museum/engine/scene"
)

// Museum ties the layout, the containment tracker and the scene camera into the per-step
// simulation.
type Museum interface {
	// Scene returns the scene holding every surface, decor object and light.
	Scene() scene.Scene

	// Layout returns the floor plan.
	Layout() Layout

	// Tracker returns the containment tracker.
	Tracker() Tracker

	// CurrentRoom returns the room the camera was last seen in.
	CurrentRoom() RoomID

	// Effects returns the display parameters of the current room, with effects the room does
	// not showcase neutralized.
	//
	// Returns:
	//   - PostProcessParams: the parameters to render with
	Effects() PostProcessParams

	// Billboards returns camera-facing quads for the live particles.
	//
	// Returns:
	//   - []particle.Vertex: six vertices per particle
	Billboards() []particle.Vertex

	// Step advances the simulation by dt: wall collisions against the camera's previous
	// position, room tracking, parameter keys, camera movement, then particles and decor.
	// It ends the input frame.
	//
	// Parameters:
	//   - dt: elapsed seconds
	//   - in: the input state for this step
	Step(dt float32, in input.State)
}

type museum struct {
	mu *sync.Mutex

	scene    scene.Scene
	layout   Layout
	exhibits []exhibit.Exhibit
	tracker  Tracker

	style          exhibit.Style
	emitterOptions []particle.EmitterBuilderOption
	trackerOptions []TrackerBuilderOption
}

var _ Museum = &museum{}

// NewMuseum builds the layout into the scene, adds the sun and starts tracking from the
// room that contains the camera (Intro if none does). NewMuseum panics if the scene is nil.
//
// Parameters:
//   - sc: the scene to build into
//   - options: functional options to configure the museum
//
// Returns:
//   - Museum: the new museum
//   - error: a layout validation error
func NewMuseum(sc scene.Scene, options ...MuseumBuilderOption) (Museum, error) {
	if sc == nil {
		panic("museum: NewMuseum requires a non-nil Scene")
	}

	m := &museum{
		mu:    &sync.Mutex{},
		scene: sc,
		style: exhibit.DefaultStyle(),
	}
	for _, option := range options {
		option(m)
	}

	l, err := BuildLayout(sc, m.style, m.emitterOptions...)
	if err != nil {
		return nil, fmt.Errorf("museum: build layout: %w", err)
	}
	m.layout = l
	m.exhibits = l.Exhibits()

	sc.AddLight(light.NewLight(light.LightTypeDirectional,
		light.WithDirection(1, 0, 0),
		light.WithColor(0.1, 0.1, 0.1),
		light.WithIntensity(10),
	))

	start := Intro
	if t := sc.Camera().Transform(); t != nil {
		for _, id := range Rooms {
			if l.Room(id).IsInExhibit(t.Position()) {
				start = id
				break
			}
		}
	}
	m.tracker = NewTracker(l, append([]TrackerBuilderOption{WithStartRoom(start)}, m.trackerOptions...)...)
	m.tracker.Subscribe(func(e RoomChanged) {
		log.Printf("[Tracker] %s -> %s", e.From, e.To)
	})

	log.Printf("[Museum] built %d rooms, %d objects, %d lights", len(m.exhibits), sc.Count(), len(sc.Lights()))
	return m, nil
}

func (m *museum) Scene() scene.Scene {
	return m.scene
}

func (m *museum) Layout() Layout {
	return m.layout
}

func (m *museum) Tracker() Tracker {
	return m.tracker
}

func (m *museum) CurrentRoom() RoomID {
	return m.tracker.Current()
}

func (m *museum) Effects() PostProcessParams {
	return m.tracker.Params().ForRoom(m.tracker.Current())
}

func (m *museum) Billboards() []particle.Vertex {
	t := m.scene.Camera().Transform()
	if t == nil {
		return nil
	}
	return m.layout.Emitter().Billboards(t.Right(), t.Up())
}

func (m *museum) Step(dt float32, in input.State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cam := m.scene.Camera()

	for _, e := range m.exhibits {
		e.CheckCollisions(cam)
	}

	if t := cam.Transform(); t != nil {
		m.tracker.Update(t.Position())
	}
	m.tracker.Flush()

	m.nudge(in)
	cam.Update(dt, in)

	m.layout.Emitter().Update(dt)
	for _, a := range m.layout.Animations() {
		a.Update(dt)
	}

	in.EndFrame()
}

// nudge maps Up/Down to the room's primary parameter and Right/Left to its secondary one.
func (m *museum) nudge(in input.Reader) {
	var primary, secondary float32
	if in.Pressed(common.KeyUp) {
		primary++
	}
	if in.Pressed(common.KeyDown) {
		primary--
	}
	if in.Pressed(common.KeyRight) {
		secondary++
	}
	if in.Pressed(common.KeyLeft) {
		secondary--
	}
	if primary != 0 || secondary != 0 {
		m.tracker.Nudge(primary, secondary)
	}
}
