package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/game_object"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawItem is one object's contribution to a frame: its world matrix and appearance.
type DrawItem struct {
	ID         uint64
	World      mgl32.Mat4
	Appearance common.Appearance
}

// Frame is an immutable snapshot of everything the renderer needs for one scene.
type Frame struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	CameraPosition mgl32.Vec3

	// Items holds the enabled, frustum-visible objects in registry order.
	Items []DrawItem

	Lights       []light.Light
	AmbientColor [3]float32
	ClearColor   [4]float32
}

// Scene is the shared entity registry. Objects are appended to an arena and addressed by
// stable handles (index + 1, so 0 always means "not registered"); they are never removed
// individually, only torn down together by Clear. The scene also owns the camera used for
// culling and the lights gathered into every Frame.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Add registers a GameObject and returns its handle. Adding an object that is already
	// registered returns its existing handle. If the object carries a Light, the light is
	// registered too and follows the object's position.
	//
	// Parameters:
	//   - obj: the object to register (must not be nil)
	//
	// Returns:
	//   - uint64: the object's handle
	Add(obj game_object.GameObject) uint64

	// Get returns the object registered under id, or nil.
	//
	// Parameters:
	//   - id: the handle returned by Add
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Count returns the number of registered objects.
	//
	// Returns:
	//   - int: count of registered objects
	Count() int

	// Objects returns a copy of the registry in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: the registered objects
	Objects() []game_object.GameObject

	// AddLight registers a free-standing light.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// Lights returns a copy of all registered lights.
	//
	// Returns:
	//   - []light.Light: the registered lights
	Lights() []light.Light

	// AmbientColor returns the scene ambient light color.
	AmbientColor() [3]float32

	// SetAmbientColor sets the scene ambient light color.
	//
	// Parameters:
	//   - color: RGB ambient color
	SetAmbientColor(color [3]float32)

	// ClearColor returns the background color.
	ClearColor() [4]float32

	// SetClearColor sets the background color.
	//
	// Parameters:
	//   - color: RGBA background color
	SetClearColor(color [4]float32)

	// CullingDisabled reports whether frustum culling is skipped in PrepareDraw.
	CullingDisabled() bool

	// SetCullingDisabled enables or disables frustum culling in PrepareDraw.
	//
	// Parameters:
	//   - disabled: true to draw every enabled object
	SetCullingDisabled(disabled bool)

	// PrepareDraw syncs attached lights to their objects, computes world matrices for all
	// enabled objects in parallel, culls them against the camera frustum and returns the
	// frame snapshot.
	//
	// Returns:
	//   - Frame: the prepared frame
	PrepareDraw() Frame

	// Clear tears down the registry: every object and light is dropped and object handles
	// are reset to 0.
	Clear()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool
	cam    camera.Camera

	objects      []game_object.GameObject
	lights       []light.Light
	lightObjects []game_object.GameObject

	ambientColor    [3]float32
	clearColor      [4]float32
	cullingDisabled bool

	// computePool runs the per-frame world matrix preparation. Workers persist across
	// frames, avoiding per-frame goroutine spawn/teardown overhead.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
	batchSize      int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera. NewScene panics if the camera is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         true,
		cam:            cam,
		ambientColor:   [3]float32{0.15, 0.15, 0.15},
		clearColor:     [4]float32{0.1, 0.1, 0.1, 1},
		computeWorkers: max(runtime.NumCPU()-1, 1),
		batchSize:      64,
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		panic("scene: cannot Add a nil GameObject")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if id := obj.ID(); id != 0 && id <= uint64(len(s.objects)) && s.objects[id-1] == obj {
		return id
	}

	s.objects = append(s.objects, obj)
	id := uint64(len(s.objects))
	obj.SetID(id)

	if l := obj.Light(); l != nil {
		s.lights = append(s.lights, l)
		s.lightObjects = append(s.lightObjects, obj)
	}
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == 0 || id > uint64(len(s.objects)) {
		return nil
	}
	return s.objects[id-1]
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) AmbientColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColor
}

func (s *scene) SetAmbientColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColor = color
}

func (s *scene) ClearColor() [4]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clearColor
}

func (s *scene) SetClearColor(color [4]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearColor = color
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, obj := range s.objects {
		obj.SetID(0)
	}
	s.objects = nil
	s.lights = nil
	s.lightObjects = nil
}

func (s *scene) PrepareDraw() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frame := Frame{
		View:           s.cam.ViewMatrix(),
		Projection:     s.cam.ProjectionMatrix(),
		ViewProjection: s.cam.ViewProjectionMatrix(),
		AmbientColor:   s.ambientColor,
		ClearColor:     s.clearColor,
	}
	if t := s.cam.Transform(); t != nil {
		frame.CameraPosition = t.Position()
	}

	for _, obj := range s.lightObjects {
		p := obj.Transform().Position()
		obj.Light().SetPosition(p[0], p[1], p[2])
	}
	frame.Lights = make([]light.Light, len(s.lights))
	copy(frame.Lights, s.lights)

	var frustum *common.Frustum
	if !s.cullingDisabled {
		f := common.ExtractFrustumFromMatrix(frame.ViewProjection)
		frustum = &f
	}

	// Parallel CPU prep: each batch of objects is submitted to the compute pool and writes
	// into its own slot, so the merged result keeps registry order. A WaitGroup provides
	// the per-frame barrier since pool.Wait() blocks until workers idle-exit.
	batches := (len(s.objects) + s.batchSize - 1) / s.batchSize
	results := make([][]DrawItem, batches)
	var wg sync.WaitGroup
	for b := range batches {
		start := b * s.batchSize
		end := min(start+s.batchSize, len(s.objects))
		chunk := s.objects[start:end]
		slot := b

		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()
				results[slot] = prepareBatch(chunk, frustum)
				return nil, nil
			},
		})
	}
	wg.Wait()

	for _, r := range results {
		frame.Items = append(frame.Items, r...)
	}
	return frame
}

// prepareBatch computes draw items for a slice of objects, skipping disabled objects and
// objects whose bounding sphere lies outside the frustum (when one is given).
func prepareBatch(objects []game_object.GameObject, frustum *common.Frustum) []DrawItem {
	items := make([]DrawItem, 0, len(objects))
	for _, obj := range objects {
		if !obj.Enabled() {
			continue
		}
		t := obj.Transform()
		if frustum != nil {
			// The unit mesh fits in a sphere of radius 0.5*sqrt(3); scaling stretches it by at most |scale|.
			radius := 0.5 * t.Scale().Len()
			if !frustum.IntersectsSphere(t.Position(), radius) {
				continue
			}
		}
		items = append(items, DrawItem{
			ID:         obj.ID(),
			World:      t.WorldMatrix(),
			Appearance: obj.Appearance(),
		})
	}
	return items
}
