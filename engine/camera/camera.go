package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/input"
	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Field-of-view limits applied when zooming with P/O.
const (
	MinFov = 10 * math.Pi / 180
	MaxFov = 120 * math.Pi / 180
)

type cameraImpl struct {
	mu *sync.Mutex

	up [3]float32

	fov      float32
	fovSpeed float32
	aspect   float32
	near     float32
	far      float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller FirstPersonController
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// from an attached FirstPersonController each frame via Update().
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Controller returns the attached FirstPersonController, or nil.
	//
	// Returns:
	//   - FirstPersonController: the attached controller or nil
	Controller() FirstPersonController

	// Transform returns the mutable transform of the attached controller, or nil when no
	// controller is attached. Collision resolution moves the camera through it.
	//
	// Returns:
	//   - transform.Transform: the camera transform
	Transform() transform.Transform

	// Update integrates one step of controller input, applies P/O field-of-view zoom and
	// recomputes matrices. Without a controller only the zoom and matrices are updated.
	//
	// Parameters:
	//   - dt: step duration in seconds
	//   - in: the input state for this step
	Update(dt float32, in input.Reader)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches a FirstPersonController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl FirstPersonController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		up:                   [3]float32{0, 1, 0},
		fov:                  45.0 * (math.Pi / 180.0), // radians
		fovSpeed:             0.5,
		aspect:               1.0,
		near:                 0.1,
		far:                  100.0,
		viewMatrix:           mgl32.Ident4(),
		projectionMatrix:     mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Controller() FirstPersonController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl FirstPersonController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

func (c *cameraImpl) Transform() transform.Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return nil
	}
	return c.controller.Transform()
}

func (c *cameraImpl) Update(dt float32, in input.Reader) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.controller != nil {
		c.controller.Update(dt, in)
	}
	if in.Down(common.KeyP) {
		c.fov += c.fovSpeed * dt
	}
	if in.Down(common.KeyO) {
		c.fov -= c.fovSpeed * dt
	}
	c.fov = common.Clamp(c.fov, MinFov, MaxFov)
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection and view-projection matrices.
// The view matrix is left unchanged while no controller is attached.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)

	if c.controller != nil {
		t := c.controller.Transform()
		eye := t.Position()
		c.viewMatrix = mgl32.LookAtV(eye, eye.Add(t.Forward()), mgl32.Vec3(c.up))
	}

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
