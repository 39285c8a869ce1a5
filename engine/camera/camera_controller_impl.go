package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/input"
	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the view from reaching straight up or down, where the look-at basis degenerates.
const MaxPitch = math.Pi/2 - 0.1

// firstPersonControllerImpl is the single implementation of FirstPersonController.
type firstPersonControllerImpl struct {
	mu *sync.Mutex

	transform transform.Transform

	moveSpeed   float32
	lookSpeed   float32
	minHeight   float32
	maxHeight   float32
	firstPerson bool
}

// Compile-time interface compliance check
var _ FirstPersonController = &firstPersonControllerImpl{}

// NewFirstPersonController creates a controller standing at (0, 5, 0) looking down -Z.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FirstPersonController: the newly created controller
func NewFirstPersonController(options ...FirstPersonControllerOption) FirstPersonController {
	fc := &firstPersonControllerImpl{
		mu:          &sync.Mutex{},
		transform:   transform.NewTransform(transform.WithPosition(0, 5, 0)),
		moveSpeed:   10,
		lookSpeed:   0.5,
		minHeight:   1,
		maxHeight:   12,
		firstPerson: true,
	}
	for _, option := range options {
		option(fc)
	}
	return fc
}

func (fc *firstPersonControllerImpl) Transform() transform.Transform {
	return fc.transform
}

func (fc *firstPersonControllerImpl) MoveSpeed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.moveSpeed
}

func (fc *firstPersonControllerImpl) SetMoveSpeed(speed float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.moveSpeed = speed
}

func (fc *firstPersonControllerImpl) LookSpeed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.lookSpeed
}

func (fc *firstPersonControllerImpl) HeightBounds() (minY, maxY float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.minHeight, fc.maxHeight
}

func (fc *firstPersonControllerImpl) FirstPerson() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.firstPerson
}

func (fc *firstPersonControllerImpl) SetFirstPerson(enabled bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.firstPerson = enabled
}

func (fc *firstPersonControllerImpl) Update(dt float32, in input.Reader) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	step := fc.moveSpeed * dt
	t := fc.transform

	if in.Down(common.KeyW) {
		t.MoveRelative(mgl32.Vec3{0, 0, step})
	}
	if in.Down(common.KeyS) {
		t.MoveRelative(mgl32.Vec3{0, 0, -step})
	}
	if in.Down(common.KeyA) {
		t.MoveRelative(mgl32.Vec3{-step, 0, 0})
	}
	if in.Down(common.KeyD) {
		t.MoveRelative(mgl32.Vec3{step, 0, 0})
	}
	if in.Down(common.KeySpace) {
		t.MoveAbsolute(mgl32.Vec3{0, step, 0})
	}
	if in.Down(common.KeyLeftShift) {
		t.MoveAbsolute(mgl32.Vec3{0, -step, 0})
	}

	if in.Pressed(common.KeyR) {
		fc.firstPerson = !fc.firstPerson
	}

	if fc.firstPerson {
		dx, dy := in.MouseDelta()
		if dx != 0 || dy != 0 {
			// Screen y grows downward and a positive yaw turns left, so both deltas are negated.
			look := fc.lookSpeed * dt
			t.Rotate(mgl32.Vec3{-dy * look, -dx * look, 0})
			rot := t.Rotation()
			rot[0] = common.Clamp(rot[0], -MaxPitch, MaxPitch)
			t.SetRotation(rot)
		}
	}

	pos := t.Position()
	if clamped := common.Clamp(pos[1], fc.minHeight, fc.maxHeight); clamped != pos[1] {
		pos[1] = clamped
		t.SetPosition(pos)
	}
}
