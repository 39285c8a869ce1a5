package transform

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type transformImpl struct {
	mu *sync.Mutex

	position      mgl32.Vec3
	pitchYawRoll  mgl32.Vec3
	scale         mgl32.Vec3
	dirty         bool
	world         mgl32.Mat4
	worldInvTrans mgl32.Mat4
}

// Transform holds the position, rotation (pitch, yaw, roll in radians) and scale of an
// object and derives its world matrix. Every setter takes effect immediately; the world
// matrix is rebuilt lazily the next time it is read.
// Thread-safe for concurrent access.
type Transform interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the rotation as (pitch, yaw, roll) in radians.
	//
	// Returns:
	//   - mgl32.Vec3: pitch about X, yaw about Y, roll about Z
	Rotation() mgl32.Vec3

	// SetRotation sets the rotation as (pitch, yaw, roll) in radians.
	//
	// Parameters:
	//   - pitchYawRoll: the new rotation
	SetRotation(pitchYawRoll mgl32.Vec3)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - s: the new scale
	SetScale(s mgl32.Vec3)

	// MoveAbsolute translates the position by a world-space delta.
	//
	// Parameters:
	//   - delta: world-space offset
	MoveAbsolute(delta mgl32.Vec3)

	// MoveRelative translates the position by a delta expressed in the transform's local
	// axes: X along Right, Y along Up and Z along Forward.
	//
	// Parameters:
	//   - delta: local-space offset
	MoveRelative(delta mgl32.Vec3)

	// Rotate adds to the current pitch, yaw and roll.
	//
	// Parameters:
	//   - delta: rotation offset in radians
	Rotate(delta mgl32.Vec3)

	// ScaleBy multiplies the current scale component-wise.
	//
	// Parameters:
	//   - factors: per-axis multipliers
	ScaleBy(factors mgl32.Vec3)

	// Forward returns the unit vector the transform faces (local -Z in world space).
	Forward() mgl32.Vec3

	// Right returns the unit local +X axis in world space.
	Right() mgl32.Vec3

	// Up returns the unit local +Y axis in world space.
	Up() mgl32.Vec3

	// WorldMatrix returns translation * rotation * scale.
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix
	WorldMatrix() mgl32.Mat4

	// WorldInverseTranspose returns the inverse transpose of the world matrix, used to
	// transform normals.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse transpose of WorldMatrix
	WorldInverseTranspose() mgl32.Mat4
}

var _ Transform = &transformImpl{}

// NewTransform creates a Transform at the origin with unit scale and no rotation,
// then applies the given options.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - Transform: the newly created transform
func NewTransform(options ...TransformBuilderOption) Transform {
	t := &transformImpl{
		mu:    &sync.Mutex{},
		scale: mgl32.Vec3{1, 1, 1},
		dirty: true,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *transformImpl) Position() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

func (t *transformImpl) SetPosition(p mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = p
	t.dirty = true
}

func (t *transformImpl) Rotation() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pitchYawRoll
}

func (t *transformImpl) SetRotation(pitchYawRoll mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pitchYawRoll = pitchYawRoll
	t.dirty = true
}

func (t *transformImpl) Scale() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scale
}

func (t *transformImpl) SetScale(s mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scale = s
	t.dirty = true
}

func (t *transformImpl) MoveAbsolute(delta mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = t.position.Add(delta)
	t.dirty = true
}

func (t *transformImpl) MoveRelative(delta mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.rotationMatrix()
	right := r.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	up := r.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	forward := r.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	t.position = t.position.Add(right.Mul(delta[0])).Add(up.Mul(delta[1])).Add(forward.Mul(delta[2]))
	t.dirty = true
}

func (t *transformImpl) Rotate(delta mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pitchYawRoll = t.pitchYawRoll.Add(delta)
	t.dirty = true
}

func (t *transformImpl) ScaleBy(factors mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scale = mgl32.Vec3{t.scale[0] * factors[0], t.scale[1] * factors[1], t.scale[2] * factors[2]}
	t.dirty = true
}

func (t *transformImpl) Forward() mgl32.Vec3 {
	return t.axis(mgl32.Vec3{0, 0, -1})
}

func (t *transformImpl) Right() mgl32.Vec3 {
	return t.axis(mgl32.Vec3{1, 0, 0})
}

func (t *transformImpl) Up() mgl32.Vec3 {
	return t.axis(mgl32.Vec3{0, 1, 0})
}

func (t *transformImpl) WorldMatrix() mgl32.Mat4 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.updateMatrices()
	return t.world
}

func (t *transformImpl) WorldInverseTranspose() mgl32.Mat4 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.updateMatrices()
	return t.worldInvTrans
}

// axis rotates a local unit axis into world space.
func (t *transformImpl) axis(local mgl32.Vec3) mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotationMatrix().Mul4x1(local.Vec4(0)).Vec3().Normalize()
}

// rotationMatrix builds R = Ry * Rx * Rz from the stored pitch, yaw and roll.
// Caller must hold the mutex.
func (t *transformImpl) rotationMatrix() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(t.pitchYawRoll[0])
	ry := mgl32.HomogRotate3DY(t.pitchYawRoll[1])
	rz := mgl32.HomogRotate3DZ(t.pitchYawRoll[2])
	return ry.Mul4(rx).Mul4(rz)
}

// updateMatrices rebuilds the world and inverse-transpose matrices when dirty.
// Caller must hold the mutex.
func (t *transformImpl) updateMatrices() {
	if !t.dirty {
		return
	}
	translation := mgl32.Translate3D(t.position[0], t.position[1], t.position[2])
	scale := mgl32.Scale3D(t.scale[0], t.scale[1], t.scale[2])
	t.world = translation.Mul4(t.rotationMatrix()).Mul4(scale)
	t.worldInvTrans = t.world.Inv().Transpose()
	t.dirty = false
}
