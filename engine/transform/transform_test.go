package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, msgAndArgs...)
	}
}

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()
	assertVecNear(t, mgl32.Vec3{}, tr.Position())
	assertVecNear(t, mgl32.Vec3{1, 1, 1}, tr.Scale())
	assert.True(t, tr.WorldMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestBuilderOptions(t *testing.T) {
	tr := NewTransform(WithPosition(1, 2, 3), WithScale(2, 4, 6), WithRotation(0.1, 0.2, 0.3))
	assertVecNear(t, mgl32.Vec3{1, 2, 3}, tr.Position())
	assertVecNear(t, mgl32.Vec3{2, 4, 6}, tr.Scale())
	assertVecNear(t, mgl32.Vec3{0.1, 0.2, 0.3}, tr.Rotation())
}

func TestMoveAbsoluteIsImmediate(t *testing.T) {
	tr := NewTransform(WithPosition(1, 0, 1))
	tr.MoveAbsolute(mgl32.Vec3{2, 3, -4})
	assertVecNear(t, mgl32.Vec3{3, 3, -3}, tr.Position())

	// The world matrix must reflect the move without any explicit commit.
	assertVecNear(t, mgl32.Vec3{3, 3, -3}, tr.WorldMatrix().Col(3).Vec3())
}

func TestWorldMatrixScalesThenTranslates(t *testing.T) {
	tr := NewTransform(WithPosition(10, 0, 0), WithScale(2, 2, 2))
	p := tr.WorldMatrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	assertVecNear(t, mgl32.Vec3{12, 2, 2}, p)
}

func TestWorldInverseTransposeUndoesNonUniformScale(t *testing.T) {
	tr := NewTransform(WithScale(2, 1, 4))
	n := tr.WorldInverseTranspose().Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	assertVecNear(t, mgl32.Vec3{0.5, 0, 0}, n)
}

func TestAxesFollowYaw(t *testing.T) {
	tr := NewTransform()
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.Forward())
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, tr.Right())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up())

	// A positive quarter-turn yaw turns the forward axis toward -X.
	tr.Rotate(mgl32.Vec3{0, math.Pi / 2, 0})
	assertVecNear(t, mgl32.Vec3{-1, 0, 0}, tr.Forward())
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.Right())
}

func TestPositivePitchLooksUp(t *testing.T) {
	tr := NewTransform(WithRotation(math.Pi/2, 0, 0))
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Forward())
}

func TestMoveRelativeUsesLocalAxes(t *testing.T) {
	tr := NewTransform(WithRotation(0, math.Pi/2, 0))
	tr.MoveRelative(mgl32.Vec3{0, 0, 2})
	assertVecNear(t, mgl32.Vec3{-2, 0, 0}, tr.Position())

	tr.MoveRelative(mgl32.Vec3{1, 0, 0})
	assertVecNear(t, mgl32.Vec3{-2, 0, -1}, tr.Position())
}

func TestScaleByMultiplies(t *testing.T) {
	tr := NewTransform(WithScale(2, 3, 4))
	tr.ScaleBy(mgl32.Vec3{0.5, 2, 1})
	assertVecNear(t, mgl32.Vec3{1, 6, 4}, tr.Scale())
}
