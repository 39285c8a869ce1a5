package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

func TestExtractFrustumNormalizesPlanes(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProjection())
	for i, p := range f.Planes {
		n := mgl32.Vec3{p.Normal[0], p.Normal[1], p.Normal[2]}
		assert.InDelta(t, 1.0, n.Len(), 1e-4, "plane %d", i)
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProjection())

	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -10}, 1), "in front of the camera")
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 10}, 1), "behind the camera")
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -200}, 1), "beyond the far plane")
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{50, 0, -10}, 1), "far to the right")
	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 2}, 3), "straddling the near plane")
}
