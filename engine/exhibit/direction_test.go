package exhibit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDirectionVectors(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, PosX.Vector())
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, NegX.Vector())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, PosZ.Vector())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, NegZ.Vector())

	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d.Vector().Mul(-1), d.Opposite().Vector())
		assert.Equal(t, float32(0), d.Vector()[1])
	}
}

func TestDirectionStrings(t *testing.T) {
	assert.Equal(t, "+X", PosX.String())
	assert.Equal(t, "-Z", NegZ.String())
	assert.Equal(t, "invalid", Direction(7).String())
	assert.Equal(t, "carved", WallCarved.String())
	assert.True(t, NegX.FacesX())
	assert.False(t, PosZ.FacesX())
}
