package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 0, 3, 4))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, float32(0), Coalesce[float32]())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(-2), 1, 12))
	assert.Equal(t, float32(12), Clamp(float32(40), 1, 12))
	assert.Equal(t, 5, Clamp(5, 1, 12))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Len(t, SliceToBytes([]float32{1, 2, 3}), 12)
}
