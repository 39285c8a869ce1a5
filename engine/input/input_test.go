package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/stretchr/testify/assert"
)

func TestPressIsEdgeTriggered(t *testing.T) {
	s := NewState()
	s.Press(common.KeyR)
	assert.True(t, s.Down(common.KeyR))
	assert.True(t, s.Pressed(common.KeyR))

	s.EndFrame()
	assert.True(t, s.Down(common.KeyR), "held keys stay down across frames")
	assert.False(t, s.Pressed(common.KeyR))

	// Key repeat while held must not produce another edge.
	s.Press(common.KeyR)
	assert.False(t, s.Pressed(common.KeyR))

	s.Release(common.KeyR)
	assert.False(t, s.Down(common.KeyR))
	s.Press(common.KeyR)
	assert.True(t, s.Pressed(common.KeyR))
}

func TestMouseDeltaAccumulatesUntilEndFrame(t *testing.T) {
	s := NewState()
	s.MoveMouse(3, -1)
	s.MoveMouse(2, 4)
	dx, dy := s.MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(3), dy)

	s.EndFrame()
	dx, dy = s.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
