package museum

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/input"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMuseum(t *testing.T, x, y, z, yaw float32, options ...MuseumBuilderOption) Museum {
	t.Helper()
	m, err := NewMuseum(newTestScene(x, y, z, yaw), options...)
	require.NoError(t, err)
	return m
}

func TestNewMuseumStartsInContainingRoom(t *testing.T) {
	m := newTestMuseum(t, 0, 5, 0, 0)
	assert.Equal(t, Intro, m.CurrentRoom())
	assert.Len(t, m.Scene().Lights(), int(RoomCount)+1, "a lamp per room plus the sun")

	m = newTestMuseum(t, 0, 5, 55, 0)
	assert.Equal(t, Everything, m.CurrentRoom())
}

func TestNewMuseumRejectsBadStyle(t *testing.T) {
	style := exhibit.DefaultStyle()
	style.CollisionBuffer = 4
	_, err := NewMuseum(newTestScene(0, 5, 0, 0), WithStyle(style))
	assert.ErrorIs(t, err, ErrDoorGapTooNarrow)
}

func TestNewMuseumRejectsNaNDoorGap(t *testing.T) {
	style := exhibit.DefaultStyle()
	style.DoorGap = float32(math.NaN())
	_, err := NewMuseum(newTestScene(0, 5, 0, 0), WithStyle(style))
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestNewMuseumPanicsWithoutScene(t *testing.T) {
	assert.Panics(t, func() { _, _ = NewMuseum(nil) })
}

func TestStepWalksThroughDoorway(t *testing.T) {
	m := newTestMuseum(t, 0, 5, 0, -math.Pi/2)
	var changes []RoomChanged
	m.Tracker().Subscribe(func(e RoomChanged) { changes = append(changes, e) })

	in := input.NewState()
	in.Press(common.KeyW)
	for range 25 {
		m.Step(0.1, in)
	}

	pos := m.Scene().Camera().Transform().Position()
	assert.InDelta(t, 25, pos[0], 0.01, "nothing blocks the doorway")
	assert.InDelta(t, 0, pos[2], 0.01)
	assert.Equal(t, BrightContrast, m.CurrentRoom())
	require.Len(t, changes, 1)
	assert.Equal(t, RoomChanged{From: Intro, To: BrightContrast}, changes[0])
}

func TestStepKeepsCameraInsideWalls(t *testing.T) {
	m := newTestMuseum(t, 0, 5, 0, 0)
	in := input.NewState()
	in.Press(common.KeyW)

	style := exhibit.DefaultStyle()
	face := -10 + style.Thickness/2
	resolved := face + style.CollisionBuffer

	// Half a unit per step stays within the collision buffer.
	for range 60 {
		m.Step(0.05, in)
		z := m.Scene().Camera().Transform().Position()[2]
		assert.Greater(t, z, face, "never enters the wall")
	}

	in.Release(common.KeyW)
	m.Step(0.05, in)
	z := m.Scene().Camera().Transform().Position()[2]
	assert.InDelta(t, resolved, z, 1e-4, "rests on the buffered wall face")
	assert.Equal(t, Intro, m.CurrentRoom())
}

func TestStepNudgesCurrentRoomParams(t *testing.T) {
	m := newTestMuseum(t, 20, 5, 0, 0)
	require.Equal(t, BrightContrast, m.CurrentRoom())

	in := input.NewState()
	in.Press(common.KeyUp)
	m.Step(0.01, in)
	m.Step(0.01, in)
	in.Release(common.KeyUp)

	assert.InDelta(t, 0.05, m.Effects().Brightness, 1e-6, "one press, one nudge")
	assert.Equal(t, float32(0), m.Effects().CelBands)
}

func TestStepUpdatesParticlesAndBillboards(t *testing.T) {
	m := newTestMuseum(t, -20, 5, 30, 0, WithEmitterOptions(particle.WithRate(10), particle.WithSeed(7)))
	in := input.NewState()
	for range 5 {
		m.Step(0.1, in)
	}

	alive := m.Layout().Emitter().Alive()
	assert.Greater(t, alive, 0)
	assert.Len(t, m.Billboards(), alive*6)
}
