package particle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitterDefaults(t *testing.T) {
	e := NewEmitter()
	assert.Equal(t, 1000, e.Capacity())
	assert.Equal(t, 0, e.Alive())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, e.Tint())
}

func TestEmitterSpawnsAtRate(t *testing.T) {
	e := NewEmitter(WithRate(4), WithSeed(1))
	e.Update(0.5)
	assert.Equal(t, 2, e.Alive())
	e.Update(0.25)
	assert.Equal(t, 3, e.Alive())
}

func TestEmitterRetiresExpired(t *testing.T) {
	e := NewEmitter(WithRate(1), WithLifespan(1), WithSeed(2))
	e.Update(1)
	require.Equal(t, 1, e.Alive())

	e.Update(0.5)
	assert.Equal(t, 1, e.Alive())
	assert.InDelta(t, 0.5, e.Particles()[0].Age, 1e-6)

	e.Update(0.5)
	require.Equal(t, 1, e.Alive(), "old particle retired, a new one spawned")
	assert.InDelta(t, 0, e.Particles()[0].Age, 1e-6)
}

func TestEmitterRingWrapsAround(t *testing.T) {
	e := NewEmitter(WithCapacity(3), WithRate(1), WithLifespan(2.5), WithSeed(3))
	e.Update(10)
	assert.Equal(t, 3, e.Alive(), "capped at capacity")

	e.Update(1)
	assert.Equal(t, 3, e.Alive())

	e.Update(2)
	assert.Equal(t, 2, e.Alive())
	for _, p := range e.Particles() {
		assert.InDelta(t, 0, p.Age, 1e-6)
	}
}

func TestParticleMovesLinearly(t *testing.T) {
	e := NewEmitter(WithPosition(0, 5, 0), WithRate(1), WithSeed(4))
	e.Update(1)
	e.Update(0.5)

	ps := e.Particles()
	require.Len(t, ps, 1)
	p := ps[0]
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, p.Start)
	for i := range 3 {
		assert.LessOrEqual(t, p.Velocity[i], float32(1))
		assert.GreaterOrEqual(t, p.Velocity[i], float32(-1))
	}
	want := p.Start.Add(p.Velocity.Mul(0.5))
	got := p.Position()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestBillboardsFaceCamera(t *testing.T) {
	e := NewEmitter(WithPosition(0, 5, 0), WithRate(1), WithVelocityRange(0), WithSize(0.1))
	e.Update(1)

	verts := e.Billboards(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	require.Len(t, verts, 6)

	first := verts[0].Position
	assert.InDelta(t, -0.1, first[0], 1e-6)
	assert.InDelta(t, 5.1, first[1], 1e-6)
	third := verts[2].Position
	assert.InDelta(t, 0.1, third[0], 1e-6)
	assert.InDelta(t, 4.9, third[1], 1e-6)
	for _, v := range verts {
		assert.Equal(t, [3]float32{0, 0, 1}, v.Normal)
	}
}
