package particle

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// EmitterBuilderOption is a functional option for configuring an Emitter.
type EmitterBuilderOption func(e *emitter)

// WithPosition sets the spawn position.
func WithPosition(x, y, z float32) EmitterBuilderOption {
	return func(e *emitter) {
		e.transform.SetPosition(mgl32.Vec3{x, y, z})
	}
}

// WithCapacity sets the ring buffer size (maximum live particles).
//
// Parameters:
//   - n: the capacity (minimum 1)
//
// Returns:
//   - EmitterBuilderOption: option function to apply
func WithCapacity(n int) EmitterBuilderOption {
	return func(e *emitter) {
		e.particles = make([]Particle, max(n, 1))
	}
}

// WithLifespan sets how many seconds a particle lives.
func WithLifespan(seconds float32) EmitterBuilderOption {
	return func(e *emitter) {
		e.lifespan = seconds
	}
}

// WithRate sets how many particles are emitted per second.
func WithRate(perSecond float32) EmitterBuilderOption {
	return func(e *emitter) {
		e.rate = perSecond
	}
}

// WithVelocityRange sets the per-axis bound of the random start velocity.
func WithVelocityRange(r float32) EmitterBuilderOption {
	return func(e *emitter) {
		e.velocityRange = r
	}
}

// WithSize sets the half extent of each billboard quad.
func WithSize(size float32) EmitterBuilderOption {
	return func(e *emitter) {
		e.size = size
	}
}

// WithTint sets the particle color.
func WithTint(r, g, b, a float32) EmitterBuilderOption {
	return func(e *emitter) {
		e.tint = [4]float32{r, g, b, a}
	}
}

// WithSeed makes velocities deterministic.
//
// Parameters:
//   - seed: the random seed
//
// Returns:
//   - EmitterBuilderOption: option function to apply
func WithSeed(seed uint64) EmitterBuilderOption {
	return func(e *emitter) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}
