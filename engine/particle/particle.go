package particle

import (
	"math/rand/v2"
	"sync"

	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Particle is one live particle. Its position is Start + Velocity * Age.
type Particle struct {
	Start    mgl32.Vec3
	Velocity mgl32.Vec3
	Age      float32
}

// Position returns the particle's current world position.
func (p Particle) Position() mgl32.Vec3 {
	return p.Start.Add(p.Velocity.Mul(p.Age))
}

// Vertex is a billboard corner, laid out like the renderer's mesh vertices (position then normal).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// cornerUVs are the quad corners in the order the two triangles use them.
var cornerUVs = [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {1, 1}, {0, 1}}

// Emitter is a CPU particle emitter. Particles live in a fixed ring buffer: the live run
// starts at firstLive and ends just before firstDead, so spawning and retiring never move
// memory. New particles start at the emitter's position with a random velocity in
// [-VelocityRange, VelocityRange] on every axis.
// Thread-safe for concurrent access.
type Emitter interface {
	// Transform returns the emitter transform. Its position is where new particles spawn.
	//
	// Returns:
	//   - transform.Transform: the emitter transform
	Transform() transform.Transform

	// Update ages every live particle by dt, retires the expired ones and spawns new
	// particles at the configured rate while there is room in the ring.
	//
	// Parameters:
	//   - dt: elapsed seconds
	Update(dt float32)

	// Alive returns the number of live particles.
	Alive() int

	// Capacity returns the ring size.
	Capacity() int

	// Particles returns a copy of the live particles, oldest first.
	//
	// Returns:
	//   - []Particle: the live particles
	Particles() []Particle

	// Billboards builds two camera-facing triangles per live particle.
	//
	// Parameters:
	//   - right: the camera's world right vector
	//   - up: the camera's world up vector
	//
	// Returns:
	//   - []Vertex: six vertices per particle
	Billboards(right, up mgl32.Vec3) []Vertex

	// Tint returns the particle color.
	Tint() [4]float32
}

type emitter struct {
	mu *sync.Mutex

	transform transform.Transform
	rng       *rand.Rand

	particles []Particle
	firstLive int
	firstDead int
	alive     int

	lifespan      float32
	rate          float32
	velocityRange float32
	size          float32
	tint          [4]float32
	sinceEmit     float32
}

var _ Emitter = &emitter{}

// NewEmitter creates an emitter with room for 1000 particles, a 3 second lifespan and an
// emission rate of 10 per second.
//
// Parameters:
//   - options: functional options to configure the emitter
//
// Returns:
//   - Emitter: the new emitter
func NewEmitter(options ...EmitterBuilderOption) Emitter {
	e := &emitter{
		mu:            &sync.Mutex{},
		transform:     transform.NewTransform(),
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		particles:     make([]Particle, 1000),
		lifespan:      3,
		rate:          10,
		velocityRange: 1,
		size:          0.1,
		tint:          [4]float32{1, 1, 1, 1},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *emitter) Transform() transform.Transform {
	return e.transform
}

func (e *emitter) Update(dt float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.particles)
	for i := range e.alive {
		p := &e.particles[(e.firstLive+i)%n]
		p.Age += dt
	}
	for e.alive > 0 && e.particles[e.firstLive].Age >= e.lifespan {
		e.firstLive = (e.firstLive + 1) % n
		e.alive--
	}

	if e.rate <= 0 {
		return
	}
	interval := 1 / e.rate
	e.sinceEmit += dt
	for e.sinceEmit >= interval {
		e.sinceEmit -= interval
		e.spawn()
	}
}

// spawn writes a new particle into the first dead slot. Caller must hold the mutex.
func (e *emitter) spawn() {
	n := len(e.particles)
	if e.alive == n {
		return
	}
	r := e.velocityRange
	e.particles[e.firstDead] = Particle{
		Start: e.transform.Position(),
		Velocity: mgl32.Vec3{
			(e.rng.Float32()*2 - 1) * r,
			(e.rng.Float32()*2 - 1) * r,
			(e.rng.Float32()*2 - 1) * r,
		},
	}
	e.firstDead = (e.firstDead + 1) % n
	e.alive++
}

func (e *emitter) Alive() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.alive
}

func (e *emitter) Capacity() int {
	return len(e.particles)
}

func (e *emitter) Particles() []Particle {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Particle, e.alive)
	for i := range e.alive {
		out[i] = e.particles[(e.firstLive+i)%len(e.particles)]
	}
	return out
}

func (e *emitter) Billboards(right, up mgl32.Vec3) []Vertex {
	e.mu.Lock()
	defer e.mu.Unlock()

	normal := right.Cross(up).Normalize()
	out := make([]Vertex, 0, e.alive*len(cornerUVs))
	for i := range e.alive {
		center := e.particles[(e.firstLive+i)%len(e.particles)].Position()
		for _, uv := range cornerUVs {
			ox := uv[0]*2 - 1
			oy := -(uv[1]*2 - 1)
			p := center.Add(right.Mul(ox * e.size)).Add(up.Mul(oy * e.size))
			out = append(out, Vertex{Position: p, Normal: normal})
		}
	}
	return out
}

func (e *emitter) Tint() [4]float32 {
	return e.tint
}
