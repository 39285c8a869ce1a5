package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readF32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestGPUInstanceLayout(t *testing.T) {
	a := common.NewAppearance(0.2, 0.4, 0.6).WithEmissive(0.5)
	inst := NewGPUInstance(mgl32.Translate3D(1, 2, 3), a)
	buf := inst.Marshal()
	require.Len(t, buf, 96)

	assert.Equal(t, float32(1), readF32(buf, 48))
	assert.Equal(t, float32(2), readF32(buf, 52))
	assert.Equal(t, float32(3), readF32(buf, 56))
	assert.Equal(t, float32(0.4), readF32(buf, 68))
	assert.Equal(t, float32(1), readF32(buf, 76))
	assert.Equal(t, float32(0.5), readF32(buf, 80))
	assert.Equal(t, float32(0), readF32(buf, 92))
}

func TestMarshalInstancesRespectsLimit(t *testing.T) {
	items := make([]scene.DrawItem, 5)
	for i := range items {
		items[i] = scene.DrawItem{ID: uint64(i + 1), World: mgl32.Translate3D(float32(i), 0, 0), Appearance: common.NewAppearance(1, 1, 1)}
	}

	buf, n := MarshalInstances(items, 3)
	assert.Equal(t, 3, n)
	require.Len(t, buf, 3*96)
	assert.Equal(t, float32(2), readF32(buf, 2*96+48))

	buf, n = MarshalInstances(items, 10)
	assert.Equal(t, 5, n)
	assert.Len(t, buf, 5*96)

	buf, n = MarshalInstances(nil, 10)
	assert.Zero(t, n)
	assert.Empty(t, buf)
}

func TestGPUEffectParams(t *testing.T) {
	p := NewGPUEffectParams(Effects{Brightness: 0.1, Contrast: 1.5, BloomThreshold: 0.8, BloomIntensity: 2, CelBands: 4})
	buf := p.Marshal()
	require.Len(t, buf, 32)
	assert.Equal(t, float32(0.1), readF32(buf, 0))
	assert.Equal(t, float32(1.5), readF32(buf, 4))
	assert.Equal(t, float32(0.8), readF32(buf, 8))
	assert.Equal(t, float32(2), readF32(buf, 12))
	assert.Equal(t, float32(4), readF32(buf, 16))
}

func TestGPUTintParams(t *testing.T) {
	p := GPUTintParams{Tint: [4]float32{1, 0.5, 0.25, 1}}
	buf := p.Marshal()
	require.Len(t, buf, 16)
	assert.Equal(t, float32(0.25), readF32(buf, 8))
}

func TestNeutralEffects(t *testing.T) {
	e := NeutralEffects()
	assert.Zero(t, e.Brightness)
	assert.Equal(t, float32(1), e.Contrast)
	assert.Equal(t, float32(1), e.BloomThreshold)
	assert.Zero(t, e.CelBands)
}

func TestCubeVertices(t *testing.T) {
	v := CubeVertices()
	require.Len(t, v, CubeVertexCount*VertexStride/4)

	for tri := range CubeVertexCount / 3 {
		var p [3]mgl32.Vec3
		var n mgl32.Vec3
		for k := range 3 {
			base := (tri*3 + k) * 6
			p[k] = mgl32.Vec3{v[base], v[base+1], v[base+2]}
			n = mgl32.Vec3{v[base+3], v[base+4], v[base+5]}
			for axis := range 3 {
				assert.InDelta(t, 0.5, math.Abs(float64(p[k][axis])), 1e-6)
			}
		}
		assert.InDelta(t, 1, n.Len(), 1e-6)

		// counter-clockwise seen from outside
		face := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
		assert.Greater(t, face.Dot(n), float32(0), "triangle %d", tri)
		// every vertex lies on the face plane
		assert.InDelta(t, 0.5, p[0].Dot(n), 1e-6)
	}
}
