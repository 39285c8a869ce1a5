package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := NewGPUCameraUniform(mgl32.Ident4(), [3]float32{1, 2, 3})
	buf := u.Marshal()
	require.Len(t, buf, 80)

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(1), f(0))
	assert.Equal(t, float32(0), f(4))
	assert.Equal(t, float32(1), f(20))
	assert.Equal(t, float32(1), f(64))
	assert.Equal(t, float32(2), f(68))
	assert.Equal(t, float32(3), f(72))
}
