package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint)
	assert.Equal(t, LightTypePoint, l.Type())
	assert.True(t, l.Enabled())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(10), l.Range())
}

func TestDirectionIsNormalized(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithDirection(3, 0, 4))
	d := l.Direction()
	assert.InDelta(t, 0.6, d[0], 1e-6)
	assert.InDelta(t, 0.8, d[2], 1e-6)
}

func TestGPUTypeSizes(t *testing.T) {
	assert.Equal(t, 64, (&GPULight{}).Size())
	assert.Equal(t, 16, (&GPULightHeader{}).Size())
}

func TestMarshalLightBufferSkipsDisabled(t *testing.T) {
	lights := []Light{
		NewLight(LightTypeDirectional, WithIntensity(10)),
		NewLight(LightTypePoint, WithEnabled(false)),
		NewLight(LightTypePoint, WithPosition(1, 2, 3)),
	}
	buf := MarshalLightBuffer(lights, [3]float32{0.1, 0.2, 0.3})
	require.Len(t, buf, 16+64*MaxGPULights)

	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(buf[12:16]))
	assert.InDelta(t, 0.2, math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])), 1e-6)

	// The second written light is the enabled point light at (1, 2, 3).
	second := buf[16+64 : 16+128]
	assert.Equal(t, uint32(LightTypePoint), binary.LittleEndian.Uint32(second[12:16]))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(second[4:8])))
}
